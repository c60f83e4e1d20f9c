package nodeclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/oraclekit/ergoscan/logging"
)

// Connector is the node boundary consumed by the scan package. Every call
// is one blocking round trip; timeouts and cancellation live in the
// http.Client, not here.
type Connector interface {
	RegisterScan(name string, trackingRule json.RawMessage) (string, error)
	GetScanBoxes(scanID string) ([]Box, error)
	SerializeBox(box Box) (string, error)
	SerializeBoxes(boxes []Box) ([]string, error)
	AddressToBytes(addr string) (string, error)
	AddressToRawForRegister(addr string) (string, error)
}

// NullScanID is what RegisterScan yields when the node accepted the
// request but produced no usable scan id. Known quirk of the node API:
// the scanId field comes back as JSON null instead of an error status.
const NullScanID = "null"

type ClientNode struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewClientNode(baseURL, apiKey string) *ClientNode {
	return &ClientNode{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  http.DefaultClient,
	}
}

type Asset struct {
	TokenID string `json:"tokenId"`
	Amount  uint64 `json:"amount"`
}

// Box mirrors the node's ErgoBox JSON. The scan layer treats it as an
// opaque candidate match and never looks past existence; the fields are
// decoded for callers further downstream.
type Box struct {
	BoxID               string            `json:"boxId"`
	Value               uint64            `json:"value"`
	ErgoTree            string            `json:"ergoTree"`
	Assets              []Asset           `json:"assets"`
	CreationHeight      uint32            `json:"creationHeight"`
	AdditionalRegisters map[string]string `json:"additionalRegisters"`
	TransactionID       string            `json:"transactionId"`
	Index               uint32            `json:"index"`
}

type scanRegisterRequest struct {
	ScanName     string          `json:"scanName"`
	TrackingRule json.RawMessage `json:"trackingRule"`
}

type scanRegisterRaw struct {
	ScanID json.RawMessage `json:"scanId"`
}

type scanBoxRaw struct {
	Box Box `json:"box"`
}

type serializedBoxRaw struct {
	BoxID string `json:"boxId"`
	Bytes string `json:"bytes"`
}

type addressToBytesRaw struct {
	Bytes string `json:"bytes"`
}

type addressToRawRaw struct {
	Raw string `json:"raw"`
}

type nodeErrorRaw struct {
	Error  int    `json:"error"`
	Reason string `json:"reason"`
	Detail string `json:"detail"`
}

func (c *ClientNode) RegisterScan(name string, trackingRule json.RawMessage) (string, error) {
	reqBody, err := json.Marshal(scanRegisterRequest{
		ScanName:     name,
		TrackingRule: trackingRule,
	})
	if err != nil {
		logging.L.Err(err).Msg("")
		return "", err
	}

	body, err := c.post("/scan/register", reqBody)
	if err != nil {
		logging.L.Err(err).Msg("")
		return "", err
	}

	var data scanRegisterRaw
	err = json.Unmarshal(body, &data)
	if err != nil {
		logging.L.Err(err).Msg("")
		return "", err
	}

	return scanIDString(data.ScanID), nil
}

// scanIDString normalizes the node's scanId field. The node returns a
// bare integer on success and null when it could not build the scan; an
// absent field collapses to the null sentinel as well.
func scanIDString(raw json.RawMessage) string {
	s := string(bytes.Trim(raw, `"`))
	if s == "" {
		return NullScanID
	}
	return s
}

func (c *ClientNode) GetScanBoxes(scanID string) ([]Box, error) {
	body, err := c.get("/scan/unspentBoxes/" + url.PathEscape(scanID))
	if err != nil {
		logging.L.Err(err).Msg("")
		return nil, err
	}

	var items []scanBoxRaw
	err = json.Unmarshal(body, &items)
	if err != nil {
		logging.L.Err(err).Msg("")
		return nil, err
	}

	boxes := make([]Box, len(items))
	for i, item := range items {
		boxes[i] = item.Box
	}

	return boxes, nil
}

// SerializeBox fetches the base16 serialized bytes of one box, ready to
// be used as a rawInput in transaction assembly.
func (c *ClientNode) SerializeBox(box Box) (string, error) {
	body, err := c.get("/utxo/withPoolByIdBinary/" + url.PathEscape(box.BoxID))
	if err != nil {
		logging.L.Err(err).Msg("")
		return "", err
	}

	var data serializedBoxRaw
	err = json.Unmarshal(body, &data)
	if err != nil {
		logging.L.Err(err).Msg("")
		return "", err
	}

	return data.Bytes, nil
}

func (c *ClientNode) SerializeBoxes(boxes []Box) ([]string, error) {
	serialized := make([]string, len(boxes))
	for i, box := range boxes {
		s, err := c.SerializeBox(box)
		if err != nil {
			return nil, err
		}
		serialized[i] = s
	}
	return serialized, nil
}

// AddressToBytes resolves an address to the base16 bytes of its script
// tree, the form tracking rules compare against.
func (c *ClientNode) AddressToBytes(addr string) (string, error) {
	body, err := c.get("/script/addressToBytes/" + url.PathEscape(addr))
	if err != nil {
		logging.L.Err(err).Msg("")
		return "", err
	}

	var data addressToBytesRaw
	err = json.Unmarshal(body, &data)
	if err != nil {
		logging.L.Err(err).Msg("")
		return "", err
	}

	return data.Bytes, nil
}

// AddressToRawForRegister resolves a P2PK address to its raw EC point
// prefixed with the group element type tag, the encoding registers hold.
func (c *ClientNode) AddressToRawForRegister(addr string) (string, error) {
	body, err := c.get("/utils/addressToRaw/" + url.PathEscape(addr))
	if err != nil {
		logging.L.Err(err).Msg("")
		return "", err
	}

	var data addressToRawRaw
	err = json.Unmarshal(body, &data)
	if err != nil {
		logging.L.Err(err).Msg("")
		return "", err
	}

	// 07 is the serialization tag for SGroupElement
	return "07" + data.Raw, nil
}

func (c *ClientNode) get(path string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *ClientNode) post(path string, body []byte) ([]byte, error) {
	req, err := http.NewRequest(http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *ClientNode) do(req *http.Request) ([]byte, error) {
	if c.APIKey != "" {
		req.Header.Set("api_key", c.APIKey)
	}

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var nodeErr nodeErrorRaw
		if json.Unmarshal(body, &nodeErr) == nil && nodeErr.Reason != "" {
			return nil, fmt.Errorf("node responded %d: %s: %s",
				resp.StatusCode, nodeErr.Reason, nodeErr.Detail)
		}
		return nil, fmt.Errorf("node responded %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
