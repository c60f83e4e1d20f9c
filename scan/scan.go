// Package scan manages UTXO-set scans against an Ergo node: building
// tracking-rule predicates, registering them, and pulling back matching
// boxes ready for transaction assembly.
package scan

import (
	"encoding/json"

	"github.com/oraclekit/ergoscan/logging"
	"github.com/oraclekit/ergoscan/nodeclient"
)

// ScanID references a registered scan on the node side.
type ScanID string

// Scan is a name plus scan id for one registered tracking rule, with
// methods for acquiring the boxes it matches. Immutable after
// registration; there is no update or deregistration.
type Scan struct {
	Name string
	ID   ScanID

	node nodeclient.Connector
}

// New wraps an already known scan id, e.g. one loaded from scanIDs.json.
func New(node nodeclient.Connector, name string, id ScanID) *Scan {
	return &Scan{Name: name, ID: id, node: node}
}

// Register submits a tracking rule to the node and returns the live Scan.
// Fails with ErrFailedToRegister when the node hands back the null scan
// id, and with a NodeError on any transport failure. No retries.
func Register(node nodeclient.Connector, name string, pred Predicate) (*Scan, error) {
	rule, err := json.Marshal(pred)
	if err != nil {
		return nil, &NodeError{Op: "encode tracking rule", Err: err}
	}

	logging.L.Info().
		Str("scan", name).
		RawJSON("tracking_rule", rule).
		Msg("registering scan")

	id, err := node.RegisterScan(name, rule)
	if err != nil {
		return nil, &NodeError{Op: "register scan", Err: err}
	}
	if id == nodeclient.NullScanID {
		return nil, ErrFailedToRegister
	}

	logging.L.Info().Str("scan", name).Str("id", id).Msg("scan registered")

	return New(node, name, ScanID(id)), nil
}

// GetBoxes returns all boxes currently matching the scan. An empty match
// set is a successful empty slice, not an error.
func (s *Scan) GetBoxes() ([]nodeclient.Box, error) {
	boxes, err := s.node.GetScanBoxes(string(s.ID))
	if err != nil {
		return nil, &NodeError{Op: "get scan boxes", Err: err}
	}
	return boxes, nil
}

// GetBox returns the first box found by the scan, in whatever order the
// node returns them. Fails with ErrNoBoxesFound on an empty match set.
func (s *Scan) GetBox() (nodeclient.Box, error) {
	boxes, err := s.GetBoxes()
	if err != nil {
		return nodeclient.Box{}, err
	}
	if len(boxes) == 0 {
		return nodeclient.Box{}, ErrNoBoxesFound
	}
	return boxes[0], nil
}

// GetSerializedBoxes returns all boxes found by the scan, serialized and
// ready to be used as rawInputs.
func (s *Scan) GetSerializedBoxes() ([]string, error) {
	boxes, err := s.GetBoxes()
	if err != nil {
		return nil, err
	}
	serialized, err := s.node.SerializeBoxes(boxes)
	if err != nil {
		return nil, &NodeError{Op: "serialize boxes", Err: err}
	}
	return serialized, nil
}

// GetSerializedBox returns the first box found by the scan, serialized
// and ready to be used as a rawInput.
func (s *Scan) GetSerializedBox() (string, error) {
	box, err := s.GetBox()
	if err != nil {
		return "", err
	}
	serialized, err := s.node.SerializeBox(box)
	if err != nil {
		return "", &NodeError{Op: "serialize box", Err: err}
	}
	return serialized, nil
}
