// Package address holds local structural checks for Ergo addresses and
// token ids. Addresses are base58 of head byte || content || 4 checksum
// bytes, where the checksum is the leading bytes of blake2b256 over the
// head and content. Checking here lets callers reject malformed inputs
// before any predicate is assembled or sent to the node.
package address

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

// Network prefixes of the address head byte.
const (
	MainnetPrefix byte = 0x00
	TestnetPrefix byte = 0x10
)

// Address types encoded in the low nibble of the head byte.
const (
	TypeP2PK byte = 1
	TypeP2SH byte = 2
	TypeP2S  byte = 3
)

const checksumLength = 4

// Check validates the base58 structure and checksum of an Ergo address.
// It does not resolve the address to script bytes; that is the node's job.
func Check(addr string) error {
	decoded := base58.Decode(addr)
	if len(decoded) == 0 {
		return fmt.Errorf("address %q is not valid base58", addr)
	}
	if len(decoded) <= 1+checksumLength {
		return fmt.Errorf("address too short: %d bytes", len(decoded))
	}

	body := decoded[:len(decoded)-checksumLength]
	checksum := decoded[len(decoded)-checksumLength:]

	digest := blake2b.Sum256(body)
	if !bytes.Equal(digest[:checksumLength], checksum) {
		return fmt.Errorf("address checksum mismatch")
	}

	switch addrType(body[0]) {
	case TypeP2PK, TypeP2SH, TypeP2S:
		return nil
	default:
		return fmt.Errorf("unknown address type %d", addrType(body[0]))
	}
}

// CheckTokenID validates that id is a 32 byte hex string, the form the
// node expects for asset ids in tracking rules.
func CheckTokenID(id string) error {
	raw, err := hex.DecodeString(id)
	if err != nil {
		return fmt.Errorf("token id %q is not valid hex: %w", id, err)
	}
	if len(raw) != 32 {
		return fmt.Errorf("token id must be 32 bytes, got %d", len(raw))
	}
	return nil
}

// Network reports the network prefix of a structurally valid address.
func Network(addr string) (byte, error) {
	if err := Check(addr); err != nil {
		return 0, err
	}
	decoded := base58.Decode(addr)
	return decoded[0] & 0xf0, nil
}

func addrType(head byte) byte { return head & 0x0f }
