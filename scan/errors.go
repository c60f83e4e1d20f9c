package scan

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBoxesFound means a retrieval succeeded but the scan matched
	// nothing when a single box was required.
	ErrNoBoxesFound = errors.New("no boxes found")

	// ErrFailedToRegister means the node returned the null scan id, or a
	// scan carrying one reached persistence.
	ErrFailedToRegister = errors.New("failed to register scan")
)

// NodeError wraps any failure coming out of the node connector. Transport
// and box-serialization failures are deliberately not distinguishable
// here; callers get one opaque external-failure kind.
type NodeError struct {
	Op  string
	Err error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node error: %s: %v", e.Op, e.Err)
}

func (e *NodeError) Unwrap() error { return e.Err }
