package engine

import "errors"

// Errors returned by Document operations. Most editing commands never fail
// (out-of-range positions clamp, empty edits no-op); ErrReadOnly is the one
// user-reachable error the core itself produces.
var (
	// ErrReadOnly indicates an editing command was attempted on a read-only
	// document.
	ErrReadOnly = errors.New("document is read-only")
)
