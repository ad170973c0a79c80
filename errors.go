package vector

import "errors"

// The two conditions the container raises.  Everything else that can
// go wrong with a vector (stale iterators, dereferencing End) is a
// documented precondition, not a checked condition.
var (
	// ErrOutOfRange reports an indexed access at or beyond the live
	// element count.
	ErrOutOfRange = errors.New("index out of range")
	// ErrEmptyVector reports a removal from a vector with no live
	// elements.
	ErrEmptyVector = errors.New("vector is empty")
)
