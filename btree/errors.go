package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrDuplicateKey signals an insertion of an existing key into a tree
	// configured to hold unique keys.
	ErrDuplicateKey = errors.New("btree: duplicate key")
	// ErrIterationInvalidated signals that a tree was structurally modified
	// while an iteration over it was in progress.
	ErrIterationInvalidated = errors.New("btree: iteration invalidated by concurrent modification")
	// ErrIndexOutOfBounds signals an invalid destination index or size.
	ErrIndexOutOfBounds = errors.New("btree: index out of bounds")
	// ErrCorrupted signals a violated structural invariant, reported by Check.
	ErrCorrupted = errors.New("btree: invariant violated")
)
