package btree

import (
	"fmt"
)

// Tree is an in-memory B-tree of degree m.
//
// E is the entry type stored in the tree and K the ordering key it exposes.
// Entry and key types are tied together via Keyed[K]. Use Item[T] for
// set-mode trees and Pair[K,V] for map-mode trees.
//
// The zero Tree is not usable; create trees with New.
type Tree[E Keyed[K], K any] struct {
	cfg     Config[K]
	root    *block[E, K]
	height  int    // number of block levels, 1 for a leaf root
	count   int    // total number of entries
	version uint64 // advanced on every structural mutation
}

// New creates an empty tree with validated configuration.
//
// A degree below 2 or a missing comparer is rejected with ErrInvalidConfig.
func New[E Keyed[K], K any](cfg Config[K]) (*Tree[E, K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree[E, K]{cfg: cfg}
	t.root = t.newBlock()
	t.height = 1
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[E, K]) Config() Config[K] {
	if t == nil {
		return Config[K]{}
	}
	return t.cfg
}

func (t *Tree[E, K]) newBlock() *block[E, K] {
	return newBlock[E, K](t.cfg.Degree)
}

// Degree returns the degree m the tree was created with.
func (t *Tree[E, K]) Degree() int {
	if t == nil {
		return 0
	}
	return t.cfg.Degree
}

// Count returns the number of entries in the tree.
func (t *Tree[E, K]) Count() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Height returns the number of block levels, where 1 means a leaf root.
func (t *Tree[E, K]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Version returns the current mutation epoch. It advances on every
// structural change and never decreases.
func (t *Tree[E, K]) Version() uint64 {
	if t == nil {
		return 0
	}
	return t.version
}

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[E, K]) IsEmpty() bool {
	return t == nil || t.count == 0
}

// Clear removes all entries. Height drops back to 1.
func (t *Tree[E, K]) Clear() {
	t.root = t.newBlock()
	t.height = 1
	t.count = 0
	t.version++
	T().Debugf("btree: cleared")
}

// CopyTo copies all entries in ascending order into dst, starting at
// dst[offset]. It fails with ErrIndexOutOfBounds without copying anything if
// offset is negative or dst cannot take Count() entries from offset on.
func (t *Tree[E, K]) CopyTo(dst []E, offset int) (int, error) {
	if offset < 0 || offset > len(dst) {
		return 0, fmt.Errorf("%w: offset %d for destination of length %d",
			ErrIndexOutOfBounds, offset, len(dst))
	}
	if len(dst)-offset < t.count {
		return 0, fmt.Errorf("%w: destination has room for %d entries, tree holds %d",
			ErrIndexOutOfBounds, len(dst)-offset, t.count)
	}
	i := offset
	t.walk(t.root, func(e E) bool {
		dst[i] = e
		i++
		return true
	})
	return i - offset, nil
}

// Entries returns all entries in ascending order.
func (t *Tree[E, K]) Entries() []E {
	out := make([]E, 0, t.count)
	t.walk(t.root, func(e E) bool {
		out = append(out, e)
		return true
	})
	return out
}

// walk visits entries of the subtree at b in-order. It is not epoch-checked
// and must not be used while the tree is mutated.
func (t *Tree[E, K]) walk(b *block[E, K], fn func(E) bool) bool {
	assert(b != nil, "walk called with nil block")
	if b.isLeaf() {
		for _, e := range b.entries.Items() {
			if !fn(e) {
				return false
			}
		}
		return true
	}
	for i := 0; i < b.count(); i++ {
		if !t.walk(b.child(i), fn) {
			return false
		}
		if !fn(b.entry(i)) {
			return false
		}
	}
	return t.walk(b.child(b.count()), fn)
}
