package ordtree

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/ordtree/btree"
	"github.com/npillmayer/ordtree/compare"
)

// Map is an ordered map from keys of type K to values of type V.
type Map[K, V any] struct {
	tree *btree.Tree[btree.Pair[K, V], K]
}

// NewMap creates an empty map of degree degree, ordered by c.
// A degree below 2 is rejected with ErrInvalidConfig.
func NewMap[K, V any](degree int, c compare.Comparer[K]) (*Map[K, V], error) {
	tree, err := btree.New[btree.Pair[K, V], K](btree.Config[K]{
		Degree:   degree,
		Comparer: c,
		Unique:   true,
	})
	if err != nil {
		return nil, err
	}
	traceCreated("map", degree)
	return &Map[K, V]{tree: tree}, nil
}

// NewOrderedMap creates an empty map of degree degree using the natural
// ordering of K.
func NewOrderedMap[K cmp.Ordered, V any](degree int) (*Map[K, V], error) {
	return NewMap[K, V](degree, compare.Ordered[K]())
}

// Add inserts a new key. It fails with ErrDuplicateKey, leaving the map
// unchanged, if key is already present.
func (m *Map[K, V]) Add(key K, value V) error {
	return m.tree.Add(btree.NewPair(key, value))
}

// Put stores value under key, replacing and returning a previous value.
func (m *Map[K, V]) Put(key K, value V) (old V, replaced bool) {
	p, replaced := m.tree.ReplaceOrAdd(btree.NewPair(key, value))
	return p.Value(), replaced
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	p, ok := m.tree.Find(key)
	return p.Value(), ok
}

// Find returns the entry stored under key.
func (m *Map[K, V]) Find(key K) (btree.Pair[K, V], bool) {
	return m.tree.Find(key)
}

// Remove deletes key and returns the value it mapped to.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	p, ok := m.tree.Remove(key)
	return p.Value(), ok
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.tree.Contains(key)
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.tree.Count() }

// Height returns the height of the underlying tree.
func (m *Map[K, V]) Height() int { return m.tree.Height() }

// Degree returns the degree of the underlying tree.
func (m *Map[K, V]) Degree() int { return m.tree.Degree() }

// Clear removes all entries.
func (m *Map[K, V]) Clear() { m.tree.Clear() }

// CopyTo copies the entries in ascending key order into dst, starting at
// dst[offset], and returns the number of entries copied.
func (m *Map[K, V]) CopyTo(dst []btree.Pair[K, V], offset int) (int, error) {
	n, err := m.tree.CopyTo(dst, offset)
	if err != nil {
		return 0, fmt.Errorf("ordtree: map CopyTo: %w", err)
	}
	return n, nil
}

// Keys returns all keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.Len())
	for p := range m.tree.All() {
		out = append(out, p.Key())
	}
	return out
}

// All returns a range-over-func sequence of all key/value pairs in ascending
// key order. It panics with ErrIterationInvalidated if the map is modified
// structurally inside the loop.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range m.tree.All() {
			if !yield(p.Key(), p.Value()) {
				return
			}
		}
	}
}

// Ascend calls fn for every entry in ascending key order until fn returns
// false. It reports ErrIterationInvalidated if fn adds or removes keys.
func (m *Map[K, V]) Ascend(fn func(key K, value V) bool) error {
	return m.tree.Ascend(func(p btree.Pair[K, V]) bool {
		return fn(p.Key(), p.Value())
	})
}

// AscendRange calls fn for every entry with lo <= key < hi.
func (m *Map[K, V]) AscendRange(lo, hi K, fn func(key K, value V) bool) error {
	return m.tree.AscendRange(lo, hi, func(p btree.Pair[K, V]) bool {
		return fn(p.Key(), p.Value())
	})
}

// Iterator returns an explicit iterator over the map's entries.
func (m *Map[K, V]) Iterator() *btree.Iterator[btree.Pair[K, V], K] {
	return m.tree.Iterator()
}

// Check validates the invariants of the underlying tree.
func (m *Map[K, V]) Check() error { return m.tree.Check() }

// Tree gives access to the underlying B-tree, e.g. for rendering it.
func (m *Map[K, V]) Tree() *btree.Tree[btree.Pair[K, V], K] { return m.tree }
