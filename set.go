package ordtree

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/ordtree/btree"
	"github.com/npillmayer/ordtree/compare"
)

// Set is an ordered set of values of type T.
type Set[T any] struct {
	tree *btree.Tree[btree.Item[T], T]
}

// NewSet creates an empty set of degree degree, ordered by c.
// A degree below 2 is rejected with ErrInvalidConfig.
func NewSet[T any](degree int, c compare.Comparer[T]) (*Set[T], error) {
	tree, err := btree.New[btree.Item[T], T](btree.Config[T]{
		Degree:   degree,
		Comparer: c,
		Unique:   true,
	})
	if err != nil {
		return nil, err
	}
	traceCreated("set", degree)
	return &Set[T]{tree: tree}, nil
}

// NewOrderedSet creates an empty set of degree degree using the natural
// ordering of T.
func NewOrderedSet[T cmp.Ordered](degree int) (*Set[T], error) {
	return NewSet(degree, compare.Ordered[T]())
}

// Add inserts v. It returns false, and leaves the set unchanged, if an equal
// value is already present.
func (s *Set[T]) Add(v T) bool {
	return s.tree.Add(btree.Item[T]{Value: v}) == nil
}

// Remove deletes v and reports whether it was present.
func (s *Set[T]) Remove(v T) bool {
	_, ok := s.tree.Remove(v)
	return ok
}

// Contains reports whether v is present.
func (s *Set[T]) Contains(v T) bool {
	return s.tree.Contains(v)
}

// Find returns the stored value equal to v. For comparers which identify
// distinct values (like a case-insensitive collation) the stored value may
// differ from v.
func (s *Set[T]) Find(v T) (T, bool) {
	it, ok := s.tree.Find(v)
	return it.Value, ok
}

// Min returns the smallest value.
func (s *Set[T]) Min() (T, bool) {
	it, ok := s.tree.Min()
	return it.Value, ok
}

// Max returns the largest value.
func (s *Set[T]) Max() (T, bool) {
	it, ok := s.tree.Max()
	return it.Value, ok
}

// Len returns the number of values.
func (s *Set[T]) Len() int { return s.tree.Count() }

// Height returns the height of the underlying tree.
func (s *Set[T]) Height() int { return s.tree.Height() }

// Degree returns the degree of the underlying tree.
func (s *Set[T]) Degree() int { return s.tree.Degree() }

// Clear removes all values.
func (s *Set[T]) Clear() { s.tree.Clear() }

// CopyTo copies the values in ascending order into dst, starting at
// dst[offset], and returns the number of values copied.
func (s *Set[T]) CopyTo(dst []T, offset int) (int, error) {
	if offset < 0 || offset > len(dst) || len(dst)-offset < s.Len() {
		return 0, fmt.Errorf("%w: cannot copy %d values to offset %d of %d",
			ErrIndexOutOfBounds, s.Len(), offset, len(dst))
	}
	i := offset
	err := s.tree.Ascend(func(it btree.Item[T]) bool {
		dst[i] = it.Value
		i++
		return true
	})
	return i - offset, err
}

// Values returns all values in ascending order.
func (s *Set[T]) Values() []T {
	out := make([]T, 0, s.Len())
	for it := range s.tree.All() {
		out = append(out, it.Value)
	}
	return out
}

// All returns a range-over-func sequence of all values in ascending order.
// It panics with ErrIterationInvalidated if the set is modified inside the
// loop.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := range s.tree.All() {
			if !yield(it.Value) {
				return
			}
		}
	}
}

// Ascend calls fn for every value in ascending order until fn returns
// false. It reports ErrIterationInvalidated if fn modifies the set.
func (s *Set[T]) Ascend(fn func(v T) bool) error {
	return s.tree.Ascend(func(it btree.Item[T]) bool {
		return fn(it.Value)
	})
}

// AscendRange calls fn for every value v with lo <= v < hi.
func (s *Set[T]) AscendRange(lo, hi T, fn func(v T) bool) error {
	return s.tree.AscendRange(lo, hi, func(it btree.Item[T]) bool {
		return fn(it.Value)
	})
}

// Iterator returns an explicit iterator over the set's entries.
func (s *Set[T]) Iterator() *btree.Iterator[btree.Item[T], T] {
	return s.tree.Iterator()
}

// Check validates the invariants of the underlying tree.
func (s *Set[T]) Check() error { return s.tree.Check() }

// Tree gives access to the underlying B-tree, e.g. for rendering it.
func (s *Set[T]) Tree() *btree.Tree[btree.Item[T], T] { return s.tree }
