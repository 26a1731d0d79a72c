package btree

import (
	"fmt"
	"iter"
)

// Iterator walks the entries of a tree in ascending order.
//
// An iterator captures the tree's version when it is created. If the tree
// is structurally modified afterwards, the next call to Next returns false
// and Err reports ErrIterationInvalidated.
//
//	it := tree.Iterator()
//	for it.Next() {
//		use(it.Entry())
//	}
//	if err := it.Err(); err != nil {
//		…
//	}
type Iterator[E Keyed[K], K any] struct {
	tree    *Tree[E, K]
	version uint64
	stack   []frame[E, K]
	entry   E
	err     error
}

// frame is a position inside one block of the descent path. For a leaf, i is
// the next entry to yield. For an internal block, children[i] is the subtree
// in progress, and entries[i] is yielded once it is exhausted.
type frame[E Keyed[K], K any] struct {
	b *block[E, K]
	i int
}

// Iterator returns an iterator positioned before the smallest entry.
func (t *Tree[E, K]) Iterator() *Iterator[E, K] {
	it := t.newIterator()
	it.pushLeft(t.root)
	return it
}

// IteratorFrom returns an iterator positioned before the first entry with a
// key greater than or equal to key.
func (t *Tree[E, K]) IteratorFrom(key K) *Iterator[E, K] {
	it := t.newIterator()
	b := t.root
	for {
		pos, _ := b.find(key, t.cfg.Comparer)
		it.stack = append(it.stack, frame[E, K]{b: b, i: pos})
		if b.isLeaf() {
			break
		}
		b = b.child(pos)
	}
	return it
}

func (t *Tree[E, K]) newIterator() *Iterator[E, K] {
	return &Iterator[E, K]{
		tree:    t,
		version: t.version,
		stack:   make([]frame[E, K], 0, t.height),
	}
}

func (it *Iterator[E, K]) pushLeft(b *block[E, K]) {
	for {
		it.stack = append(it.stack, frame[E, K]{b: b})
		if b.isLeaf() {
			return
		}
		b = b.child(0)
	}
}

// Next advances to the next entry. It returns false when the entries are
// exhausted or the tree has been modified since the iterator was created.
func (it *Iterator[E, K]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.tree.version != it.version {
		it.err = fmt.Errorf("%w: iterator at version %d, tree at %d",
			ErrIterationInvalidated, it.version, it.tree.version)
		it.stack = nil
		var zero E
		it.entry = zero
		return false
	}
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.i >= top.b.count() {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		it.entry = top.b.entry(top.i)
		top.i++
		if !top.b.isLeaf() {
			it.pushLeft(top.b.child(top.i))
		}
		return true
	}
	return false
}

// Entry returns the entry the iterator is positioned at.
func (it *Iterator[E, K]) Entry() E {
	return it.entry
}

// Err returns ErrIterationInvalidated (wrapped) if iteration stopped because
// the tree was modified, and nil otherwise.
func (it *Iterator[E, K]) Err() error {
	return it.err
}

// Ascend calls fn for every entry in ascending order until fn returns false.
// It returns ErrIterationInvalidated if fn modifies the tree structurally
// and iteration would continue.
func (t *Tree[E, K]) Ascend(fn func(e E) bool) error {
	it := t.Iterator()
	for it.Next() {
		if !fn(it.Entry()) {
			return nil
		}
	}
	return it.Err()
}

// AscendRange calls fn for every entry with lo <= key < hi in ascending
// order until fn returns false.
func (t *Tree[E, K]) AscendRange(lo, hi K, fn func(e E) bool) error {
	it := t.IteratorFrom(lo)
	for it.Next() {
		e := it.Entry()
		if t.cfg.Comparer.Compare(e.Key(), hi) >= 0 {
			return nil
		}
		if !fn(e) {
			return nil
		}
	}
	return it.Err()
}

// All returns a range-over-func sequence of all entries in ascending order.
//
// Modifying the tree structurally inside the loop body makes the sequence
// panic with ErrIterationInvalidated on its next step.
func (t *Tree[E, K]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		it := t.Iterator()
		for it.Next() {
			if !yield(it.Entry()) {
				return
			}
		}
		if err := it.Err(); err != nil {
			panic(err)
		}
	}
}
