package btree

import "fmt"

// Add inserts e into the tree.
//
// For trees configured with Unique, Add fails with ErrDuplicateKey if an
// entry with an equal key is present; the tree is left untouched in that
// case. Otherwise an equal-key entry is stored next to the existing ones.
func (t *Tree[E, K]) Add(e E) error {
	if t.cfg.Unique {
		if _, _, found := t.locate(e.Key()); found {
			return fmt.Errorf("%w: %v", ErrDuplicateKey, e.Key())
		}
	}
	t.insert(e)
	return nil
}

// ReplaceOrAdd stores e, replacing the entry with an equal key if there is
// one. Replacing is not a structural change and does not advance the
// version; live iterators stay valid and will see the new entry.
func (t *Tree[E, K]) ReplaceOrAdd(e E) (old E, replaced bool) {
	if b, pos, found := t.locate(e.Key()); found {
		return b.replaceAt(pos, e), true
	}
	t.insert(e)
	return old, false
}

// insert descends from the root to a leaf, splitting every full block on the
// path before entering it, so the leaf reached always has room for e.
func (t *Tree[E, K]) insert(e E) {
	if t.root.isFull() {
		t.growRoot()
	}
	key := e.Key()
	b := t.root
	for !b.isLeaf() {
		pos, _ := b.find(key, t.cfg.Comparer)
		if b.child(pos).isFull() {
			b.splitChild(pos, t.newBlock())
			T().Debugf("btree: split block at child %d, median %v", pos, b.entry(pos).Key())
			if t.cfg.Comparer.Compare(key, b.entry(pos).Key()) >= 0 {
				pos++
			}
		}
		b = b.child(pos)
	}
	pos, _ := b.find(key, t.cfg.Comparer)
	b.insertAt(pos, e)
	t.count++
	t.version++
}

// growRoot wraps a full root into a new root and splits it. This is the only
// place where the tree grows in height.
func (t *Tree[E, K]) growRoot() {
	old := t.root
	t.root = t.newBlock()
	t.root.insertChild(0, old)
	t.root.splitChild(0, t.newBlock())
	t.height++
	t.version++
	T().Debugf("btree: root split, height now %d", t.height)
}
