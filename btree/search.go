package btree

// Find returns the entry with a key equal to key.
func (t *Tree[E, K]) Find(key K) (E, bool) {
	if b, pos, found := t.locate(key); found {
		return b.entry(pos), true
	}
	var zero E
	return zero, false
}

// Contains reports whether an entry with a key equal to key is present.
func (t *Tree[E, K]) Contains(key K) bool {
	_, _, found := t.locate(key)
	return found
}

// locate descends from the root to the block holding key. At each block the
// position is the number of entries less than key; the search stops at the
// first block whose entry at that position is equal to key.
func (t *Tree[E, K]) locate(key K) (*block[E, K], int, bool) {
	b := t.root
	for {
		pos, found := b.find(key, t.cfg.Comparer)
		if found {
			return b, pos, true
		}
		if b.isLeaf() {
			return nil, 0, false
		}
		b = b.child(pos)
	}
}

// Min returns the entry with the smallest key.
func (t *Tree[E, K]) Min() (E, bool) {
	var zero E
	if t.IsEmpty() {
		return zero, false
	}
	return t.root.leftmostLeaf().entry(0), true
}

// Max returns the entry with the largest key.
func (t *Tree[E, K]) Max() (E, bool) {
	var zero E
	if t.IsEmpty() {
		return zero, false
	}
	leaf := t.root.rightmostLeaf()
	return leaf.entry(leaf.count() - 1), true
}
