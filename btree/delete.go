package btree

// toRemove selects which entry a removal descent is looking for.
type toRemove int

const (
	removeItem toRemove = iota // remove the entry with a given key
	removeMin                  // remove the smallest entry
	removeMax                  // remove the largest entry
)

// Remove deletes the entry with a key equal to key and returns it.
//
// Removing an absent key reports false and leaves the tree untouched,
// including its height and version.
func (t *Tree[E, K]) Remove(key K) (E, bool) {
	if !t.Contains(key) {
		var zero E
		return zero, false
	}
	return t.deleteEntry(key, removeItem)
}

// RemoveMin deletes and returns the entry with the smallest key.
func (t *Tree[E, K]) RemoveMin() (E, bool) {
	var key K
	return t.deleteEntry(key, removeMin)
}

// RemoveMax deletes and returns the entry with the largest key.
func (t *Tree[E, K]) RemoveMax() (E, bool) {
	var key K
	return t.deleteEntry(key, removeMax)
}

func (t *Tree[E, K]) deleteEntry(key K, typ toRemove) (E, bool) {
	if t.count == 0 {
		var zero E
		return zero, false
	}
	e := t.remove(t.root, key, typ)
	t.count--
	t.version++
	t.shrinkRoot()
	return e, true
}

// shrinkRoot replaces an empty internal root by its only child. This is the
// only place where the tree loses height.
func (t *Tree[E, K]) shrinkRoot() {
	for t.root.count() == 0 && !t.root.isLeaf() {
		t.root = t.root.child(0)
		t.height--
		T().Debugf("btree: root collapsed, height now %d", t.height)
	}
}

// remove deletes one entry from the subtree at b. The entry is known to be
// present. b is either the root or holds more than the minimum number of
// entries, so removing from b, or pulling a separator down from it, keeps
// its occupancy legal. Before descending, the child on the path is fixed up
// to hold a spare entry as well.
func (t *Tree[E, K]) remove(b *block[E, K], key K, typ toRemove) E {
	var pos int
	switch typ {
	case removeMin:
		if b.isLeaf() {
			return b.removeAt(0)
		}
		pos = 0
	case removeMax:
		if b.isLeaf() {
			return b.removeAt(b.count() - 1)
		}
		pos = b.count()
	default:
		var found bool
		pos, found = b.find(key, t.cfg.Comparer)
		if b.isLeaf() {
			assert(found, "btree.remove reached leaf without finding key")
			return b.removeAt(pos)
		}
		if found {
			return t.removeFromInner(b, pos, key)
		}
	}
	if !b.child(pos).hasSpare() {
		pos = t.fixChild(b, pos)
	}
	return t.remove(b.child(pos), key, typ)
}

// removeFromInner deletes entry pos of internal block b.
//
// If the predecessor subtree can spare an entry, its largest entry takes the
// slot; otherwise, if the successor subtree can spare one, its smallest
// entry does. If neither can, both subtrees are merged around the entry and
// the removal continues in the merged block.
func (t *Tree[E, K]) removeFromInner(b *block[E, K], pos int, key K) E {
	pred, succ := b.child(pos), b.child(pos+1)
	if pred.hasSpare() {
		var zero K
		return b.replaceAt(pos, t.remove(pred, zero, removeMax))
	}
	if succ.hasSpare() {
		var zero K
		return b.replaceAt(pos, t.remove(succ, zero, removeMin))
	}
	merged := b.mergeChildren(pos)
	T().Debugf("btree: merged children %d and %d around deleted key %v", pos, pos+1, key)
	return t.remove(merged, key, removeItem)
}

// fixChild makes children[i] of b hold more than the minimum number of
// entries, by rotating an entry over from a sibling with a spare one
// (left sibling first), or else by merging with a sibling (left sibling
// first). It returns the index of the child to descend into, which moves to
// i-1 if the child was merged into its left sibling.
func (t *Tree[E, K]) fixChild(b *block[E, K], i int) int {
	if i > 0 && b.child(i-1).hasSpare() {
		b.rotateRight(i)
		T().Debugf("btree: child %d borrowed from left sibling", i)
		return i
	}
	if i < b.count() && b.child(i+1).hasSpare() {
		b.rotateLeft(i)
		T().Debugf("btree: child %d borrowed from right sibling", i)
		return i
	}
	if i > 0 {
		b.mergeChildren(i - 1)
		T().Debugf("btree: child %d merged into left sibling", i)
		return i - 1
	}
	b.mergeChildren(i)
	T().Debugf("btree: right sibling merged into child %d", i)
	return i
}
