package btree

import (
	"github.com/npillmayer/ordtree/array"
	"github.com/npillmayer/ordtree/compare"
)

// block is a B-tree node: a bounded, sorted sequence of entries and, for
// internal blocks, one more child than it has entries. The subtree at
// children[i] holds keys between entries[i-1] and entries[i].
//
// Capacity is fixed from the tree's degree m at construction: a block holds
// at most 2m-1 entries and 2m children.
type block[E Keyed[K], K any] struct {
	degree   int
	entries  *array.Array[E]
	children *array.Array[*block[E, K]]
}

func newBlock[E Keyed[K], K any](degree int) *block[E, K] {
	return &block[E, K]{
		degree:   degree,
		entries:  array.New[E](2*degree - 1),
		children: array.New[*block[E, K]](0),
	}
}

func (b *block[E, K]) count() int {
	return b.entries.Len()
}

func (b *block[E, K]) isLeaf() bool {
	return b.children.Len() == 0
}

func (b *block[E, K]) isFull() bool {
	return b.entries.Len() == 2*b.degree-1
}

func (b *block[E, K]) hasMinimumEntries() bool {
	return b.entries.Len() >= b.degree-1
}

// hasSpare reports whether the block can give away an entry and still hold
// the minimum.
func (b *block[E, K]) hasSpare() bool {
	return b.entries.Len() > b.degree-1
}

func (b *block[E, K]) entry(i int) E {
	return b.entries.At(i)
}

func (b *block[E, K]) child(i int) *block[E, K] {
	return b.children.At(i)
}

// find returns the number of entries with keys strictly less than key, which
// is both the insert position for key and the index of the child to descend
// into. found is true if the entry at that position has a key equal to key.
func (b *block[E, K]) find(key K, cmp compare.Comparer[K]) (pos int, found bool) {
	lo, hi := 0, b.entries.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp.Compare(b.entries.At(mid).Key(), key) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < b.entries.Len() && cmp.Compare(b.entries.At(lo).Key(), key) == 0 {
		return lo, true
	}
	return lo, false
}

// insertAt inserts e at pos. The caller supplies the sorted position.
func (b *block[E, K]) insertAt(pos int, e E) {
	assert(b.entries.Len() < 2*b.degree-1, "block.insertAt called on full block")
	b.entries.Insert(pos, e)
}

func (b *block[E, K]) removeAt(pos int) E {
	return b.entries.RemoveAt(pos)
}

// replaceAt puts e at pos and returns the entry previously stored there.
func (b *block[E, K]) replaceAt(pos int, e E) E {
	return b.entries.Set(pos, e)
}

func (b *block[E, K]) insertChild(pos int, c *block[E, K]) {
	assert(c != nil, "block.insertChild called with nil child")
	b.children.Insert(pos, c)
}

func (b *block[E, K]) removeChild(pos int) *block[E, K] {
	return b.children.RemoveAt(pos)
}

// moveTailTo moves entries[entryFrom:] and children[childFrom:] to the end of
// dst. Children are only moved for internal blocks.
func (b *block[E, K]) moveTailTo(dst *block[E, K], entryFrom, childFrom int) {
	dst.entries.AddRange(b.entries.RemoveRange(entryFrom, b.entries.Len())...)
	if !b.isLeaf() {
		dst.children.AddRange(b.children.RemoveRange(childFrom, b.children.Len())...)
	}
}

// splitChild splits the full child at index i around its median entry.
//
// The median (position m-1) moves up into b at i, the upper m-1 entries and,
// for internal children, the upper m children move to sibling, and sibling is
// linked into b right after the child. Afterwards child and sibling hold
// m-1 entries each.
func (b *block[E, K]) splitChild(i int, sibling *block[E, K]) {
	child := b.child(i)
	assert(child.isFull(), "block.splitChild called for non-full child")
	assert(sibling.count() == 0 && sibling.isLeaf(), "block.splitChild needs an empty sibling")
	m := b.degree
	child.moveTailTo(sibling, m, m)
	median := child.removeAt(m - 1)
	b.entries.Insert(i, median)
	b.insertChild(i+1, sibling)
	assert(child.count() == m-1 && sibling.count() == m-1, "block.splitChild produced unbalanced halves")
}

// mergeChildren merges children[i], the separating entry i and children[i+1]
// into children[i] and drops children[i+1] from b.
func (b *block[E, K]) mergeChildren(i int) *block[E, K] {
	left, right := b.child(i), b.child(i+1)
	assert(left.count()+right.count()+1 <= 2*b.degree-1, "block.mergeChildren would overflow")
	sep := b.removeAt(i)
	b.removeChild(i + 1)
	left.entries.Append(sep)
	right.moveTailTo(left, 0, 0)
	return left
}

// rotateRight moves the last entry of children[i-1] up into separator i-1 and
// the old separator down to the front of children[i]. The last child of the
// left sibling follows along.
func (b *block[E, K]) rotateRight(i int) {
	left, child := b.child(i-1), b.child(i)
	sep := b.replaceAt(i-1, left.removeAt(left.count()-1))
	child.entries.Insert(0, sep)
	if !left.isLeaf() {
		child.insertChild(0, left.removeChild(left.children.Len()-1))
	}
}

// rotateLeft moves the first entry of children[i+1] up into separator i and
// the old separator down to the end of children[i]. The first child of the
// right sibling follows along.
func (b *block[E, K]) rotateLeft(i int) {
	child, right := b.child(i), b.child(i+1)
	sep := b.replaceAt(i, right.removeAt(0))
	child.entries.Append(sep)
	if !right.isLeaf() {
		child.children.Append(right.removeChild(0))
	}
}

func (b *block[E, K]) leftmostLeaf() *block[E, K] {
	for !b.isLeaf() {
		b = b.child(0)
	}
	return b
}

func (b *block[E, K]) rightmostLeaf() *block[E, K] {
	for !b.isLeaf() {
		b = b.child(b.children.Len() - 1)
	}
	return b
}
