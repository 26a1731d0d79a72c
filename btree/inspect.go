package btree

// BlockInfo is a read-only snapshot of one block, handed out by Blocks.
type BlockInfo[E any] struct {
	ID      int // pre-order number, the root is 0
	Parent  int // ID of the parent block, -1 for the root
	Index   int // position among the parent's children
	Depth   int // 1 for the root
	Leaf    bool
	Entries []E // copy of the block's entries
}

// Blocks calls fn for every block in pre-order (parent before children,
// children left to right) until fn returns false.
func (t *Tree[E, K]) Blocks(fn func(info BlockInfo[E]) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	id := 0
	t.eachBlock(t.root, -1, 0, 1, &id, fn)
}

func (t *Tree[E, K]) eachBlock(b *block[E, K], parent, index, depth int, id *int,
	fn func(BlockInfo[E]) bool) bool {
	//
	info := BlockInfo[E]{
		ID:      *id,
		Parent:  parent,
		Index:   index,
		Depth:   depth,
		Leaf:    b.isLeaf(),
		Entries: b.entries.GetRange(0, b.count()),
	}
	*id++
	if !fn(info) {
		return false
	}
	for i := 0; i < b.children.Len(); i++ {
		if !t.eachBlock(b.child(i), info.ID, i, depth+1, id, fn) {
			return false
		}
	}
	return true
}
