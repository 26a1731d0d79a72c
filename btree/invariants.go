package btree

import "fmt"

// Check validates structural tree invariants:
//
//   - every non-root block holds between m-1 and 2m-1 entries, the root at
//     most 2m-1,
//   - an internal block has exactly one more child than entries,
//   - all leaves sit at depth Height(),
//   - entries are in ascending order in-order, strictly ascending for
//     unique trees, and every subtree lies between its separators,
//   - Count() equals the number of stored entries.
//
// Check is meant for tests and debugging; it visits every block.
func (t *Tree[E, K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupted)
	}
	if t.root == nil {
		return fmt.Errorf("%w: tree has no root block", ErrCorrupted)
	}
	if t.height < 1 {
		return fmt.Errorf("%w: height must be >= 1, is %d", ErrCorrupted, t.height)
	}
	entries, height, err := t.checkBlock(t.root, true, nil, nil)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrCorrupted, height, t.height)
	}
	if entries != t.count {
		return fmt.Errorf("%w: count mismatch (%d stored, %d recorded)", ErrCorrupted, entries, t.count)
	}
	return nil
}

// checkBlock validates the subtree at b. lo and hi, if not nil, are the keys
// of the separators enclosing the subtree.
func (t *Tree[E, K]) checkBlock(b *block[E, K], isRoot bool, lo, hi *K) (entries int, height int, err error) {
	if b == nil {
		return 0, 0, fmt.Errorf("%w: nil block", ErrCorrupted)
	}
	n := b.count()
	if n > t.cfg.maxEntries() {
		return 0, 0, fmt.Errorf("%w: block holds %d entries, maximum is %d",
			ErrCorrupted, n, t.cfg.maxEntries())
	}
	if !isRoot && n < t.cfg.minEntries() {
		return 0, 0, fmt.Errorf("%w: non-root block holds %d entries, minimum is %d",
			ErrCorrupted, n, t.cfg.minEntries())
	}
	if b.degree != t.cfg.Degree {
		return 0, 0, fmt.Errorf("%w: block of degree %d in tree of degree %d",
			ErrCorrupted, b.degree, t.cfg.Degree)
	}
	for i := range n {
		key := b.entry(i).Key()
		if i > 0 {
			if err := t.checkOrder(b.entry(i-1).Key(), key); err != nil {
				return 0, 0, err
			}
		}
		if lo != nil {
			if err := t.checkOrder(*lo, key); err != nil {
				return 0, 0, err
			}
		}
		if hi != nil {
			if err := t.checkOrder(key, *hi); err != nil {
				return 0, 0, err
			}
		}
	}
	if b.isLeaf() {
		return n, 1, nil
	}
	if b.children.Len() != n+1 {
		return 0, 0, fmt.Errorf("%w: internal block with %d entries has %d children",
			ErrCorrupted, n, b.children.Len())
	}
	entries = n
	var childHeight int
	for i := 0; i <= n; i++ {
		clo, chi := lo, hi
		if i > 0 {
			k := b.entry(i - 1).Key()
			clo = &k
		}
		if i < n {
			k := b.entry(i).Key()
			chi = &k
		}
		cEntries, cHeight, cErr := t.checkBlock(b.child(i), false, clo, chi)
		if cErr != nil {
			return 0, 0, cErr
		}
		entries += cEntries
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: leaves at different depths", ErrCorrupted)
		}
	}
	return entries, childHeight + 1, nil
}

func (t *Tree[E, K]) checkOrder(a, b K) error {
	c := t.cfg.Comparer.Compare(a, b)
	if c > 0 || (c == 0 && t.cfg.Unique) {
		return fmt.Errorf("%w: keys out of order: %v before %v", ErrCorrupted, a, b)
	}
	return nil
}
