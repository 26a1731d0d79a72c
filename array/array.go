/*
Package array provides a growable random-access array, the storage primitive
backing the entry and child lists of ordtree blocks.

Appends run in amortized O(1), positional inserts and removals in O(n).
Range operations move contiguous spans in one copy. Index arguments are
never clamped: an out-of-range index is a programming error and panics.

The zero value of Array is an empty array ready to use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package array

import "fmt"

// Array is a growable sequence of T.
type Array[T any] struct {
	items []T
}

// New creates an empty array with room for capacity items.
func New[T any](capacity int) *Array[T] {
	if capacity < 0 {
		panic("array: New called with negative capacity")
	}
	return &Array[T]{items: make([]T, 0, capacity)}
}

// From creates an array holding a copy of items.
func From[T any](items ...T) *Array[T] {
	a := New[T](len(items))
	a.items = append(a.items, items...)
	return a
}

// Len returns the number of items.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Cap returns the number of items the array can hold before re-allocating.
func (a *Array[T]) Cap() int {
	return cap(a.items)
}

// At returns the item at index i.
func (a *Array[T]) At(i int) T {
	a.checkIndex(i)
	return a.items[i]
}

// Set replaces the item at index i and returns the previous one.
func (a *Array[T]) Set(i int, item T) T {
	a.checkIndex(i)
	old := a.items[i]
	a.items[i] = item
	return old
}

// Swap exchanges the items at i and j.
func (a *Array[T]) Swap(i, j int) {
	a.checkIndex(i)
	a.checkIndex(j)
	a.items[i], a.items[j] = a.items[j], a.items[i]
}

// First returns the item at index 0.
func (a *Array[T]) First() T {
	return a.At(0)
}

// Last returns the item at index Len()-1.
func (a *Array[T]) Last() T {
	return a.At(len(a.items) - 1)
}

// Append adds item at the end.
func (a *Array[T]) Append(item T) {
	a.items = append(a.items, item)
}

// Insert inserts item at index i, shifting later items up by one.
// i may equal Len().
func (a *Array[T]) Insert(i int, item T) {
	if i < 0 || i > len(a.items) {
		panic(a.rangeMsg("Insert", i, i))
	}
	var zero T
	a.items = append(a.items, zero)
	if i < len(a.items)-1 {
		copy(a.items[i+1:], a.items[i:])
	}
	a.items[i] = item
}

// RemoveAt removes and returns the item at index i.
func (a *Array[T]) RemoveAt(i int) T {
	a.checkIndex(i)
	item := a.items[i]
	copy(a.items[i:], a.items[i+1:])
	a.shrink(len(a.items) - 1)
	return item
}

// Pop removes and returns the last item.
func (a *Array[T]) Pop() T {
	return a.RemoveAt(len(a.items) - 1)
}

// AddRange appends all items at the end.
func (a *Array[T]) AddRange(items ...T) {
	a.items = append(a.items, items...)
}

// InsertRange inserts items at index i, keeping their order.
func (a *Array[T]) InsertRange(i int, items ...T) {
	if i < 0 || i > len(a.items) {
		panic(a.rangeMsg("InsertRange", i, i))
	}
	if len(items) == 0 {
		return
	}
	n := len(a.items)
	a.items = append(a.items, items...) // grow
	copy(a.items[i+len(items):], a.items[i:n])
	copy(a.items[i:], items)
}

// GetRange returns a copy of the half-open span [from, to).
func (a *Array[T]) GetRange(from, to int) []T {
	a.checkRange("GetRange", from, to)
	return append([]T(nil), a.items[from:to]...)
}

// RemoveRange removes the half-open span [from, to) and returns the removed
// items.
func (a *Array[T]) RemoveRange(from, to int) []T {
	a.checkRange("RemoveRange", from, to)
	removed := append([]T(nil), a.items[from:to]...)
	copy(a.items[from:], a.items[to:])
	a.shrink(len(a.items) - (to - from))
	return removed
}

// Truncate drops all items at index n and beyond.
func (a *Array[T]) Truncate(n int) {
	a.checkRange("Truncate", n, len(a.items))
	a.shrink(n)
}

// Clear removes all items, keeping the allocated storage.
func (a *Array[T]) Clear() {
	a.shrink(0)
}

// Items returns the live items. The slice aliases the array's storage and
// is valid only until the next mutation.
func (a *Array[T]) Items() []T {
	return a.items
}

// shrink cuts the array to length n, zeroing the vacated slots so that they
// do not keep references alive.
func (a *Array[T]) shrink(n int) {
	var zero T
	for i := n; i < len(a.items); i++ {
		a.items[i] = zero
	}
	a.items = a.items[:n]
}

func (a *Array[T]) checkIndex(i int) {
	if i < 0 || i >= len(a.items) {
		panic(fmt.Sprintf("array: index %d out of range [0,%d)", i, len(a.items)))
	}
}

func (a *Array[T]) checkRange(op string, from, to int) {
	if from < 0 || from > to || to > len(a.items) {
		panic(a.rangeMsg(op, from, to))
	}
}

func (a *Array[T]) rangeMsg(op string, from, to int) string {
	return fmt.Sprintf("array: %s range [%d,%d) invalid for length %d", op, from, to, len(a.items))
}
