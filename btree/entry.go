package btree

import "fmt"

// Item is a set-mode entry: the stored value is its own key.
type Item[T any] struct {
	Value T
}

// Key returns the value.
func (it Item[T]) Key() T {
	return it.Value
}

func (it Item[T]) String() string {
	return fmt.Sprint(it.Value)
}

// Pair is a map-mode entry carrying a key and a value.
type Pair[K, V any] struct {
	key K
	val V
}

// NewPair creates a map entry.
func NewPair[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{key: key, val: value}
}

// Key returns the ordering key of the pair.
func (p Pair[K, V]) Key() K {
	return p.key
}

// Value returns the payload of the pair.
func (p Pair[K, V]) Value() V {
	return p.val
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v:%v", p.key, p.val)
}
