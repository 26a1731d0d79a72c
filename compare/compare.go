/*
Package compare provides total orderings for keys stored in ordtree containers.

A Comparer returns a negative number if a < b, zero if a == b and a positive
number if a > b. Comparers must describe a total order; containers rely on
it to keep blocks sorted and will silently misbehave for inconsistent
orderings.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package compare

import "cmp"

// Comparer is a pluggable total ordering over keys.
type Comparer[K any] interface {
	Compare(a, b K) int
}

// Func adapts an ordinary function to the Comparer interface.
type Func[K any] func(a, b K) int

// Compare calls f(a, b).
func (f Func[K]) Compare(a, b K) int {
	return f(a, b)
}

// Ordered returns the natural ordering of an ordered Go type.
func Ordered[K cmp.Ordered]() Comparer[K] {
	return Func[K](cmp.Compare[K])
}

// Reverse inverts the ordering of c.
func Reverse[K any](c Comparer[K]) Comparer[K] {
	return reversed[K]{c}
}

type reversed[K any] struct {
	c Comparer[K]
}

func (r reversed[K]) Compare(a, b K) int {
	return r.c.Compare(b, a)
}

// Equal reports whether a and b are equal with respect to c.
func Equal[K any](c Comparer[K], a, b K) bool {
	return c.Compare(a, b) == 0
}

// Less reports whether a sorts before b with respect to c.
func Less[K any](c Comparer[K], a, b K) bool {
	return c.Compare(a, b) < 0
}
