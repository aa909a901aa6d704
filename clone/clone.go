// Package clone makes independent copies of collections of value types.
//
// The copies are one level deep, except for MapOfSlices which also copies
// the inner slices. Elements holding pointers, slices or maps still share
// what they point to.
package clone

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"go.lepak.sg/gamekit/traverse"
)

// Slice returns a new slice with the elements of s.
// A nil slice stays nil.
func Slice[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}
	return slices.Clone[S, E](s)
}

// Map returns a new map with the entries of m.
// A nil map stays nil.
func Map[M ~map[K]V, K comparable, V any](m M) M {
	if m == nil {
		return nil
	}
	return maps.Clone[M, K, V](m)
}

// MapOfSlices returns a new map whose values are copies of the slices
// in m, so appending to or writing into a slice of the result leaves m
// untouched.
func MapOfSlices[M ~map[K]S, K comparable, S ~[]E, E any](m M) M {
	if m == nil {
		return nil
	}

	out := make(M, len(m))
	traverse.EachPair[M, K, S](m, func(k K, s S) {
		out[k] = Slice[S, E](s)
	}, false)
	return out
}

// Grid returns a copy of g with every row copied.
func Grid[G ~[][]E, E any](g G) G {
	if g == nil {
		return nil
	}

	out := make(G, len(g))
	traverse.EachIndexed[G, []E](g, func(i int, row []E) {
		out[i] = Slice[[]E, E](row)
	}, false)
	return out
}
