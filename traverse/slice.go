package traverse

import (
	"golang.org/x/exp/slices"
)

// view returns the slice that a traversal should read from.
// If snapshot is true, it is an independent copy of s.
func view[S ~[]E, E any](s S, snapshot bool) S {
	if snapshot {
		return slices.Clone[S, E](s)
	}
	return s
}

// Each calls f for every element of s in order.
// If snapshot is true, s is copied first and the copy is traversed.
func Each[S ~[]E, E any](s S, f func(v E), snapshot bool) {
	if f == nil {
		return
	}

	tmp := view[S, E](s, snapshot)
	Rotate(0, len(tmp), func(i int) bool {
		f(tmp[i])
		return false
	})
}

// EachIndexed calls f with the index and value of every element of s
// in order. If snapshot is true, s is copied first and the copy is traversed.
func EachIndexed[S ~[]E, E any](s S, f func(i int, v E), snapshot bool) {
	if f == nil {
		return
	}

	tmp := view[S, E](s, snapshot)
	Rotate(0, len(tmp), func(i int) bool {
		f(i, tmp[i])
		return false
	})
}

// EachUntil calls f for every element of s in order until f returns true.
// The element that stopped the traversal is not reported; capture it in f
// if it is needed.
// If snapshot is true, s is copied first and the copy is traversed.
func EachUntil[S ~[]E, E any](s S, f func(v E) (stop bool), snapshot bool) {
	if f == nil {
		return
	}

	tmp := view[S, E](s, snapshot)
	Rotate(0, len(tmp), func(i int) bool {
		return f(tmp[i])
	})
}

// EachFrom visits every element of s exactly once, beginning at index start
// and wrapping around to the front, until f returns true.
// start must be in [0, len(s)) unless s is empty.
//
// EachFrom always walks the live slice. Take a copy first if f mutates s.
func EachFrom[S ~[]E, E any](s S, start int, f func(i int, v E) (stop bool)) {
	if f == nil {
		return
	}

	Rotate(start, len(s), func(i int) bool {
		return f(i, s[i])
	})
}
