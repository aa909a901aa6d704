// Package traverse provides callback-style traversal over slices, maps
// and 2D grids.
//
// Every sequence adapter is a thin wrapper around Rotate, which walks a
// fixed-size index space from an arbitrary starting offset and wraps back
// to zero. Adapters that accept a snapshot flag copy the collection before
// the first visit, so the visitor may add or remove elements of the
// original without disturbing the traversal:
//
//	traverse.Each(enemies, func(e *Enemy) {
//		if e.Dead() {
//			enemies = remove(enemies, e)
//		}
//	}, true)
//
// With snapshot set to false the live collection is walked. Changing its
// shape from the visitor is then undefined and is the caller's problem.
//
// Fixed-size arrays are traversed by slicing them: traverse.Each(arr[:], f, false).
package traverse
