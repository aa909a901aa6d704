package traverse

// Map traversal order is Go's map iteration order: unspecified, and not
// the same from one call to the next. Use lmap.LinkedMap when the order
// matters.

type pair[K comparable, V any] struct {
	k K
	v V
}

// entries copies the contents of m into a slice.
func entries[M ~map[K]V, K comparable, V any](m M) []pair[K, V] {
	out := make([]pair[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, pair[K, V]{k, v})
	}
	return out
}

// eachPair is the common body of every map adapter. A snapshot is walked
// with Rotate; a live map is ranged directly.
func eachPair[M ~map[K]V, K comparable, V any](m M, f func(k K, v V) (stop bool), snapshot bool) {
	if !snapshot {
		for k, v := range m {
			if f(k, v) {
				return
			}
		}
		return
	}

	tmp := entries[M, K, V](m)
	Rotate(0, len(tmp), func(i int) bool {
		return f(tmp[i].k, tmp[i].v)
	})
}

// EachKey calls f for every key of m.
// If snapshot is true, the entries of m are copied first and the copy is
// traversed, so f may add or delete keys of m.
func EachKey[M ~map[K]V, K comparable, V any](m M, f func(k K), snapshot bool) {
	if f == nil {
		return
	}

	eachPair[M, K, V](m, func(k K, _ V) bool {
		f(k)
		return false
	}, snapshot)
}

// EachValue calls f for every value of m.
// See EachKey for the meaning of snapshot.
func EachValue[M ~map[K]V, K comparable, V any](m M, f func(v V), snapshot bool) {
	if f == nil {
		return
	}

	eachPair[M, K, V](m, func(_ K, v V) bool {
		f(v)
		return false
	}, snapshot)
}

// EachPair calls f for every key-value pair of m.
// See EachKey for the meaning of snapshot.
func EachPair[M ~map[K]V, K comparable, V any](m M, f func(k K, v V), snapshot bool) {
	if f == nil {
		return
	}

	eachPair[M, K, V](m, func(k K, v V) bool {
		f(k, v)
		return false
	}, snapshot)
}

// EachValueUntil calls f for the values of m until f returns true.
// See EachKey for the meaning of snapshot.
func EachValueUntil[M ~map[K]V, K comparable, V any](m M, f func(v V) (stop bool), snapshot bool) {
	if f == nil {
		return
	}

	eachPair[M, K, V](m, func(_ K, v V) bool {
		return f(v)
	}, snapshot)
}
