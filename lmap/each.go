package lmap

import (
	"go.lepak.sg/gamekit/traverse"
)

// eachEntry walks the map in order until f returns true.
//
// A snapshot of the entries is walked with traverse.Rotate; f may then
// set, bump or delete keys of l freely. The live walk uses an Iterator,
// and the result of modifying l from f is undefined.
func (l *LinkedMap[K, V]) eachEntry(f func(k K, v V) (stop bool), snapshot bool) {
	if snapshot {
		keys, values := l.Keys(), l.Values()
		traverse.Rotate(0, len(keys), func(i int) bool {
			return f(keys[i], values[i])
		})
		return
	}

	for it := l.Iterator(); it.Next(); {
		if f(it.Entry()) {
			return
		}
	}
}

// EachKey calls f for every key in insertion order.
// If snapshot is true, the entries are copied first so f may modify l.
func (l *LinkedMap[K, V]) EachKey(f func(k K), snapshot bool) {
	if f == nil {
		return
	}

	l.eachEntry(func(k K, _ V) bool {
		f(k)
		return false
	}, snapshot)
}

// EachValue calls f for every value in insertion order.
// See EachKey for the meaning of snapshot.
func (l *LinkedMap[K, V]) EachValue(f func(v V), snapshot bool) {
	if f == nil {
		return
	}

	l.eachEntry(func(_ K, v V) bool {
		f(v)
		return false
	}, snapshot)
}

// EachPair calls f for every key-value pair in insertion order.
// See EachKey for the meaning of snapshot.
func (l *LinkedMap[K, V]) EachPair(f func(k K, v V), snapshot bool) {
	if f == nil {
		return
	}

	l.eachEntry(func(k K, v V) bool {
		f(k, v)
		return false
	}, snapshot)
}

// EachValueUntil calls f for the values in insertion order until f
// returns true. See EachKey for the meaning of snapshot.
func (l *LinkedMap[K, V]) EachValueUntil(f func(v V) (stop bool), snapshot bool) {
	if f == nil {
		return
	}

	l.eachEntry(func(_ K, v V) bool {
		return f(v)
	}, snapshot)
}
