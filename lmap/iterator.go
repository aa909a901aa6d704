package lmap

// Iterator returns an iterator positioned before the first entry:
//
//	it := l.Iterator()
//	for it.Next() {
//		k, v := it.Entry()
//		...
//	}
//
// An iterator may be abandoned at any time. It panics if it finds the
// list looping back on itself, which only a corrupted map can do.
func (l *LinkedMap[K, V]) Iterator() Iterator[K, V] {
	return Iterator[K, V]{
		upcoming: l.head,
		hare:     l.head,
	}
}

// Iterator walks a LinkedMap in order. See LinkedMap.Iterator.
type Iterator[K comparable, V any] struct {
	cur, upcoming *entry[K, V]

	// hare runs two links per step; if it ever lands on cur the list
	// is circular
	hare *entry[K, V]
}

// Next moves to the following entry and reports whether there is one.
// Next must be called before the first Entry.
func (it *Iterator[K, V]) Next() bool {
	if it.upcoming == nil {
		return false
	}
	it.cur, it.upcoming = it.upcoming, it.upcoming.next

	for step := 0; step < 2 && it.hare != nil; step++ {
		it.hare = it.hare.next
	}
	if it.hare != nil && it.hare == it.cur {
		panic("lmap: cycle detected, iteration will not end")
	}
	return true
}

// Entry returns the key and value of the current entry.
func (it *Iterator[K, V]) Entry() (k K, v V) {
	return it.cur.k, it.cur.v
}

// Key returns the key of the current entry.
func (it *Iterator[K, _]) Key() K {
	return it.cur.k
}
