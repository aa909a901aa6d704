package lmap

import (
	"github.com/pkg/errors"
)

// at returns the entry at position i, walking from whichever end
// of the list is closer.
func (l *LinkedMap[K, V]) at(i int) *entry[K, V] {
	n := l.Len()
	if i < 0 || i >= n {
		panic(errors.Wrapf(ErrOutOfRange, "position %d, length %d", i, n))
	}

	if i < n/2 {
		e := l.head
		for ; i > 0; i-- {
			e = e.next
		}
		return e
	}

	e := l.tail
	for j := n - 1; j > i; j-- {
		e = e.prev
	}
	return e
}

// EntryAt returns the key and value at position i in iteration order.
// It walks the list, so it costs O(min(i, Len()-i)); do not use it to
// iterate.
//
// EntryAt panics with an error wrapping ErrOutOfRange if i is negative
// or not less than Len().
func (l *LinkedMap[K, V]) EntryAt(i int) (k K, v V) {
	e := l.at(i)
	return e.k, e.v
}

// KeyAt returns the key at position i. See EntryAt.
func (l *LinkedMap[K, _]) KeyAt(i int) K {
	return l.at(i).k
}

// ValueAt returns the value at position i. See EntryAt.
func (l *LinkedMap[_, V]) ValueAt(i int) V {
	return l.at(i).v
}

// Keys returns the keys in iteration order.
func (l *LinkedMap[K, _]) Keys() []K {
	keys := make([]K, 0, l.Len())
	for it := l.Iterator(); it.Next(); {
		keys = append(keys, it.Key())
	}
	return keys
}

// Values returns the values in iteration order.
func (l *LinkedMap[_, V]) Values() []V {
	values := make([]V, 0, l.Len())
	for it := l.Iterator(); it.Next(); {
		values = append(values, it.cur.v)
	}
	return values
}
