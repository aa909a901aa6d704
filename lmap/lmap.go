// Package lmap provides an insertion-ordered map.
//
// A LinkedMap is a map combined with a doubly linked list. Iteration
// visits entries in insertion order, which also makes it possible to look
// up an entry by its position.
package lmap

import (
	"github.com/pkg/errors"
)

// ErrOutOfRange is the cause of the panic raised by the positional
// accessors when the position is not in [0, Len()).
var ErrOutOfRange = errors.New("lmap: position out of range")

// LinkedMap is a map combined with a linked list. It preserves
// insertion order and therefore iteration order as well.
// The zero value is not usable; create one with New.
// LinkedMap is not safe for concurrent use.
type LinkedMap[K comparable, V any] struct {
	m map[K]*entry[K, V]

	head, tail *entry[K, V]
}

type entry[K comparable, V any] struct {
	k K
	v V

	prev, next *entry[K, V]
}

// New returns a pointer to a new LinkedMap.
func New[K comparable, V any]() *LinkedMap[K, V] {
	return &LinkedMap[K, V]{
		m: make(map[K]*entry[K, V]),
	}
}

// Copy returns a copy of the LinkedMap with the same entries in the
// same order. Keys and values are copied by assignment: pointer-typed
// values will still point to the same location in memory.
func (l *LinkedMap[K, V]) Copy() *LinkedMap[K, V] {
	lcopy := New[K, V]()

	for it := l.Iterator(); it.Next(); {
		lcopy.Set(it.cur.k, it.cur.v, false)
	}

	return lcopy
}

// unlink takes e out of the list. e stays in the map.
func (l *LinkedMap[K, V]) unlink(e *entry[K, V]) {
	switch {
	case e == nil:
		panic("lmap: unlink of nil entry")
	case e.prev == nil && l.head != e:
		panic("lmap: entry without predecessor is not the head")
	case e.next == nil && l.tail != e:
		panic("lmap: entry without successor is not the tail")
	}

	if e.prev == nil {
		l.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		l.tail = e.prev
	} else {
		e.next.prev = e.prev
	}
	e.prev, e.next = nil, nil
}

// pushBack links e after the current tail.
func (l *LinkedMap[K, V]) pushBack(e *entry[K, V]) {
	e.prev, e.next = l.tail, nil
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
}

func (l *LinkedMap[K, V]) moveToTail(e *entry[K, V]) {
	if l.tail == e {
		return
	}
	l.unlink(e)
	l.pushBack(e)
}

// Get behaves like the map access `v, ok := l[k]`.
// If bump is true and k is in the map, k is moved to the tail
// of the list, as if it were removed and added back to the map.
func (l *LinkedMap[K, V]) Get(k K, bump bool) (v V, ok bool) {
	e, ok := l.m[k]
	if !ok {
		return
	}
	if bump {
		l.moveToTail(e)
	}
	return e.v, true
}

// Set behaves like `l[k] = v`. A new key goes to the tail of the list.
// An existing key keeps its position unless bumpOnExist is true, in
// which case it moves to the tail.
func (l *LinkedMap[K, V]) Set(k K, v V, bumpOnExist bool) {
	if e, ok := l.m[k]; ok {
		e.v = v
		if bumpOnExist {
			l.moveToTail(e)
		}
		return
	}

	e := &entry[K, V]{k: k, v: v}
	l.m[k] = e
	l.pushBack(e)
}

// Delete behaves like `delete(l, k)` and reports whether k was present.
func (l *LinkedMap[K, _]) Delete(k K) (ok bool) {
	e, ok := l.m[k]
	if ok {
		l.drop(e)
	}
	return
}

func (l *LinkedMap[K, V]) drop(e *entry[K, V]) {
	l.unlink(e)
	delete(l.m, e.k)
}

// Len behaves like `len(l)`. This is a constant-time operation.
func (l *LinkedMap[_, _]) Len() int {
	return len(l.m)
}

// end reads e, one of the ends of the list, and drops it if pop is set.
func (l *LinkedMap[K, V]) end(e *entry[K, V], pop bool) (k K, v V, ok bool) {
	if e == nil {
		return
	}
	if pop {
		l.drop(e)
	}
	return e.k, e.v, true
}

// Head returns the first entry. If pop is true, it is also removed.
// ok is false when the map is empty.
func (l *LinkedMap[K, V]) Head(pop bool) (k K, v V, ok bool) {
	return l.end(l.head, pop)
}

// Tail returns the last entry. If pop is true, it is also removed.
// ok is false when the map is empty.
func (l *LinkedMap[K, V]) Tail(pop bool) (k K, v V, ok bool) {
	return l.end(l.tail, pop)
}

// neighbour returns the entry next to k's, after it if forward is set.
func (l *LinkedMap[K, V]) neighbour(k K, forward bool) *entry[K, V] {
	e, ok := l.m[k]
	switch {
	case !ok:
		return nil
	case forward:
		return e.next
	default:
		return e.prev
	}
}

// Next returns the entry after k. ok is false if k is not in the map or
// is the last entry.
func (l *LinkedMap[K, V]) Next(k K) (kn K, vn V, ok bool) {
	return l.end(l.neighbour(k, true), false)
}

// Prev returns the entry before k. ok is false if k is not in the map or
// is the first entry.
func (l *LinkedMap[K, V]) Prev(k K) (kp K, vp V, ok bool) {
	return l.end(l.neighbour(k, false), false)
}
