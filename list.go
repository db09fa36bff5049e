/*
Package circlist implements a circular doubly-linked list with
bidirectional iterators. A permanently allocated sentinel element closes
the ring: Begin is its successor and End is the sentinel itself. Every
insert and erase is an O(1) splice; the end position stays valid across
mutation elsewhere in the list.

The list is not safe for concurrent use.
*/
package circlist

import (
	"github.com/mgnsk/circlist/ringlist"
)

// List is a circular doubly-linked list.
// The zero value is an empty list ready to use.
type List[V any] struct {
	root *ringlist.Element[V]
	len  int
}

// New creates a list holding the given values in order,
// front to back, as if by successive PushBack calls.
func New[V any](values ...V) *List[V] {
	l := &List[V]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// lazyInit allocates the sentinel on first use.
func (l *List[V]) lazyInit() {
	if l.root == nil {
		l.root = ringlist.NewElement(*new(V))
	}
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List[V]) IsEmpty() bool {
	return l.len == 0
}

// PushBack inserts a value at the back of the list.
func (l *List[V]) PushBack(v V) {
	l.Insert(l.End(), v)
}

// PushFront inserts a value at the front of the list.
func (l *List[V]) PushFront(v V) {
	l.Insert(l.Begin(), v)
}

// Insert inserts a value before the position pos and returns an iterator
// to the new element. Inserting before End appends at the back.
// pos must be a position in this list.
func (l *List[V]) Insert(pos Iterator[V], v V) Iterator[V] {
	l.lazyInit()

	if pos.current == nil {
		panic("circlist: invalid iterator")
	}

	e := ringlist.NewElement(v)
	pos.current.Prev().Link(e)
	l.len++

	return Iterator[V]{cursor[V]{current: e, root: l.root}}
}

// Emplace constructs a value in place before the position pos and returns
// an iterator to the new element. The constructor is called exactly once.
func (l *List[V]) Emplace(pos Iterator[V], construct func() V) Iterator[V] {
	return l.Insert(pos, construct())
}

// Erase removes the element at pos and returns an iterator to the element
// that followed it. It returns ErrOutOfRange if the list is empty or pos
// is the end position. Iterators to the erased element become invalid;
// all other iterators remain valid.
func (l *List[V]) Erase(pos Iterator[V]) (Iterator[V], error) {
	l.lazyInit()

	if pos.current == nil {
		panic("circlist: invalid iterator")
	}

	if l.len == 0 || pos.current == l.root {
		return Iterator[V]{}, ErrOutOfRange
	}

	next := pos.current.Next()
	pos.current.Unlink()
	l.len--

	return Iterator[V]{cursor[V]{current: next, root: l.root}}, nil
}

// PopFront removes the first element and returns its value.
// It returns ErrOutOfRange if the list is empty.
func (l *List[V]) PopFront() (V, error) {
	return l.pop(l.Begin())
}

// PopBack removes the last element and returns its value.
// It returns ErrOutOfRange if the list is empty.
func (l *List[V]) PopBack() (V, error) {
	it := l.End()
	if err := it.Prev(); err != nil {
		return *new(V), err
	}
	return l.pop(it)
}

func (l *List[V]) pop(pos Iterator[V]) (V, error) {
	v, err := pos.Value()
	if err != nil {
		return *new(V), err
	}
	if _, err := l.Erase(pos); err != nil {
		return *new(V), err
	}
	return v, nil
}

// Front returns the value of the first element.
// It returns ErrOutOfRange if the list is empty.
func (l *List[V]) Front() (V, error) {
	return l.Begin().Value()
}

// Back returns the value of the last element.
// It returns ErrOutOfRange if the list is empty.
func (l *List[V]) Back() (V, error) {
	l.lazyInit()

	return Iterator[V]{cursor[V]{current: l.root.Prev(), root: l.root}}.Value()
}

// Clear removes all elements. It is a no-op on an empty list.
// The detached chain becomes unreachable and is collected.
func (l *List[V]) Clear() {
	if l.root != nil {
		l.root.Unlink()
	}
	l.len = 0
}

// Do calls f on each value in the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(v V) bool) {
	if l.root == nil {
		return
	}

	for e := l.root.Next(); e != l.root; e = e.Next() {
		if !f(e.Value) {
			return
		}
	}
}

// Clone returns a deep copy of the list: every value is copied, in order,
// into a fresh chain sharing no elements with l.
func (l *List[V]) Clone() *List[V] {
	c := &List[V]{}
	l.Do(func(v V) bool {
		c.PushBack(v)
		return true
	})
	return c
}

// TakeFrom moves all elements of other into l in O(1), releasing any
// elements l held before. Afterwards other is a valid empty list and
// iterators into either list are invalid.
func (l *List[V]) TakeFrom(other *List[V]) {
	if l == other {
		return
	}

	other.lazyInit()

	l.root = other.root
	l.len = other.len

	other.root = ringlist.NewElement(*new(V))
	other.len = 0
}

// Begin returns an iterator to the first element.
// On an empty list Begin equals End.
func (l *List[V]) Begin() Iterator[V] {
	l.lazyInit()

	return Iterator[V]{cursor[V]{current: l.root.Next(), root: l.root}}
}

// End returns the iterator one past the last element.
// It is never dereferenceable and stays valid across mutation.
func (l *List[V]) End() Iterator[V] {
	l.lazyInit()

	return Iterator[V]{cursor[V]{current: l.root, root: l.root}}
}

// CBegin returns a read-only iterator to the first element.
func (l *List[V]) CBegin() ConstIterator[V] {
	return l.Begin().Const()
}

// CEnd returns the read-only iterator one past the last element.
func (l *List[V]) CEnd() ConstIterator[V] {
	return l.End().Const()
}

// RBegin returns a reverse iterator to the last element.
func (l *List[V]) RBegin() ReverseIterator[V] {
	l.lazyInit()

	return ReverseIterator[V]{cursor[V]{current: l.root, root: l.root}}
}

// REnd returns the reverse iterator one past the first element.
func (l *List[V]) REnd() ReverseIterator[V] {
	l.lazyInit()

	return ReverseIterator[V]{cursor[V]{current: l.root.Next(), root: l.root}}
}

// CRBegin returns a read-only reverse iterator to the last element.
func (l *List[V]) CRBegin() ConstReverseIterator[V] {
	return l.RBegin().Const()
}

// CREnd returns the read-only reverse iterator one past the first element.
func (l *List[V]) CREnd() ConstReverseIterator[V] {
	return l.REnd().Const()
}
