/*
Package ringlist implements the link-level primitives of a circular
doubly-linked list. Link and Unlink are the only operations that mutate
links; both preserve the ring invariant e.Next().Prev() == e.
*/
package ringlist

// Element is a ring element. A fresh element forms a ring of one.
type Element[V any] struct {
	Value      V
	next, prev *Element[V]
}

// NewElement creates a self-linked ring element.
func NewElement[V any](v V) *Element[V] {
	e := &Element[V]{
		Value: v,
	}
	e.next = e
	e.prev = e
	return e
}

// Next returns the next element in the ring. It is never nil.
func (e *Element[V]) Next() *Element[V] {
	return e.next
}

// Prev returns the previous element in the ring. It is never nil.
func (e *Element[V]) Prev() *Element[V] {
	return e.prev
}

// Linked reports whether e is linked to at least one other element.
func (e *Element[V]) Linked() bool {
	return e.next != e
}

// Link splices s into the ring after e, updating all four link fields.
// To splice s in before e, use e.Prev().Link(s).
func (e *Element[V]) Link(s *Element[V]) {
	n := e.next
	e.next = s
	s.prev = e
	n.prev = s
	s.next = n
}

// Unlink splices e out of its ring, reconnecting its neighbors to each
// other and leaving e self-linked.
func (e *Element[V]) Unlink() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = e
	e.prev = e
}
