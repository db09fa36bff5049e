package circlist

// ReverseIterator adapts the bidirectional iterator to walk the list
// back to front. It stores the base position one past the element it
// refers to: RBegin holds End and refers to the last element, REnd holds
// Begin and refers to nothing. Advancing walks prev links; there is no
// separate traversal logic.
type ReverseIterator[V any] struct {
	cursor[V]
}

// target is the element the adaptor refers to: the predecessor of the
// base position. The sentinel as target means the reverse end position.
func (it ReverseIterator[V]) target() (*V, error) {
	e := it.current.Prev()
	if e == it.root {
		return nil, ErrOutOfRange
	}
	return &e.Value, nil
}

// AtEnd reports whether the iterator is at the reverse end position.
func (it ReverseIterator[V]) AtEnd() bool {
	return it.current.Prev() == it.root
}

// Value returns the value of the referenced element.
// It returns ErrOutOfRange at the reverse end position.
func (it ReverseIterator[V]) Value() (V, error) {
	p, err := it.target()
	if err != nil {
		return *new(V), err
	}
	return *p, nil
}

// Ref returns a pointer to the referenced element's value.
// It returns ErrOutOfRange at the reverse end position.
func (it ReverseIterator[V]) Ref() (*V, error) {
	return it.target()
}

// Set replaces the value of the referenced element.
// It returns ErrOutOfRange at the reverse end position.
func (it ReverseIterator[V]) Set(v V) error {
	p, err := it.target()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Next moves the iterator one element towards the front.
// It returns ErrOutOfRange at the reverse end position.
func (it *ReverseIterator[V]) Next() error {
	e := it.current.Prev()
	if e == it.root {
		return ErrOutOfRange
	}
	it.current = e
	return nil
}

// Prev moves the iterator one element towards the back.
// It returns ErrOutOfRange at the reverse begin position.
func (it *ReverseIterator[V]) Prev() error {
	if it.current == it.root {
		return ErrOutOfRange
	}
	it.current = it.current.Next()
	return nil
}

// Base returns the underlying forward iterator, positioned one past the
// element the reverse iterator refers to.
func (it ReverseIterator[V]) Base() Iterator[V] {
	return Iterator[V]{it.cursor}
}

// Const converts the reverse iterator to a read-only one.
func (it ReverseIterator[V]) Const() ConstReverseIterator[V] {
	return ConstReverseIterator[V]{it}
}

// ConstReverseIterator is a read-only ReverseIterator.
type ConstReverseIterator[V any] struct {
	rev ReverseIterator[V]
}

// AtEnd reports whether the iterator is at the reverse end position.
func (it ConstReverseIterator[V]) AtEnd() bool {
	return it.rev.AtEnd()
}

// Value returns the value of the referenced element.
// It returns ErrOutOfRange at the reverse end position.
func (it ConstReverseIterator[V]) Value() (V, error) {
	return it.rev.Value()
}

// Next moves the iterator one element towards the front.
// It returns ErrOutOfRange at the reverse end position.
func (it *ConstReverseIterator[V]) Next() error {
	return it.rev.Next()
}

// Prev moves the iterator one element towards the back.
// It returns ErrOutOfRange at the reverse begin position.
func (it *ConstReverseIterator[V]) Prev() error {
	return it.rev.Prev()
}

// Base returns the underlying read-only forward iterator.
func (it ConstReverseIterator[V]) Base() ConstIterator[V] {
	return it.rev.Base().Const()
}
