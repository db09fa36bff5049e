package circlist

import (
	"github.com/mgnsk/circlist/ringlist"
)

// cursor is the position shared by all iterator kinds: the element it
// refers to and the sentinel of the owning list. The cursor is at the end
// position exactly when current == root.
type cursor[V any] struct {
	current *ringlist.Element[V]
	root    *ringlist.Element[V]
}

func (c cursor[V]) atEnd() bool {
	return c.current == c.root
}

func (c cursor[V]) ref() (*V, error) {
	if c.atEnd() {
		return nil, ErrOutOfRange
	}
	return &c.current.Value, nil
}

func (c cursor[V]) value() (V, error) {
	p, err := c.ref()
	if err != nil {
		return *new(V), err
	}
	return *p, nil
}

// advance moves the cursor to the next element.
// Advancing past the end position is rejected.
func (c *cursor[V]) advance() error {
	if c.atEnd() {
		return ErrOutOfRange
	}
	c.current = c.current.Next()
	return nil
}

// retreat moves the cursor to the previous element. Retreating from the
// end position reaches the last element; retreating from the first
// element is rejected rather than wrapping around the ring.
func (c *cursor[V]) retreat() error {
	if c.current == c.root.Next() {
		return ErrOutOfRange
	}
	c.current = c.current.Prev()
	return nil
}

// Iterator is a bidirectional cursor over a list. Iterators are values:
// copying one yields an independent position. Two iterators are equal
// (==) exactly when they refer to the same element of the same list.
// Comparing iterators of different lists is undefined.
//
// An iterator refers either to a live element or to the end position.
// The zero Iterator is not a valid position.
type Iterator[V any] struct {
	cursor[V]
}

// AtEnd reports whether the iterator is at the end position.
func (it Iterator[V]) AtEnd() bool {
	return it.atEnd()
}

// Value returns the value of the referenced element.
// It returns ErrOutOfRange at the end position.
func (it Iterator[V]) Value() (V, error) {
	return it.value()
}

// Ref returns a pointer to the referenced element's value, valid until
// the element is erased. It returns ErrOutOfRange at the end position.
func (it Iterator[V]) Ref() (*V, error) {
	return it.ref()
}

// Set replaces the value of the referenced element.
// It returns ErrOutOfRange at the end position.
func (it Iterator[V]) Set(v V) error {
	p, err := it.ref()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Next moves the iterator to the next element.
// It returns ErrOutOfRange at the end position.
func (it *Iterator[V]) Next() error {
	return it.advance()
}

// Prev moves the iterator to the previous element. From the end position
// it reaches the last element; it returns ErrOutOfRange at the first.
func (it *Iterator[V]) Prev() error {
	return it.retreat()
}

// Const converts the iterator to a read-only one.
// There is no conversion back.
func (it Iterator[V]) Const() ConstIterator[V] {
	return ConstIterator[V]{it.cursor}
}

// ConstIterator is a bidirectional read-only cursor over a list.
// It is an Iterator without write access to the referenced value.
type ConstIterator[V any] struct {
	cursor[V]
}

// AtEnd reports whether the iterator is at the end position.
func (it ConstIterator[V]) AtEnd() bool {
	return it.atEnd()
}

// Value returns the value of the referenced element.
// It returns ErrOutOfRange at the end position.
func (it ConstIterator[V]) Value() (V, error) {
	return it.value()
}

// Next moves the iterator to the next element.
// It returns ErrOutOfRange at the end position.
func (it *ConstIterator[V]) Next() error {
	return it.advance()
}

// Prev moves the iterator to the previous element. From the end position
// it reaches the last element; it returns ErrOutOfRange at the first.
func (it *ConstIterator[V]) Prev() error {
	return it.retreat()
}
