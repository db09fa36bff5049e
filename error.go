package circlist

import "errors"

// ErrOutOfRange indicates an operation tried to read or move past a
// structurally absent element, such as dereferencing the end position or
// popping from an empty list.
var ErrOutOfRange = errors.New("position out of range")
