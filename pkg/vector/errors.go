// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package vector

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by sort operations, sorting is not provided.
var ErrNotImplemented = errors.New("vector: sort is not implemented")

// IndexOutOfRangeError is returned when an index is outside the valid interval for an operation.
type IndexOutOfRangeError struct {
	Op    string // Operation: get, insert or remove.
	Index int
	Size  int
}

func (e *IndexOutOfRangeError) Error() string {
	end := ")"
	if e.Op == "insert" {
		end = "]"
	}
	return fmt.Sprintf("vector: %v index %v out of range [0,%v%v", e.Op, e.Index, e.Size, end)
}

func IsIndexOutOfRange(err error) bool { return IsErrorType[*IndexOutOfRangeError](err) }

// UnsupportedElementTypeError is returned when an element does not support ordering.
type UnsupportedElementTypeError struct {
	Index int
	Type  string
}

func (e *UnsupportedElementTypeError) Error() string {
	return fmt.Sprintf("vector: element %v of type %v is not comparable", e.Index, e.Type)
}

func IsUnsupportedElementType(err error) bool {
	return IsErrorType[*UnsupportedElementTypeError](err)
}

// IsErrorType returns true if err or an error it wraps has type T.
func IsErrorType[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}
