// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package vector

import (
	"cmp"
	"fmt"
	"reflect"
)

// Comparer is implemented by types that define their own ordering.
// Compare returns a negative number, zero or a positive number if the receiver
// is less than, equal to or greater than the argument.
type Comparer[T any] interface {
	Compare(T) int
}

// CheckSupportComparable returns an [UnsupportedElementTypeError] for the first element
// that cannot be ordered. An element can be ordered if it is of an integer, float or string
// kind, or implements [Comparer]. A nil element cannot be ordered.
// The vector is not modified.
func (v *Vector[T]) CheckSupportComparable() error {
	for i, x := range v.data[:v.count] {
		if !ordered(x) {
			return &UnsupportedElementTypeError{Index: i, Type: fmt.Sprintf("%T", x)}
		}
	}
	return nil
}

// Sort checks that all elements can be ordered, see [Vector.CheckSupportComparable].
// Sorting itself is not implemented: if the check passes Sort returns [ErrNotImplemented].
// The vector is never modified.
func (v *Vector[T]) Sort() error {
	if err := v.CheckSupportComparable(); err != nil {
		return err
	}
	return ErrNotImplemented
}

// Sort is the form of [Vector.Sort] for ordered types, checked at compile time.
// It returns [ErrNotImplemented].
func Sort[T cmp.Ordered](v *Vector[T]) error { return ErrNotImplemented }

func ordered[T any](x T) bool {
	if isNil(x) {
		return false
	}
	if _, ok := any(x).(Comparer[T]); ok {
		return true
	}
	switch reflect.ValueOf(x).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}
