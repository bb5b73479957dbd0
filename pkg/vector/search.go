// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package vector

import "reflect"

// NotFound is returned by search functions when there is no match.
const NotFound = -1

// Equaler is implemented by types with their own notion of value equality, for example [time.Time].
type Equaler[T any] interface {
	Equal(T) bool
}

// IndexOf returns the index of the first element equal to target, or NotFound.
func (v *Vector[T]) IndexOf(target T) int { return v.IndexOfRange(target, 0, v.count) }

// Contains returns true if some element is equal to target.
func (v *Vector[T]) Contains(target T) bool { return v.IndexOf(target) != NotFound }

// IndexOfRange returns the index of the first element in [low, high) equal to target, or NotFound.
// The bounds are clamped to [0, Size()).
//
// A nil target (nil interface, pointer, map, slice, channel or func) matches the first nil element.
// A non-nil target matches the first non-nil element equal to it. Equality is the function passed
// to [NewFunc] if there is one, otherwise [Equaler.Equal] if the element implements it,
// otherwise [reflect.DeepEqual].
func (v *Vector[T]) IndexOfRange(target T, low, high int) int {
	low, high = max(low, 0), min(high, v.count)
	if isNil(target) {
		for i := low; i < high; i++ {
			if isNil(v.data[i]) {
				return i
			}
		}
		return NotFound
	}
	equal := v.equal
	if equal == nil {
		equal = defaultEqual[T]
	}
	for i := low; i < high; i++ {
		if !isNil(v.data[i]) && equal(v.data[i], target) {
			return i
		}
	}
	return NotFound
}

func defaultEqual[T any](a, b T) bool {
	if e, ok := any(a).(Equaler[T]); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

func isNil(x any) bool {
	if x == nil {
		return true
	}
	switch v := reflect.ValueOf(x); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
