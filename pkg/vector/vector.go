// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

// Package vector provides Vector, a generic resizable array.
//
// A Vector keeps its elements in a contiguous backing store whose capacity is
// tracked separately from the number of elements. Appending is amortized O(1),
// indexed insert and remove are O(n), indexed get is O(1), search and
// deduplication are linear scans using value equality.
//
// # Thread Safety
//
// A Vector is not safe for concurrent use. Callers must synchronize access.
package vector

import (
	"encoding/json"
	"iter"

	"github.com/korrel8r/vector/pkg/slices"
)

// DefaultCapacity is the capacity of a new empty Vector.
const DefaultCapacity = 8

// Vector is a resizable array of T.
//
// The zero value is an empty Vector ready to use.
// Its backing store is allocated with DefaultCapacity on first insert.
type Vector[T any] struct {
	data  []T // len(data) is the capacity, only data[:count] is valid.
	count int
	equal func(a, b T) bool
	grown func(oldCap, newCap int)
}

// New returns an empty vector with DefaultCapacity.
func New[T any]() *Vector[T] { return &Vector[T]{data: make([]T, DefaultCapacity)} }

// NewFunc returns an empty vector that uses eq to compare values when searching
// and deduplicating. If eq is nil the default equality is used, see [Vector.IndexOfRange].
func NewFunc[T any](eq func(a, b T) bool) *Vector[T] {
	v := New[T]()
	v.equal = eq
	return v
}

// FromRange returns a new vector containing the elements of src at indices [low, high).
// The new vector uses the same equality as src.
//
// Bounds are clamped to the elements of src. If the range is empty, or reversed,
// the result is an empty vector with DefaultCapacity. Otherwise the capacity is
// exactly the number of elements copied. Elements are copied shallowly.
func FromRange[T any](src *Vector[T], low, high int) *Vector[T] {
	v := FromSliceRange(src.data[:src.count], low, high)
	v.equal = src.equal
	return v
}

// FromSlice returns a new vector containing a shallow copy of s.
func FromSlice[T any](s []T) *Vector[T] { return FromSliceRange(s, 0, len(s)) }

// FromSliceRange returns a new vector containing s[low:high], see [FromRange].
func FromSliceRange[T any](s []T, low, high int) *Vector[T] {
	low, high = max(low, 0), min(high, len(s))
	if high-low <= 0 {
		return New[T]()
	}
	v := &Vector[T]{data: make([]T, high-low)}
	v.count = copy(v.data, s[low:high])
	return v
}

// SetGrowHook sets a function to be called each time the backing store is reallocated.
// A nil function removes the hook.
func (v *Vector[T]) SetGrowHook(f func(oldCap, newCap int)) { v.grown = f }

// Size returns the number of elements.
func (v *Vector[T]) Size() int { return v.count }

// Cap returns the capacity of the backing store.
func (v *Vector[T]) Cap() int { return len(v.data) }

// Get returns the element at index i.
func (v *Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.count {
		var zero T
		return zero, &IndexOutOfRangeError{Op: "get", Index: i, Size: v.count}
	}
	return v.data[i], nil
}

// Append values to the end of the vector, in order.
func (v *Vector[T]) Append(values ...T) {
	v.ensureCapacity(v.count + len(values))
	v.count += copy(v.data[v.count:], values)
}

// Insert value at index i, shifting elements at i and above up by one.
// i may be equal to Size(), which appends the value.
func (v *Vector[T]) Insert(i int, value T) error {
	if i < 0 || i > v.count {
		return &IndexOutOfRangeError{Op: "insert", Index: i, Size: v.count}
	}
	v.ensureCapacity(v.count + 1)
	copy(v.data[i+1:v.count+1], v.data[i:v.count])
	v.data[i] = value
	v.count++
	return nil
}

// Remove the element at index i and return it.
// Elements above i are shifted down by one.
func (v *Vector[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.count {
		return zero, &IndexOutOfRangeError{Op: "remove", Index: i, Size: v.count}
	}
	removed := v.data[i]
	copy(v.data[i:v.count-1], v.data[i+1:v.count])
	v.count--
	v.data[v.count] = zero // Don't hold a reference to the vacated slot.
	return removed, nil
}

// Slice returns a new slice containing the elements in order.
func (v *Vector[T]) Slice() []T {
	s := make([]T, v.count)
	copy(s, v.data[:v.count])
	return s
}

// All returns an iterator over index, element pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.count; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// String returns the elements formatted as "[a, b, c]".
func (v *Vector[T]) String() string { return "[" + slices.Join(v.data[:v.count], ", ") + "]" }

// MarshalJSON encodes the elements as a JSON array, never as null.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	if v.count == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(v.data[:v.count])
}

// UnmarshalJSON replaces the contents of v with a JSON array.
func (v *Vector[T]) UnmarshalJSON(b []byte) error {
	var s []T
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n := FromSlice(s)
	v.data, v.count = n.data, n.count
	return nil
}
