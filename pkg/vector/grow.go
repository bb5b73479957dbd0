// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package vector

// ensureCapacity grows the backing store if it has fewer than minCapacity slots.
func (v *Vector[T]) ensureCapacity(minCapacity int) {
	if v.data == nil {
		v.data = make([]T, DefaultCapacity)
	}
	if minCapacity-len(v.data) > 0 {
		v.grow(minCapacity)
	}
}

func (v *Vector[T]) grow(minCapacity int) {
	oldCap := len(v.data)
	data := make([]T, growCapacity(oldCap, minCapacity))
	copy(data, v.data[:v.count])
	v.data = data
	if v.grown != nil {
		v.grown(oldCap, len(data))
	}
}

// growCapacity doubles capacity, or returns minCapacity if doubling is not enough.
// An overflowing doubling also falls back to minCapacity.
func growCapacity(capacity, minCapacity int) int {
	newCapacity := capacity * 2
	if newCapacity < 0 || newCapacity < minCapacity {
		newCapacity = minCapacity
	}
	return newCapacity
}
