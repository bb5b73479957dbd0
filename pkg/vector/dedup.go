// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package vector

import "github.com/korrel8r/vector/pkg/unique"

// Deduplicate removes elements equal to an earlier element and returns the number removed.
// The first occurrence of each value is kept and the survivors keep their relative order.
//
// Elements do not need to be hashable or ordered, so this does O(n²) comparisons
// using the same equality as [Vector.IndexOfRange]. The backing store is rebuilt
// with capacity equal to the number of survivors.
func (v *Vector[T]) Deduplicate() int {
	if v.count == 0 {
		return 0
	}
	removed := make([]bool, v.count)
	for i := 0; i < v.count; i++ {
		if removed[i] {
			continue // Already matched as a duplicate of an earlier element.
		}
		for j := v.IndexOfRange(v.data[i], i+1, v.count); j != NotFound; j = v.IndexOfRange(v.data[i], j+1, v.count) {
			removed[j] = true
		}
	}
	return v.rebuild(removed)
}

// DeduplicateComparable is like [Vector.Deduplicate] for comparable types,
// using == for equality and a set to do O(n) comparisons.
func DeduplicateComparable[T comparable](v *Vector[T]) int {
	if v.count == 0 {
		return 0
	}
	removed := make([]bool, v.count)
	seen := unique.NewSet[T]()
	for i, x := range v.data[:v.count] {
		removed[i] = !seen.Add(x)
	}
	return v.rebuild(removed)
}

// rebuild keeps the elements not marked as removed, returns the number removed.
func (v *Vector[T]) rebuild(removed []bool) int {
	n := 0
	for _, r := range removed {
		if !r {
			n++
		}
	}
	data := make([]T, 0, n)
	for i, x := range v.data[:v.count] {
		if !removed[i] {
			data = append(data, x)
		}
	}
	dropped := v.count - n
	v.data, v.count = data, n
	return dropped
}
