// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package vector_test

import (
	"errors"
	"testing"
	"time"

	"github.com/korrel8r/vector/pkg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float64

type point struct{ x, y int }

func TestCheckSupportComparable(t *testing.T) {
	for _, x := range []struct {
		name  string
		v     interface{ CheckSupportComparable() error }
		index int // -1 if supported
	}{
		{"ints", vector.FromSlice([]int{3, 1, 2}), -1},
		{"strings", vector.FromSlice([]string{"b", "a"}), -1},
		{"named float", vector.FromSlice([]celsius{1.5, -3}), -1},
		{"uint8", vector.FromSlice([]uint8{1}), -1},
		{"time comparer", vector.FromSlice([]time.Time{time.Now()}), -1},
		{"empty", vector.New[point](), -1},
		{"mixed any", vector.FromSlice([]any{1, "a", 2.5}), -1},
		{"struct", vector.FromSlice([]point{{1, 2}}), 0},
		{"bool", vector.FromSlice([]bool{true}), 0},
		{"nil in any", vector.FromSlice([]any{1, nil}), 1},
		{"slice in any", vector.FromSlice([]any{"a", "b", []int{1}}), 2},
		{"pointer", vector.FromSlice([]*int{new(int)}), 0},
	} {
		t.Run(x.name, func(t *testing.T) {
			err := x.v.CheckSupportComparable()
			if x.index < 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, vector.IsUnsupportedElementType(err))
			var ute *vector.UnsupportedElementTypeError
			require.True(t, errors.As(err, &ute))
			assert.Equal(t, x.index, ute.Index)
		})
	}
}

func TestCheckSupportComparable_Message(t *testing.T) {
	err := vector.FromSlice([]any{1, true}).CheckSupportComparable()
	assert.EqualError(t, err, "vector: element 1 of type bool is not comparable")
}

func TestSort(t *testing.T) {
	v := vector.FromSlice([]int{3, 1, 2})
	assert.ErrorIs(t, v.Sort(), vector.ErrNotImplemented)
	assert.ErrorIs(t, vector.Sort(v), vector.ErrNotImplemented)
	assert.Equal(t, []int{3, 1, 2}, v.Slice(), "sort does not modify the vector")

	p := vector.FromSlice([]point{{2, 1}, {1, 2}})
	err := p.Sort()
	assert.True(t, vector.IsUnsupportedElementType(err))
	assert.NotErrorIs(t, err, vector.ErrNotImplemented)
	assert.Equal(t, []point{{2, 1}, {1, 2}}, p.Slice())
}
