// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package vector_test

import (
	"strings"
	"testing"
	"time"

	"github.com/korrel8r/vector/pkg/vector"
	"github.com/stretchr/testify/assert"
)

func TestIndexOf(t *testing.T) {
	v := vector.FromSlice([]string{"a", "b", "c", "b"})
	assert.Equal(t, 0, v.IndexOf("a"))
	assert.Equal(t, 1, v.IndexOf("b"))
	assert.Equal(t, 2, v.IndexOf("c"))
	assert.Equal(t, vector.NotFound, v.IndexOf("x"))
	assert.True(t, v.Contains("c"))
	assert.False(t, v.Contains("x"))
}

func TestIndexOf_Last(t *testing.T) {
	v := vector.FromSlice([]string{"target"})
	assert.Equal(t, 0, v.IndexOf("target"))
	v = vector.FromSlice([]string{"a", "b", "target"})
	assert.Equal(t, 2, v.IndexOf("target"))
}

func TestIndexOf_Empty(t *testing.T) {
	assert.Equal(t, vector.NotFound, vector.New[int]().IndexOf(0))
	var v vector.Vector[int]
	assert.Equal(t, vector.NotFound, v.IndexOf(0))
}

func TestIndexOfRange(t *testing.T) {
	v := vector.FromSlice([]int{5, 6, 5, 7, 5})
	for _, x := range []struct {
		name      string
		low, high int
		want      int
	}{
		{"all", 0, 5, 0},
		{"skip first", 1, 5, 2},
		{"last only", 3, 5, 4},
		{"high excluded", 1, 2, vector.NotFound},
		{"empty", 2, 2, vector.NotFound},
		{"reversed", 4, 0, vector.NotFound},
		{"clamp", -3, 100, 0},
		{"beyond size", 5, 100, vector.NotFound},
	} {
		t.Run(x.name, func(t *testing.T) {
			assert.Equal(t, x.want, v.IndexOfRange(5, x.low, x.high))
		})
	}
}

func TestIndexOfRange_Unused(t *testing.T) {
	// Slots past Size() are never read, even if they hold a matching zero value.
	v := vector.New[int]()
	v.Append(1, 2)
	assert.Equal(t, vector.NotFound, v.IndexOfRange(0, 0, v.Cap()))
}

func TestIndexOf_Nil(t *testing.T) {
	x := 1
	p := &x
	v := vector.FromSlice([]*int{p, nil, p, nil})
	assert.Equal(t, 1, v.IndexOf(nil))
	assert.Equal(t, 3, v.IndexOfRange(nil, 2, 4))
	assert.Equal(t, vector.NotFound, v.IndexOfRange(nil, 2, 3))
	assert.Equal(t, 0, v.IndexOf(p))

	// Value equality: a different pointer to an equal value matches.
	y := 1
	assert.Equal(t, 0, v.IndexOf(&y))

	// No nil elements.
	assert.Equal(t, vector.NotFound, vector.FromSlice([]*int{p}).IndexOf(nil))
}

func TestIndexOf_Any(t *testing.T) {
	v := vector.FromSlice([]any{1, nil, "a", []int{1, 2}, map[string]any{"k": 1}, []int(nil)})
	assert.Equal(t, 0, v.IndexOf(1))
	assert.Equal(t, 1, v.IndexOf(nil))
	assert.Equal(t, 2, v.IndexOf("a"))
	assert.Equal(t, 3, v.IndexOf([]int{1, 2}), "slices are compared by value")
	assert.Equal(t, 4, v.IndexOf(map[string]any{"k": 1}))
	assert.Equal(t, vector.NotFound, v.IndexOf(1.0), "different types are not equal")
	assert.Equal(t, 1, v.IndexOf([]int(nil)), "typed nil is the nil sentinel")
}

func TestIndexOf_Equaler(t *testing.T) {
	now := time.Now()
	utc := now.UTC()
	v := vector.FromSlice([]time.Time{now.Add(time.Hour), now})
	assert.Equal(t, 1, v.IndexOf(utc), "time.Time.Equal ignores location")
}

func TestNewFunc(t *testing.T) {
	v := vector.NewFunc(strings.EqualFold)
	v.Append("Hello", "World")
	assert.Equal(t, 1, v.IndexOf("WORLD"))
	assert.Equal(t, vector.NotFound, v.IndexOf("x"))

	v = vector.NewFunc[string](nil)
	v.Append("Hello")
	assert.Equal(t, vector.NotFound, v.IndexOf("HELLO"))
	assert.Equal(t, 0, v.IndexOf("Hello"))
}
