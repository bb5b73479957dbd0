// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package metrics

import (
	"strings"
	"testing"

	"github.com/korrel8r/vector/pkg/vector"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowth(t *testing.T) {
	g := NewGrowth()
	v := vector.New[int]()
	v.SetGrowHook(g.Observe)
	for i := range 4*vector.DefaultCapacity + 1 { // 8 -> 16 -> 32 -> 64
		v.Append(i)
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(g.Grows))
	assert.Equal(t, 8.0+16+32, testutil.ToFloat64(g.Copied))
	assert.Equal(t, 64.0, testutil.ToFloat64(g.Capacity))
	assert.Equal(t, 1, testutil.CollectAndCount(g.Factor))
}

func TestGrowth_Write(t *testing.T) {
	g := NewGrowth()
	g.Observe(8, 16)
	w := &strings.Builder{}
	require.NoError(t, g.Write(w))
	out := w.String()
	assert.Contains(t, out, "# TYPE vector_grow_total counter\nvector_grow_total 1\n")
	assert.Contains(t, out, "vector_capacity 16\n")
	assert.Contains(t, out, `vector_grow_factor_bucket{le="2"} 1`)
	assert.Contains(t, out, `vector_grow_factor_bucket{le="1.5"} 0`)
}
