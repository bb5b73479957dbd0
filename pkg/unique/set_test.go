// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package unique_test

import (
	"testing"

	"github.com/korrel8r/vector/pkg/unique"
	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := unique.NewSet(1, 2, 1, 3)
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has(2))
	assert.False(t, s.Add(2))
	assert.True(t, s.Add(4))
	s.Remove(1)
	assert.False(t, s.Has(1))
	assert.Equal(t, unique.Set[int]{2: {}, 3: {}, 4: {}}, s)
}

func TestSet_Empty(t *testing.T) {
	s := unique.NewSet[string]()
	assert.Zero(t, s.Len())
	assert.False(t, s.Has(""))
}
