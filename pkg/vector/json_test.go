// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package vector_test

import (
	"encoding/json"
	"testing"

	"github.com/korrel8r/vector/pkg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func TestJSON(t *testing.T) {
	b, err := json.Marshal(vector.New[int]())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	var zero vector.Vector[int]
	b, err = json.Marshal(&zero)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	b, err = json.Marshal(vector.FromSlice([]string{"a", "b"}))
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, string(b))

	var v vector.Vector[int]
	require.NoError(t, json.Unmarshal([]byte("[1,2,2]"), &v))
	assert.Equal(t, "[1, 2, 2]", v.String())
	assert.Equal(t, 3, v.Cap())
	require.Error(t, json.Unmarshal([]byte(`{"a":1}`), &v))
	assert.Equal(t, "[1, 2, 2]", v.String(), "unchanged on error")
}

func TestYAML(t *testing.T) {
	type doc struct {
		Values *vector.Vector[string] `json:"values"`
	}
	var d doc
	require.NoError(t, yaml.Unmarshal([]byte("values: [a, b]\n"), &d))
	assert.Equal(t, []string{"a", "b"}, d.Values.Slice())
	b, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "values:\n- a\n- b\n", string(b))
}
