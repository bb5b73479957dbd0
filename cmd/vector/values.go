// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package main

import (
	"strconv"

	"github.com/korrel8r/vector/internal/pkg/must"
	"github.com/korrel8r/vector/pkg/vector"
	"sigs.k8s.io/yaml"
)

// parseValue parses a command line argument as a YAML value.
// Arguments that are not valid YAML are used as plain strings.
func parseValue(arg string) any {
	var v any
	if err := yaml.Unmarshal([]byte(arg), &v); err != nil {
		return arg
	}
	return v
}

func parseValues(args []string) []any {
	values := make([]any, len(args))
	for i, arg := range args {
		values[i] = parseValue(arg)
	}
	return values
}

func newVector(args []string) *vector.Vector[any] {
	v := vector.New[any]()
	v.Append(parseValues(args)...)
	log.V(2).Info("vector", "size", v.Size(), "capacity", v.Cap())
	return v
}

func parseInt(name, arg string) int {
	n, err := strconv.Atoi(arg)
	must.Must(err, "invalid %v %q", name, arg)
	return n
}
