// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

// package slices has generic helpers for slices that are missing from the standard [slices] package.
package slices

import (
	"fmt"
	"strings"
)

// Transform returns a new slice with f applied to each element of t.
func Transform[T, U any](t []T, f func(T) U) []U {
	u := make([]U, len(t))
	for i := range t {
		u[i] = f(t[i])
	}
	return u
}

// Strings formats each element of t with "%v".
func Strings[T any](t []T) []string {
	return Transform(t, func(v T) string { return fmt.Sprintf("%v", v) })
}

// Join formats the elements of t with "%v" and joins them with sep.
func Join[T any](t []T, sep string) string { return strings.Join(Strings(t), sep) }
