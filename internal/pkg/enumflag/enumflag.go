// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

// Package enumflag is a flag value that allows one of a list of strings.
// Implements standard flag.Value and cobra pflag.Value
package enumflag

import (
	"fmt"
	"slices"
	"strings"
)

type Value struct {
	Value    string
	Allowed  []string
	Optional bool // Allow the empty string, meaning "not set".
}

func (v *Value) String() string { return v.Value }

func (v *Value) Set(x string) error {
	if !(v.Optional && x == "") && !slices.Contains(v.Allowed, x) {
		return fmt.Errorf("expected one of: %v", strings.Join(v.Allowed, ", "))
	}
	v.Value = x
	return nil
}

// DocString returns a usage string listing the allowed values.
func (v *Value) DocString(msg string) string {
	w := &strings.Builder{}
	if msg != "" {
		fmt.Fprintf(w, "%v: ", msg)
	}
	fmt.Fprintf(w, "one of %v", strings.Join(v.Allowed, ", "))
	return w.String()
}

func (v *Value) Type() string { return "string" }

// New returns a Value with an initial value and sorted list of allowed values.
func New(value string, allowed ...string) *Value {
	allowed = slices.Clone(allowed)
	slices.Sort(allowed)
	return &Value{Allowed: allowed, Value: value}
}

// NewOptional is like New but also allows the empty string.
func NewOptional(value string, allowed ...string) *Value {
	v := New(value, allowed...)
	v.Optional = true
	return v
}
