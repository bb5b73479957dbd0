// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/korrel8r/vector/pkg/vector"
	"sigs.k8s.io/yaml"
)

// Script is a list of operations to apply to a vector created from Values.
type Script struct {
	Values []any `json:"values,omitempty"`
	Ops    []Op  `json:"ops"`
}

// Op is a single vector operation.
type Op struct {
	// Op is one of: append, insert, remove, get, indexOf, dedup, check, sort, size.
	Op     string `json:"op"`
	Index  *int   `json:"index,omitempty"`
	Value  any    `json:"value,omitempty"`
	Values []any  `json:"values,omitempty"`
	Low    *int   `json:"low,omitempty"`
	High   *int   `json:"high,omitempty"`
}

// Result of applying an Op.
type Result struct {
	Op     string `json:"op"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Report of running a script.
type Report struct {
	Results []Result            `json:"results"`
	Vector  *vector.Vector[any] `json:"vector"`
}

func (r *Report) String() string {
	w := &strings.Builder{}
	for _, x := range r.Results {
		fmt.Fprint(w, x.Op)
		switch {
		case x.Error != "":
			fmt.Fprintf(w, " error: %v", x.Error)
		case x.Result != nil:
			fmt.Fprintf(w, " %v", x.Result)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, r.Vector)
	return w.String()
}

var errMissingIndex = errors.New("missing index")

// ReadScript reads a YAML or JSON script.
func ReadScript(r io.Reader) (*Script, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s := &Script{}
	if err := yaml.UnmarshalStrict(b, s); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return s, nil
}

// Apply op to v, returns the result of the operation.
func Apply(v *vector.Vector[any], op Op) (any, error) {
	index := func() (int, error) {
		if op.Index == nil {
			return 0, errMissingIndex
		}
		return *op.Index, nil
	}
	switch op.Op {
	case "append":
		if op.Values == nil {
			v.Append(op.Value)
		} else {
			v.Append(op.Values...)
		}
		return v.Size(), nil
	case "insert":
		i, err := index()
		if err != nil {
			return nil, err
		}
		return nil, v.Insert(i, op.Value)
	case "remove":
		i, err := index()
		if err != nil {
			return nil, err
		}
		return v.Remove(i)
	case "get":
		i, err := index()
		if err != nil {
			return nil, err
		}
		return v.Get(i)
	case "indexOf":
		low, high := 0, v.Size()
		if op.Low != nil {
			low = *op.Low
		}
		if op.High != nil {
			high = *op.High
		}
		return v.IndexOfRange(op.Value, low, high), nil
	case "dedup":
		return v.Deduplicate(), nil
	case "check":
		if err := v.CheckSupportComparable(); err != nil {
			return nil, err
		}
		return "ok", nil
	case "sort":
		return nil, v.Sort()
	case "size":
		return v.Size(), nil
	default:
		return nil, fmt.Errorf("unknown operation: %q", op.Op)
	}
}
