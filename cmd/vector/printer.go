// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/korrel8r/vector/internal/pkg/must"
	"sigs.k8s.io/yaml"
)

// printer prints in the format requested by --output
type printer struct{ Print func(any) }

func newPrinter(w io.Writer) printer {
	switch outputFlag.String() {
	case "text":
		return printer{Print: func(v any) { fmt.Fprintln(w, v) }}

	case "json":
		return printer{Print: func(v any) { fmt.Fprintln(w, string(must.Must1(json.Marshal(v)))) }}

	case "json-pretty":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return printer{Print: func(v any) { must.Must(encoder.Encode(v)) }}

	case "yaml":
		return printer{Print: func(v any) { fmt.Fprintf(w, "---\n%s", must.Must1(yaml.Marshal(v))) }}

	default:
		must.Must(fmt.Errorf("invalid output type: %v", outputFlag))
		return printer{}
	}
}
