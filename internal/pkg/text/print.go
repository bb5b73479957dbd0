// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

// package text is used to print results as text for the command line.
package text

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteString returns the output of print as a string.
func WriteString(print func(io.Writer)) string {
	w := &strings.Builder{}
	print(w)
	return w.String()
}

// Table writes rows of cells as aligned columns separated by two spaces.
func Table(w io.Writer, rows ...[]any) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer func() { _ = tw.Flush() }()
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}
}

// Error prints an error message.
func Error(w io.Writer, err error) {
	fmt.Fprintln(w, "Error:", err)
}
