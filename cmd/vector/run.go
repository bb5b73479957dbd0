// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/korrel8r/vector/internal/pkg/must"
	"github.com/korrel8r/vector/pkg/unique"
	"github.com/korrel8r/vector/pkg/vector"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [--file FILE] [--keep-going]",
	Short: "Run a script of vector operations",
	Long: `Run a script of vector operations read from a YAML or JSON file, or stdin.

  values: [3, 1, 3]
  ops:
    - {op: insert, index: 1, value: 2}
    - {op: dedup}
    - {op: indexOf, value: 2}

Prints the result of each operation and the final vector.
Stops at the first error unless --keep-going is set.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var r io.Reader = cmd.InOrStdin()
		if *runFile != "" && *runFile != "-" {
			f := must.Must1(os.Open(*runFile))
			defer func() { _ = f.Close() }()
			r = f
		}
		script := must.Must1(ReadScript(r))
		report := &Report{Vector: vector.New[any]()}
		report.Vector.Append(script.Values...)
		var errs unique.Errors
		for i, op := range script.Ops {
			result, err := Apply(report.Vector, op)
			log.V(2).Info("apply", "op", op.Op, "result", result, "error", err)
			if err != nil {
				err = fmt.Errorf("op %v (%v): %w", i, op.Op, err)
				if !*keepGoing {
					must.Must(err)
				}
				errs.Add(err)
				report.Results = append(report.Results, Result{Op: op.Op, Error: err.Error()})
				continue
			}
			report.Results = append(report.Results, Result{Op: op.Op, Result: result})
		}
		newPrinter(cmd.OutOrStdout()).Print(report)
		if errs.Err() != nil {
			log.V(1).Info("script errors", "count", errs.Len())
			must.Must(errs.Err())
		}
	},
}

var (
	runFile   *string
	keepGoing *bool
)

func init() {
	runFile = runCmd.Flags().StringP("file", "f", "", "read script from file, default stdin")
	keepGoing = runCmd.Flags().BoolP("keep-going", "k", false, "continue after errors, report them at the end")
	rootCmd.AddCommand(runCmd)
}
