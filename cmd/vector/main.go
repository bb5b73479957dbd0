// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

// Command vector exercises the vector package from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/korrel8r/vector/internal/pkg/enumflag"
	"github.com/korrel8r/vector/internal/pkg/logging"
	"github.com/korrel8r/vector/internal/pkg/must"
	"github.com/korrel8r/vector/pkg/build"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:     "vector",
		Short:   "Build, search and deduplicate resizable arrays of values",
		Version: build.Version,
	}
	log = logging.Log()

	// Global Flags
	outputFlag = enumflag.New("text", "text", "json", "json-pretty", "yaml")
	verbose    *int
	panicOnErr *bool
)

func init() {
	panicOnErr = rootCmd.PersistentFlags().Bool("panic", false, "panic on error instead of exit code 1")
	verbose = rootCmd.PersistentFlags().IntP("verbose", "v", 0, "Verbosity for logging")
	rootCmd.PersistentFlags().VarP(outputFlag, "output", "o", outputFlag.DocString("Output format"))
	cobra.OnInitialize(func() { logging.Init(*verbose) }) // After flags are parsed
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) { profiler = StartProfile() }
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) { profiler.Stop() }
}

func main() {
	// Code in this package panics with an error to exit.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, r)
			if *panicOnErr {
				panic(r)
			}
			os.Exit(1)
		}
		os.Exit(0)
	}()
	must.Must(rootCmd.Execute())
}
