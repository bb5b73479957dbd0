// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package main

import (
	"github.com/korrel8r/vector/pkg/vector"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [VALUE...]",
	Short: "Print a vector built from VALUEs",
	Long: `Print a vector built from VALUEs.
Each VALUE is parsed as YAML: numbers, strings, null, lists and maps are allowed.`,
	Run: func(cmd *cobra.Command, args []string) {
		newPrinter(cmd.OutOrStdout()).Print(newVector(args))
	},
}

var rangeCmd = &cobra.Command{
	Use:   "range LOW HIGH [VALUE...]",
	Short: "Print a vector copied from the range [LOW, HIGH) of VALUEs",
	Long: `Print a vector copied from the range [LOW, HIGH) of VALUEs.
The range is clamped to the VALUEs, an empty or reversed range gives an empty vector.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		low, high := parseInt("low", args[0]), parseInt("high", args[1])
		src := newVector(args[2:])
		v := vector.FromRange(src, low, high)
		log.V(1).Info("range", "low", low, "high", high, "size", v.Size(), "capacity", v.Cap())
		newPrinter(cmd.OutOrStdout()).Print(v)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd, rangeCmd)
}
