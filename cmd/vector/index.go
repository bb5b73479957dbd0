// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package main

import (
	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index TARGET [VALUE...]",
	Short: "Print the index of the first VALUE equal to TARGET, or -1",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target := parseValue(args[0])
		v := newVector(args[1:])
		high := *indexHigh
		if high < 0 {
			high = v.Size()
		}
		i := v.IndexOfRange(target, *indexLow, high)
		log.V(1).Info("index", "target", target, "low", *indexLow, "high", high, "index", i)
		newPrinter(cmd.OutOrStdout()).Print(i)
	},
}

var indexLow, indexHigh *int

func init() {
	indexLow = indexCmd.Flags().Int("low", 0, "start of the search range")
	indexHigh = indexCmd.Flags().Int("high", -1, "end of the search range (exclusive), negative means the number of VALUEs")
	rootCmd.AddCommand(indexCmd)
}
