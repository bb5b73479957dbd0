// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package main

import (
	"github.com/spf13/cobra"
)

var dedupCmd = &cobra.Command{
	Use:   "dedup [VALUE...]",
	Short: "Remove duplicate VALUEs, keeping the first of each in order",
	Run: func(cmd *cobra.Command, args []string) {
		v := newVector(args)
		removed := v.Deduplicate()
		log.V(1).Info("deduplicate", "removed", removed, "size", v.Size())
		newPrinter(cmd.OutOrStdout()).Print(v)
	},
}

func init() {
	rootCmd.AddCommand(dedupCmd)
}
