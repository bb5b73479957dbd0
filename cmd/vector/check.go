// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package main

import (
	"fmt"

	"github.com/korrel8r/vector/internal/pkg/must"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [VALUE...]",
	Short: "Check that all VALUEs can be ordered",
	Long: `Check that all VALUEs can be ordered.
Numbers and strings can be ordered; null, booleans, lists and maps cannot.
Exits with an error naming the first VALUE that cannot be ordered.`,
	Run: func(cmd *cobra.Command, args []string) {
		must.Must(newVector(args).CheckSupportComparable())
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
