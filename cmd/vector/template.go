// Copyright: This file is part of korrel8r, released under https://github.com/korrel8r/korrel8r/blob/main/LICENSE

package main

import (
	"io"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/korrel8r/vector/internal/pkg/must"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template [--file FILE|--template STRING] [VALUE...]",
	Short: `Apply a Go template to a vector built from VALUEs.`,
	Long: `Apply a Go template to a vector built from VALUEs.
Reads the template from stdin if neither --file nor --template is provided.
The template data has fields .Items, .Size, .Cap and .String, sprig functions are available.`,
	Run: func(cmd *cobra.Command, args []string) {
		if *templateString == "" { // Read from file
			switch *templateFile {
			case "", "-":
				*templateString = string(must.Must1(io.ReadAll(cmd.InOrStdin())))
			default:
				*templateString = string(must.Must1(os.ReadFile(*templateFile)))
			}
		}
		v := newVector(args)
		data := templateData{Items: v.Slice(), Size: v.Size(), Cap: v.Cap(), String: v.String()}
		t := must.Must1(template.New("vector").Funcs(sprig.TxtFuncMap()).Parse(*templateString))
		must.Must(t.Execute(cmd.OutOrStdout(), data))
	},
}

type templateData struct {
	Items     []any
	Size, Cap int
	String    string
}

var templateFile, templateString *string

func init() {
	templateFile = templateCmd.Flags().StringP("file", "f", "", "read template from file")
	templateString = templateCmd.Flags().StringP("template", "t", "", "use template string")
	rootCmd.AddCommand(templateCmd)
}
