package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/wundergraph/rtkquery-codegen/pkg/loader"
	"github.com/wundergraph/rtkquery-codegen/pkg/operationreport"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:     "schema",
	Short:   "schema formats a graphql schema file and its imports to std out",
	Example: "rtkquery fmt schema schema.graphql > formatted.graphql",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("schema: must provide 1 arg (fileName)")
		}

		scanner := &loader.Scanner{}
		file, err := scanner.ScanFile(args[0])
		if err != nil {
			return err
		}

		buf := bytes.Buffer{}
		if err := file.Render(false, &buf); err != nil {
			return err
		}

		doc, err := parser.ParseSchema(&ast.Source{Name: args[0], Input: buf.String()})
		if err != nil {
			report := operationreport.Report{}
			report.AddError(err)
			return report
		}

		return fmtPrinter().PrintSchemaDocument(doc, cmd.OutOrStdout())
	},
}

func init() {
	fmtCmd.AddCommand(schemaCmd)
}
