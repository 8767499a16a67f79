package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wundergraph/rtkquery-codegen/pkg/printer"
)

var fmtIndent string

// fmtCmd represents the fmt command
var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "fmt prints GraphQL files in canonical form",
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.PersistentFlags().StringVar(&fmtIndent, "indent", "  ", "indent is the indentation of nested definitions")
}

func fmtPrinter() *printer.Printer {
	return printer.WithIndent(fmtIndent)
}
