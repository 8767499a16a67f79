package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wundergraph/rtkquery-codegen/pkg/loader"
)

// documentsCmd represents the documents command
var documentsCmd = &cobra.Command{
	Use:     "documents [patterns...]",
	Short:   "documents prints operations and fragments with all imports resolved",
	Example: "rtkquery fmt documents './src/**/*.graphql' > operations.graphql",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loader.New(loader.WithLogger(logger)).LoadDocuments(cmd.Context(), args)
		if err != nil {
			return err
		}
		return fmtPrinter().PrintExecutable(doc, cmd.OutOrStdout())
	},
}

func init() {
	fmtCmd.AddCommand(documentsCmd)
}
