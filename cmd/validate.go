package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wundergraph/rtkquery-codegen/pkg/loader"
)

var (
	validateSchema    []string
	validateDocuments []string
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:     "validate",
	Short:   "validate checks operations and fragments against a schema",
	Example: "rtkquery validate -s ./schema.graphql -d './src/**/*.graphql'",
	RunE: func(cmd *cobra.Command, args []string) error {
		l := loader.New(loader.WithLogger(logger))

		schema, err := l.LoadSchema(cmd.Context(), validateSchema)
		if err != nil {
			return err
		}
		doc, err := l.LoadDocuments(cmd.Context(), validateDocuments)
		if err != nil {
			return err
		}

		report := loader.Validate(schema, doc)
		if report.HasErrors() {
			for _, external := range report.ExternalErrors {
				fmt.Fprintln(cmd.ErrOrStderr(), external.Error())
			}
			return fmt.Errorf("validate: %d errors", len(report.ExternalErrors))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d operations and %d fragments are valid\n", len(doc.Operations), len(doc.Fragments))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringSliceVarP(&validateSchema, "schema", "s", nil, "schema files or glob patterns (required)")
	_ = validateCmd.MarkFlagRequired("schema")
	validateCmd.Flags().StringSliceVarP(&validateDocuments, "documents", "d", nil, "operation and fragment files or glob patterns (required)")
	_ = validateCmd.MarkFlagRequired("documents")
}
