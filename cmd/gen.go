package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wundergraph/rtkquery-codegen/pkg/codegen"
	"github.com/wundergraph/rtkquery-codegen/pkg/config"
)

var (
	projectFile    string
	dryRun         bool
	skipValidation bool
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "gen generates all outputs of a project file",
	Long: `gen reads a project file (codegen.yml) and generates every file listed under generates.
Use the rtkQuery sub command to generate a single file from flags.`,
	Example: "rtkquery gen --config codegen.yml",
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := config.LoadProject(viper.GetString("config"))
		if err != nil {
			return err
		}

		results, err := newRunner().RunProject(cmd.Context(), project)
		printResults(cmd.OutOrStdout(), results)
		return err
	},
}

func newRunner() *codegen.Runner {
	return codegen.NewRunner(
		codegen.WithRunnerLogger(logger),
		codegen.WithDryRun(viper.GetBool("dryRun")),
		codegen.WithSchemaValidation(!viper.GetBool("skipValidation")),
	)
}

func printResults(out io.Writer, results []codegen.Result) {
	for _, result := range results {
		switch {
		case viper.GetBool("dryRun"):
			_, _ = out.Write(result.Content)
		case result.Changed:
			fmt.Fprintf(out, "generated %s (%d operations, %d fragments)\n", result.Output, result.Operations, result.Fragments)
		default:
			fmt.Fprintf(out, "unchanged %s\n", result.Output)
		}
	}
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().StringVarP(&projectFile, "config", "c", "codegen.yml", "config is the project file listing all outputs")
	_ = viper.BindPFlag("config", genCmd.Flags().Lookup("config"))

	genCmd.PersistentFlags().BoolVar(&dryRun, "dryRun", false, "dryRun prints the generated code instead of writing files")
	_ = viper.BindPFlag("dryRun", genCmd.PersistentFlags().Lookup("dryRun"))

	genCmd.PersistentFlags().BoolVar(&skipValidation, "skipValidation", false, "skipValidation disables validating the documents against the schema")
	_ = viper.BindPFlag("skipValidation", genCmd.PersistentFlags().Lookup("skipValidation"))
}
