package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wundergraph/rtkquery-codegen/pkg/codegen"
	"github.com/wundergraph/rtkquery-codegen/pkg/config"
)

var (
	rtkQuerySchema    []string
	rtkQueryDocuments []string
	rtkQueryOut       string
)

type stringFlag struct {
	name  string
	usage string
	dst   func(raw *config.RawConfig) **string
}

type boolFlag struct {
	name  string
	usage string
	dst   func(raw *config.RawConfig) **bool
}

var rtkQueryStringFlags = []stringFlag{
	{"importBaseApiFrom", "module path of the base api to inject the endpoints into (required)", func(r *config.RawConfig) **string { return &r.ImportBaseAPIFrom }},
	{"importBaseApiAlternateName", "local name of the imported base api (default \"api\")", func(r *config.RawConfig) **string { return &r.ImportBaseAPIAlternateName }},
	{"exportApiName", "name of the named api export, inferred from --out when empty", func(r *config.RawConfig) **string { return &r.ExportAPIName }},
	{"overrideExisting", "expression injected as overrideExisting, e.g. module.hot?.status() === \"apply\"", func(r *config.RawConfig) **string { return &r.OverrideExisting }},
	{"importOperationTypesFrom", "namespace the operation types are imported as", func(r *config.RawConfig) **string { return &r.ImportOperationTypesFrom }},
	{"importOperationTypesPath", "module path the operation types are imported from", func(r *config.RawConfig) **string { return &r.ImportOperationTypesPath }},
	{"typesPrefix", "prefix of the operation type names", func(r *config.RawConfig) **string { return &r.TypesPrefix }},
	{"typesSuffix", "suffix of the operation type names", func(r *config.RawConfig) **string { return &r.TypesSuffix }},
}

var rtkQueryBoolFlags = []boolFlag{
	{"exportHooks", "export the generated hooks and the subscription hooks", func(r *config.RawConfig) **bool { return &r.ExportHooks }},
	{"exportApi", "export the injected api under exportApiName", func(r *config.RawConfig) **bool { return &r.ExportAPI }},
	{"exportDefaultApi", "export the injected api as default export, wins over exportApi (default true)", func(r *config.RawConfig) **bool { return &r.ExportDefaultAPI }},
	{"exportDocument", "export the operation documents", func(r *config.RawConfig) **bool { return &r.ExportDocument }},
	{"addTransformResponse", "add an identity transformResponse to every endpoint", func(r *config.RawConfig) **bool { return &r.AddTransformResponse }},
	{"dedupeOperationSuffix", "don't repeat the operation kind in type names of operations ending with it", func(r *config.RawConfig) **bool { return &r.DedupeOperationSuffix }},
	{"omitOperationSuffix", "omit the operation kind in type names", func(r *config.RawConfig) **bool { return &r.OmitOperationSuffix }},
}

// rtkQueryCmd represents the rtkQuery command
var rtkQueryCmd = &cobra.Command{
	Use:   "rtkQuery",
	Short: "Generates RTK Query endpoints for one output file",
	Long: `rtkQuery generates a single TypeScript module from flags.
Every option can also be set as environment variable, e.g. RTK_IMPORTBASEAPIFROM.`,
	Example: `rtkquery gen rtkQuery -s ./schema.graphql -d './src/**/*.graphql' -o ./src/api.generated.ts --importBaseApiFrom @/lib/baseApi --exportHooks`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target := config.Target{
			Output:    rtkQueryOut,
			Schema:    rtkQuerySchema,
			Documents: rtkQueryDocuments,
			Config:    rawConfigFromFlags(cmd),
		}

		result, err := newRunner().Run(cmd.Context(), target)
		if err != nil {
			return err
		}
		printResults(cmd.OutOrStdout(), []codegen.Result{result})
		return nil
	},
}

// rawConfigFromFlags only sets the options given as flag or environment variable,
// everything else keeps its default.
func rawConfigFromFlags(cmd *cobra.Command) config.RawConfig {
	raw := config.RawConfig{}
	for _, flag := range rtkQueryStringFlags {
		if isSet(cmd, flag.name) {
			*flag.dst(&raw) = config.String(viper.GetString(flag.name))
		}
	}
	for _, flag := range rtkQueryBoolFlags {
		if isSet(cmd, flag.name) {
			*flag.dst(&raw) = config.Bool(viper.GetBool(flag.name))
		}
	}
	return raw
}

func isSet(cmd *cobra.Command, name string) bool {
	if cmd.Flags().Changed(name) {
		return true
	}
	_, ok := os.LookupEnv(envPrefix + "_" + strings.ToUpper(name))
	return ok
}

func init() {
	genCmd.AddCommand(rtkQueryCmd)

	rtkQueryCmd.Flags().StringSliceVarP(&rtkQuerySchema, "schema", "s", nil, "schema files or glob patterns, enables validation (optional)")
	rtkQueryCmd.Flags().StringSliceVarP(&rtkQueryDocuments, "documents", "d", nil, "operation and fragment files or glob patterns (required)")
	_ = rtkQueryCmd.MarkFlagRequired("documents")
	rtkQueryCmd.Flags().StringVarP(&rtkQueryOut, "out", "o", "", "out is the generated file (required)")
	_ = rtkQueryCmd.MarkFlagRequired("out")

	for _, flag := range rtkQueryStringFlags {
		rtkQueryCmd.Flags().String(flag.name, "", flag.usage)
		_ = viper.BindPFlag(flag.name, rtkQueryCmd.Flags().Lookup(flag.name))
	}
	for _, flag := range rtkQueryBoolFlags {
		rtkQueryCmd.Flags().Bool(flag.name, false, flag.usage)
		_ = viper.BindPFlag(flag.name, rtkQueryCmd.Flags().Lookup(flag.name))
	}
}
