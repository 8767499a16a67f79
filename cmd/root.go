package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jensneuse/abstractlogger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "RTK"

var (
	verbose bool

	zapLogger *zap.Logger
	logger    abstractlogger.Logger = abstractlogger.NoopLogger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rtkquery",
	Short: "rtkquery generates RTK Query endpoints from GraphQL operations",
	Long: `rtkquery reads GraphQL operations and fragments and generates a TypeScript module
which injects one endpoint per query and mutation into an existing RTK Query api.
Subscriptions get standalone hooks on top of apollo's useSubscription.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		zapLogger, err = newZapLogger(viper.GetBool("verbose"))
		if err != nil {
			return err
		}
		level := abstractlogger.InfoLevel
		if viper.GetBool("verbose") {
			level = abstractlogger.DebugLevel
		}
		logger = abstractlogger.NewZapLogger(zapLogger, level)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if zapLogger != nil {
			_ = zapLogger.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose enables debug logging")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func newZapLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopmentConfig().Build()
	}
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableStacktrace = true
	return config.Build()
}
