// Package cmd provides the root command and CLI setup for mlir-utils.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mlirutils.dev/pkg/mlirutils/internal/adapter"
	"mlirutils.dev/pkg/mlirutils/internal/controller"
	"mlirutils.dev/pkg/mlirutils/internal/domain"
	m "mlirutils.dev/pkg/mlirutils/internal/model"
)

// workflow is built lazily once the output streams and flags are known.
var workflow domain.Workflow

var (
	dryRunFlag  bool
	reportFlag  string
	plainFlag   bool
	logFileFlag string
	verboseFlag bool
)

const rootLongDescription = `mlir-utils scaffolds and renames MLIR dialects.

It copies the standalone dialect template shipped with llvm-project and
substitutes the dialect name in every file name and file body, in its exact,
lowercase and uppercase spellings. Banner comments starting with "//===-"
are kept at 80 columns.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          appName,
		Short:        "MLIR dialect scaffolding and renaming tool",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if workflow == nil {
				workflow = newWorkflow(cmd)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.BoolVar(&dryRunFlag, dryRunFlagName, defaultDryRun, "show the planned renames and diffs without touching the filesystem")
	bindFlagToConfig(flags.Lookup(dryRunFlagName), dryRunConfigKey)

	flags.StringVar(&reportFlag, reportFlagName, defaultReport, "save a YAML report of the changes to this file")
	bindFlagToConfig(flags.Lookup(reportFlagName), reportConfigKey)

	flags.BoolVar(&plainFlag, plainFlagName, defaultPlain, "always use plain text output")
	bindFlagToConfig(flags.Lookup(plainFlagName), plainConfigKey)

	flags.StringVar(&logFileFlag, logFileFlagName, "", "log file path (default: $XDG_STATE_HOME/mlir-utils/mlir-utils.log)")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func newWorkflow(cmd *cobra.Command) domain.Workflow {
	interactive := controller.IsTTY(cmd.OutOrStdout()) && !viper.GetBool(plainConfigKey)

	return domain.NewWorkflow(
		adapter.NewLocalTreeFSAdapter(),
		adapter.NewLocalTextFileAdapter(),
		adapter.NewReportStore(),
		controller.NewUI(cmd, interactive),
	)
}

func outputArgs() domain.OutputArgs {
	return domain.OutputArgs{
		DryRun: viper.GetBool(dryRunConfigKey),
		Report: m.Path(viper.GetString(reportConfigKey)),
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
