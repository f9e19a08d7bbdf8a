package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const forceFlagName = "force"

var initForceFlag bool

// initConfigKeys are the settings written by init, in the order a user is
// most likely to edit them.
var initConfigKeys = []string{
	configVersionKey,
	templateSubPathKey,
	templateNameConfigKey,
	dryRunConfigKey,
	plainConfigKey,
	logLevelKey,
	logMaxSizeKey,
	logMaxBackupsKey,
	logMaxAgeKey,
	logCompressKey,
}

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a default mlir-utils.yaml configuration file",
		Long: `Create a mlir-utils.yaml (or the given path) holding the template location,
template name, output and logging settings currently in effect, so they can
be edited manually. An existing file is kept unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)
			if len(args) == 1 {
				targetPath = args[0]
			}

			if err := writeInitialConfig(targetPath, initForceFlag); err != nil {
				return err
			}

			cmd.Printf("wrote %s\n", targetPath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&initForceFlag, forceFlagName, false, "overwrite an existing configuration file")

	return cmd
}

// writeInitialConfig writes the dialect settings to path. Flags and
// per-run values such as the report path are left out.
func writeInitialConfig(path string, force bool) error {
	config := viper.New()
	config.SetConfigType("yaml")

	for _, key := range initConfigKeys {
		config.Set(key, viper.Get(key))
	}

	write := config.SafeWriteConfigAs
	if force {
		write = config.WriteConfigAs
	}

	if err := write(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
