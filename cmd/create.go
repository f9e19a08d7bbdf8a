package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mlirutils.dev/pkg/mlirutils/internal/domain"
	m "mlirutils.dev/pkg/mlirutils/internal/model"
)

const createLongDescription = `Create a new dialect from the standalone template of an llvm-project
checkout.

The template at <llvmProjectPath>/mlir/examples/standalone is copied to
<destinationPath>/<lowercase dialectName>, then every spelling of
"Standalone" is replaced with the new name. If the copy cannot be made
(for example because the destination already exists) a diagnostic is
printed and nothing else happens.`

var (
	templatePathFlag string
	templateNameFlag string
)

// createCmd represents the create-dialect command.
var createCmd = newCreateCmd()

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-dialect <dialectName> <llvmProjectPath> <destinationPath>",
		Short: "Create a new dialect from the standalone template",
		Long:  createLongDescription,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.CreateDialect(cmd.Context(), domain.CreateArgs{
				OutputArgs:  outputArgs(),
				Name:        args[0],
				LLVMProject: m.Path(args[1]),
				Destination: m.Path(args[2]),
				Template: domain.TemplateArgs{
					SubPath: viper.GetString(templateSubPathKey),
					Name:    viper.GetString(templateNameConfigKey),
				},
			})
		},
	}

	configureCreateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(createCmd)
}

func configureCreateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&templatePathFlag, templatePathFlagName, domain.DefaultTemplateSubPath, "template location relative to the llvm-project checkout")
	bindFlagToConfig(cmd.Flags().Lookup(templatePathFlagName), templateSubPathKey)

	cmd.Flags().StringVar(&templateNameFlag, templateNameFlagName, domain.DefaultTemplateName, "dialect name used inside the template")
	bindFlagToConfig(cmd.Flags().Lookup(templateNameFlagName), templateNameConfigKey)
}
