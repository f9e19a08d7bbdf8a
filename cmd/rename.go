package cmd

import (
	"github.com/spf13/cobra"

	"mlirutils.dev/pkg/mlirutils/internal/domain"
	m "mlirutils.dev/pkg/mlirutils/internal/model"
)

// renameCmd represents the rename-dialect command.
var renameCmd = newRenameCmd()

func newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename-dialect <currentName> <newName> <dialectPath>",
		Short: "Rename an existing dialect in place",
		Long: `Replace every exact, lowercase and uppercase spelling of currentName with
newName in the file names and file contents under dialectPath.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.RenameDialect(cmd.Context(), domain.RenameArgs{
				OutputArgs: outputArgs(),
				Current:    args[0],
				Next:       args[1],
				Path:       m.Path(args[2]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
