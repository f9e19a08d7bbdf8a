package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mlirutils.dev/pkg/mlirutils/internal/domain"
	m "mlirutils.dev/pkg/mlirutils/internal/model"
)

var errNoReport = errors.New("no report file given")

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report.yaml]",
		Short: "View a previously saved change report",
		Long:  "View a change report saved with --report. Without an argument the --report value is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportPath := viper.GetString(reportConfigKey)
			if len(args) == 1 {
				reportPath = args[0]
			}

			if reportPath == "" {
				return errNoReport
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Report: m.Path(reportPath)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
