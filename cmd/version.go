package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mlirutils.dev/pkg/mlirutils/internal/domain"
)

const unknownVersion = "unknown"

// buildVersion identifies the binary.
type buildVersion struct {
	Tool string
	Go   string
}

func readBuildVersion() buildVersion {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return buildVersion{Tool: unknownVersion, Go: runtime.Version()}
	}

	tool := info.Main.Version
	if tool == "" {
		tool = unknownVersion
	}

	return buildVersion{Tool: tool, Go: info.GoVersion}
}

// versionLines describes the build and the template create-dialect would copy
// with the current configuration.
func versionLines(v buildVersion) []string {
	return []string{
		fmt.Sprintf("%s\t%s", appName, v.Tool),
		fmt.Sprintf("go\t%s", v.Go),
		fmt.Sprintf("template\t<llvm-project>/%s", viper.GetString(templateSubPathKey)),
		fmt.Sprintf("template name\t%s", viper.GetString(templateNameConfigKey)),
		fmt.Sprintf("header width\t%d", domain.HeaderWidth),
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version and template information",
		Long: `Displays the build version, the Go version used to build this tool and the
dialect template create-dialect copies with the current configuration.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, line := range versionLines(readBuildVersion()) {
				cmd.Println(line)
			}
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
