package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runInit(t *testing.T, args ...string) (string, error) {
	t.Helper()
	useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"init"}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func readConfig(t *testing.T, path string) *viper.Viper {
	t.Helper()

	config := viper.New()
	config.SetConfigFile(path)
	require.NoError(t, config.ReadInConfig())

	return config
}

func TestInitCmd_WritesDefaultConfigFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, err := runInit(t)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+configFileName)

	config := readConfig(t, configFileName)
	assert.Equal(t, currentConfigVersion, config.GetInt(configVersionKey))
	assert.Equal(t, "mlir/examples/standalone", config.GetString(templateSubPathKey))
	assert.Equal(t, "Standalone", config.GetString(templateNameConfigKey))
	assert.False(t, config.IsSet(reportConfigKey), "per-run report path is not persisted")
	assert.False(t, config.IsSet(logFilenameKey), "log file location is not persisted")
}

func TestInitCmd_CapturesEnvironment(t *testing.T) {
	t.Setenv("MLIR_UTILS_TEMPLATE_NAME", "Toy")
	path := filepath.Join(t.TempDir(), "custom.yaml")

	_, err := runInit(t, path)
	require.NoError(t, err)

	assert.Equal(t, "Toy", readConfig(t, path).GetString(templateNameConfigKey))
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte("existing: true\n"), 0o644))

	_, err := runInit(t, path)
	require.Error(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing: true\n", string(contents))
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte("existing: true\n"), 0o644))

	_, err := runInit(t, path, "--force")
	require.NoError(t, err)

	config := readConfig(t, path)
	assert.False(t, config.IsSet("existing"))
	assert.Equal(t, "Standalone", config.GetString(templateNameConfigKey))
}
