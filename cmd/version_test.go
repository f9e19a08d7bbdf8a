package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionLines(t *testing.T) {
	lines := versionLines(buildVersion{Tool: "v1.2.3", Go: "go1.25.1"})

	assert.Equal(t, []string{
		"mlir-utils\tv1.2.3",
		"go\tgo1.25.1",
		"template\t<llvm-project>/mlir/examples/standalone",
		"template name\tStandalone",
		"header width\t80",
	}, lines)
}

func TestVersionLines_FollowsConfig(t *testing.T) {
	t.Setenv("MLIR_UTILS_TEMPLATE_SUBPATH", "mlir/examples/toy/Ch2")
	t.Setenv("MLIR_UTILS_TEMPLATE_NAME", "Toy")

	lines := versionLines(buildVersion{Tool: "v1.2.3", Go: "go1.25.1"})

	assert.Contains(t, lines, "template\t<llvm-project>/mlir/examples/toy/Ch2")
	assert.Contains(t, lines, "template name\tToy")
}

func TestReadBuildVersion(t *testing.T) {
	v := readBuildVersion()

	assert.NotEmpty(t, v.Tool)
	assert.NotEmpty(t, v.Go)
}

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	output := out.String()
	assert.Contains(t, output, "mlir-utils\t")
	assert.Contains(t, output, "template name\t")
	assert.Contains(t, output, "header width\t80")
}

func TestVersionCmd_RejectsArguments(t *testing.T) {
	cmd := newVersionCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}
