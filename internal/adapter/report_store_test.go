package adapter

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mlirutils.dev/pkg/mlirutils/internal/model"
)

func TestYAMLReportStore_SaveAndLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewReportStoreWithFs(fs)

	report := m.Report{
		Root:          "dialects/foo",
		Substitutions: m.CaseVariants("Standalone", "Foo"),
		Renames:       []m.Rename{{From: "dialects/foo/Standalone.h", To: "dialects/foo/Foo.h"}},
		Rewrites: []m.Rewrite{{
			Path:        "dialects/foo/Foo.h",
			SizeBefore:  20,
			SizeAfter:   13,
			HeaderFixed: true,
			Before:      "class Standalone {}",
			After:       "class Foo {}",
		}},
		Skipped:  []m.Path{"dialects/foo/logo.png"},
		Warnings: []m.Warning{{Path: "dialects/foo/Foo.td", Message: "Header too long"}},
	}

	require.NoError(t, store.SaveReport(m.Path("reports/run.yaml"), report))

	raw, err := afero.ReadFile(fs, "reports/run.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "version: 1")
	assert.NotContains(t, string(raw), "class Standalone", "file contents are not persisted")

	loaded, err := store.LoadReport(m.Path("reports/run.yaml"))
	require.NoError(t, err)

	assert.Equal(t, report.Root, loaded.Root)
	assert.Equal(t, report.Substitutions, loaded.Substitutions)
	assert.Equal(t, report.Renames, loaded.Renames)
	assert.Equal(t, report.Skipped, loaded.Skipped)
	assert.Equal(t, report.Warnings, loaded.Warnings)
	require.Len(t, loaded.Rewrites, 1)
	assert.True(t, loaded.Rewrites[0].HeaderFixed)
	assert.Empty(t, loaded.Rewrites[0].Before)
}

func TestYAMLReportStore_LoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewReportStoreWithFs(fs)

	_, err := store.LoadReport(m.Path("missing.yaml"))
	require.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "bad.yaml", []byte("root: [unterminated"), 0o644))
	_, err = store.LoadReport(m.Path("bad.yaml"))
	require.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "future.yaml", []byte("version: 99\nroot: x\n"), 0o644))
	_, err = store.LoadReport(m.Path("future.yaml"))
	require.Error(t, err)
}
