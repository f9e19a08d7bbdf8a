package adapter

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	m "mlirutils.dev/pkg/mlirutils/internal/model"
)

// reportFormatVersion is bumped whenever the persisted layout changes.
const reportFormatVersion = 1

// ReportStore persists substitution reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.Report) error
	LoadReport(path m.Path) (m.Report, error)
}

type reportDocument struct {
	Version  int `yaml:"version"`
	m.Report `yaml:",inline"`
}

// YAMLReportStore stores reports as YAML documents.
type YAMLReportStore struct {
	fs afero.Fs
}

// NewReportStore returns a store writing to the operating system filesystem.
func NewReportStore() *YAMLReportStore {
	return NewReportStoreWithFs(afero.NewOsFs())
}

// NewReportStoreWithFs returns a store writing to fs.
func NewReportStoreWithFs(fs afero.Fs) *YAMLReportStore {
	return &YAMLReportStore{fs: fs}
}

// SaveReport writes report to path, creating parent directories.
func (s *YAMLReportStore) SaveReport(path m.Path, report m.Report) error {
	data, err := yaml.Marshal(reportDocument{Version: reportFormatVersion, Report: report})
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	if err := afero.WriteFile(s.fs, string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads a report previously written by SaveReport.
func (s *YAMLReportStore) LoadReport(path m.Path) (m.Report, error) {
	data, err := afero.ReadFile(s.fs, string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var doc reportDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return m.Report{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	if doc.Version > reportFormatVersion {
		return m.Report{}, fmt.Errorf("report %s has unsupported version %d", path, doc.Version)
	}

	return doc.Report, nil
}
