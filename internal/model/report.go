package model

import (
	"path/filepath"
	"strings"
)

// Rename records a filesystem entry moved to a new name within its parent.
type Rename struct {
	From Path `yaml:"from"`
	To   Path `yaml:"to"`
}

// Rewrite records a file whose contents were substituted.
type Rewrite struct {
	Path        Path `yaml:"path"`
	SizeBefore  int  `yaml:"size_before"`
	SizeAfter   int  `yaml:"size_after"`
	HeaderFixed bool `yaml:"header_fixed"`

	// Before and After hold the full contents for diff rendering. They are
	// not persisted with the report.
	Before string `yaml:"-"`
	After  string `yaml:"-"`
}

// Warning is a non-fatal problem attached to a single file.
type Warning struct {
	Path    Path   `yaml:"path"`
	Message string `yaml:"message"`
}

// Report is the outcome of one substitution pass over a tree.
type Report struct {
	Root          Path          `yaml:"root"`
	DryRun        bool          `yaml:"dry_run"`
	Substitutions Substitutions `yaml:"substitutions"`
	Renames       []Rename      `yaml:"renames,omitempty"`
	Rewrites      []Rewrite     `yaml:"rewrites,omitempty"`
	Skipped       []Path        `yaml:"skipped,omitempty"`
	Warnings      []Warning     `yaml:"warnings,omitempty"`
}

// HasWarnings reports whether any file produced a warning.
func (r Report) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// BytesWritten sums the sizes of all rewritten files.
func (r Report) BytesWritten() uint64 {
	var total uint64

	for _, rw := range r.Rewrites {
		if rw.SizeAfter > 0 {
			total += uint64(rw.SizeAfter)
		}
	}

	return total
}

// OriginalPath maps a path produced by the pass back to where it was before
// any of the recorded renames.
func (r Report) OriginalPath(path Path) Path {
	current := string(path)

	for i := len(r.Renames) - 1; i >= 0; i-- {
		from, to := string(r.Renames[i].From), string(r.Renames[i].To)

		switch {
		case current == to:
			current = from
		case strings.HasPrefix(current, to+string(filepath.Separator)):
			current = from + current[len(to):]
		}
	}

	return Path(current)
}
