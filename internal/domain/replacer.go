package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mlirutils.dev/pkg/mlirutils/internal/adapter"
	m "mlirutils.dev/pkg/mlirutils/internal/model"
)

// ErrInvalidName is returned when a substitution would turn a path component
// into something that is not a single name.
var ErrInvalidName = errors.New("substitution produces an invalid file name")

// Replacer applies substitutions to the names and contents of a tree.
type Replacer interface {
	ReplaceRecursively(ctx context.Context, root m.Path, substitutions m.Substitutions) (m.Report, error)
}

type replacer struct {
	adapter.TreeFSAdapter
	adapter.TextFileAdapter
}

// NewReplacer creates a Replacer working on the given filesystem.
func NewReplacer(treeFS adapter.TreeFSAdapter, textFile adapter.TextFileAdapter) Replacer {
	return &replacer{
		TreeFSAdapter:   treeFS,
		TextFileAdapter: textFile,
	}
}

// ReplaceRecursively walks root breadth-first. Every entry is renamed before
// it is classified, so children are listed under their parent's new name.
// Files get their contents substituted and their banner re-balanced.
//
// Banner failures are collected as warnings in the report. Any other
// filesystem error aborts the walk and leaves the tree partially renamed.
func (r *replacer) ReplaceRecursively(ctx context.Context, root m.Path, substitutions m.Substitutions) (m.Report, error) {
	report := m.Report{Root: root.Clean(), Substitutions: substitutions}

	if r.TreeFSAdapter == nil || r.TextFileAdapter == nil {
		return report, errors.New("replacer has no filesystem adapters")
	}

	if err := substitutions.Validate(); err != nil {
		return report, err
	}

	if len(substitutions) == 0 {
		return report, nil
	}

	pending := []m.Path{report.Root}
	first := true

	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		batch := pending
		pending = nil

		for _, path := range batch {
			renamed, err := r.renamePath(path, substitutions, &report)
			if err != nil {
				return report, err
			}

			if first {
				report.Root = renamed
				first = false
			}

			children, err := r.visit(ctx, renamed, substitutions, &report)
			if err != nil {
				return report, err
			}

			pending = append(pending, children...)
		}
	}

	slog.InfoContext(ctx, "substitution complete",
		"root", report.Root,
		"renames", len(report.Renames),
		"rewrites", len(report.Rewrites),
		"skipped", len(report.Skipped),
		"warnings", len(report.Warnings))

	return report, nil
}

// visit lists a directory or rewrites a file. Symbolic links are leaves:
// they keep their new name but are neither descended into nor rewritten.
func (r *replacer) visit(ctx context.Context, path m.Path, substitutions m.Substitutions, report *m.Report) ([]m.Path, error) {
	info, err := r.FileInfo(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		slog.DebugContext(ctx, "not following symbolic link", "path", path)
		return nil, nil
	}

	if !info.IsDir() {
		return nil, r.replaceContent(ctx, path, substitutions, report)
	}

	names, err := r.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}

	children := make([]m.Path, 0, len(names))
	for _, name := range names {
		children = append(children, path.Join(name))
	}

	return children, nil
}

// renamePath runs every substitution over the final component of path,
// moving the entry after each one that matches.
func (r *replacer) renamePath(path m.Path, substitutions m.Substitutions, report *m.Report) (m.Path, error) {
	current := path

	for _, sub := range substitutions {
		name := current.Base()
		if !strings.Contains(name, sub.Target) {
			continue
		}

		newName := strings.ReplaceAll(name, sub.Target, sub.Replacement)
		if newName == name {
			continue
		}

		if !isValidName(newName) {
			return current, fmt.Errorf("rename %s to %q: %w", current, newName, ErrInvalidName)
		}

		next := current.Dir().Join(newName)
		if err := r.Move(current, next); err != nil {
			return current, fmt.Errorf("rename %s: %w", current, err)
		}

		slog.Debug("renamed path", "from", current, "to", next)
		report.Renames = append(report.Renames, m.Rename{From: current, To: next})
		current = next
	}

	return current, nil
}

// replaceContent substitutes the contents of a text file and fixes its banner.
func (r *replacer) replaceContent(ctx context.Context, path m.Path, substitutions m.Substitutions, report *m.Report) error {
	data, err := r.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	text, ok := r.Decode(path, data)
	if !ok {
		slog.DebugContext(ctx, "skipping non-text file", "path", path)
		report.Skipped = append(report.Skipped, path)

		return nil
	}

	updated := substitutions.Apply(text)
	headerFixed := false

	fixed, changed, err := FixHeader(updated)

	switch {
	case errors.Is(err, ErrHeaderUnfixable):
		message := "Header too long"
		if errors.Is(err, ErrHeaderTooShort) {
			message = "Header too short"
		}

		slog.WarnContext(ctx, "header not fixed", "path", path, "error", err)
		report.Warnings = append(report.Warnings, m.Warning{Path: path, Message: message})
	case err != nil:
		return fmt.Errorf("fix header of %s: %w", path, err)
	case changed:
		updated = fixed
		headerFixed = true
	}

	if updated == text {
		return nil
	}

	if err := r.WriteFileAtomic(path, []byte(updated)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		slog.DebugContext(ctx, "rewrote file",
			"path", path,
			"language", r.Language(path, data),
			"header_fixed", headerFixed)
	}

	report.Rewrites = append(report.Rewrites, m.Rewrite{
		Path:        path,
		SizeBefore:  len(data),
		SizeAfter:   len(updated),
		HeaderFixed: headerFixed,
		Before:      text,
		After:       updated,
	})

	return nil
}

func isValidName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsRune(name, filepath.Separator) && !strings.ContainsRune(name, '/')
}
