// Package domain contains the dialect substitution engine and the workflows built on it.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"mlirutils.dev/pkg/mlirutils/internal/adapter"
	"mlirutils.dev/pkg/mlirutils/internal/controller"
	m "mlirutils.dev/pkg/mlirutils/internal/model"
)

const (
	// DefaultTemplateSubPath locates the standalone example inside an llvm-project checkout.
	DefaultTemplateSubPath = "mlir/examples/standalone"

	// DefaultTemplateName is the dialect name used throughout the template.
	DefaultTemplateName = "Standalone"
)

var (
	// ErrSetup wraps any failure to copy the template into place.
	ErrSetup = errors.New("copy dialect template")

	// ErrEmptyDialectName is returned when a dialect name argument is blank.
	ErrEmptyDialectName = errors.New("dialect name is empty")
)

// TemplateArgs describes where the dialect template lives in an llvm-project checkout.
type TemplateArgs struct {
	SubPath string
	Name    string
}

// OutputArgs holds the options shared by commands that change a tree.
type OutputArgs struct {
	DryRun bool
	Report m.Path
}

// CreateArgs contains the arguments for creating a dialect from the template.
type CreateArgs struct {
	OutputArgs
	Name        string
	LLVMProject m.Path
	Destination m.Path
	Template    TemplateArgs
}

// RenameArgs contains the arguments for renaming an existing dialect.
type RenameArgs struct {
	OutputArgs
	Current string
	Next    string
	Path    m.Path
}

// ViewArgs contains the arguments for displaying a saved report.
type ViewArgs struct {
	Report m.Path
}

// Workflow drives the dialect commands.
type Workflow interface {
	CreateDialect(ctx context.Context, args CreateArgs) error
	RenameDialect(ctx context.Context, args RenameArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.TreeFSAdapter
	adapter.TextFileAdapter
	adapter.ReportStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	treeFSAdapter adapter.TreeFSAdapter,
	textFileAdapter adapter.TextFileAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		TreeFSAdapter:   treeFSAdapter,
		TextFileAdapter: textFileAdapter,
		ReportStore:     reportStore,
		UI:              ui,
	}
}

// CreateDialect copies the template to <Destination>/<lowercase name> and
// renames the template's dialect to Name. A failed copy is reported through
// the UI and is not returned as an error.
func (w *workflow) CreateDialect(ctx context.Context, args CreateArgs) error {
	if strings.TrimSpace(args.Name) == "" {
		return ErrEmptyDialectName
	}

	args.Template = withTemplateDefaults(args.Template)

	template := args.LLVMProject.Join(args.Template.SubPath)
	target := args.Destination.Join(strings.ToLower(args.Name))

	treeFS, err := w.prepareCopy(template, target, args.DryRun)
	if err != nil {
		slog.ErrorContext(ctx, "dialect setup failed", "template", template, "target", target, "error", err)
		w.DisplaySetupFailure(ctx, err)

		return nil
	}

	slog.InfoContext(ctx, "created dialect tree", "template", template, "target", target, "dry_run", args.DryRun)

	return w.substitute(ctx, treeFS, target, m.CaseVariants(args.Template.Name, args.Name), args.OutputArgs)
}

// RenameDialect renames every case variant of Current to Next under Path.
func (w *workflow) RenameDialect(ctx context.Context, args RenameArgs) error {
	if strings.TrimSpace(args.Current) == "" || strings.TrimSpace(args.Next) == "" {
		return ErrEmptyDialectName
	}

	treeFS := w.TreeFSAdapter

	if args.DryRun {
		snapshot, err := w.Snapshot(args.Path)
		if err != nil {
			return err
		}

		treeFS = snapshot
	}

	return w.substitute(ctx, treeFS, args.Path, m.CaseVariants(args.Current, args.Next), args.OutputArgs)
}

// View displays a report saved by an earlier run.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(args.Report)
	if err != nil {
		return err
	}

	for _, warning := range report.Warnings {
		w.DisplayWarning(ctx, warning)
	}

	return w.DisplayReport(ctx, report)
}

// prepareCopy copies template to target, in memory when dryRun is set, and
// returns the filesystem holding the copy.
func (w *workflow) prepareCopy(template, target m.Path, dryRun bool) (adapter.TreeFSAdapter, error) {
	treeFS := w.TreeFSAdapter

	if dryRun {
		exists, err := w.Exists(target)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSetup, err)
		}

		if exists {
			return nil, fmt.Errorf("%w: %s: %w", ErrSetup, target, adapter.ErrDestinationExists)
		}

		snapshot, err := w.Snapshot(template)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSetup, err)
		}

		treeFS = snapshot
	}

	if err := treeFS.CopyDir(template, target); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	return treeFS, nil
}

func (w *workflow) substitute(ctx context.Context, treeFS adapter.TreeFSAdapter, root m.Path, substitutions m.Substitutions, out OutputArgs) error {
	report, err := NewReplacer(treeFS, w.TextFileAdapter).ReplaceRecursively(ctx, root, substitutions)

	// Files before a fatal error are already rewritten, so their warnings still count.
	for _, warning := range report.Warnings {
		w.DisplayWarning(ctx, warning)
	}

	if err != nil {
		return fmt.Errorf("replace in %s: %w", root, err)
	}

	report.DryRun = out.DryRun

	if out.DryRun {
		diff, err := ReportDiff(report)
		if err != nil {
			return err
		}

		w.DisplayDiff(ctx, diff)
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		return err
	}

	if out.Report != "" {
		if err := w.SaveReport(out.Report, report); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	return nil
}

func withTemplateDefaults(template TemplateArgs) TemplateArgs {
	if strings.TrimSpace(template.SubPath) == "" {
		template.SubPath = DefaultTemplateSubPath
	}

	if strings.TrimSpace(template.Name) == "" {
		template.Name = DefaultTemplateName
	}

	return template
}
