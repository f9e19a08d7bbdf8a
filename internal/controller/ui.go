// Package controller provides output adapters for displaying substitution results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "mlirutils.dev/pkg/mlirutils/internal/model"
)

// UI defines how the workflow reports progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayReport shows the renames, rewrites and totals of a pass.
	DisplayReport(ctx context.Context, report m.Report) error
	// DisplayWarning reports a non-fatal problem with a single file.
	DisplayWarning(ctx context.Context, warning m.Warning)
	// DisplayDiff shows the unified diff of a dry run.
	DisplayDiff(ctx context.Context, diff string)
	// DisplaySetupFailure reports that the dialect tree could not be created.
	DisplaySetupFailure(ctx context.Context, err error)
}

// NewUI returns the interactive UI when interactive is true and the plain
// text UI otherwise. Both write through the command's output streams.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
