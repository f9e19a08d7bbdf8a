package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "mlirutils.dev/pkg/mlirutils/internal/model"
)

// SimpleUI implements UI using the cobra command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReport prints every rename followed by a summary table.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if report.DryRun {
		s.printf("Dry run: no files were changed\n")
	}

	for _, rename := range report.Renames {
		s.printf("renamed %s -> %s\n", rename.From, rename.To)
	}

	for _, path := range report.Skipped {
		s.printf("skipped %s (not text)\n", path)
	}

	s.printf("\n%s", renderSummaryTable(report))

	return nil
}

// DisplayWarning prints the warning on standard error.
func (s *SimpleUI) DisplayWarning(ctx context.Context, warning m.Warning) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.errorf("%s: %s\n", warning.Message, warning.Path)
}

// DisplayDiff prints the diff as is.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		return
	}

	s.printf("%s\n", diff)
}

// DisplaySetupFailure prints the creation failure on standard error.
func (s *SimpleUI) DisplaySetupFailure(ctx context.Context, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	s.errorf("%s\n", setupFailureMessage(err))
}

func renderSummaryTable(report m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Change", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, row := range summaryRows(report) {
		table.Append(row)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Root %s", report.Root),
		humanize.Bytes(report.BytesWritten()),
	})

	table.Render()

	return tableBuffer.String()
}

func summaryRows(report m.Report) [][]string {
	headersFixed := 0

	for _, rw := range report.Rewrites {
		if rw.HeaderFixed {
			headersFixed++
		}
	}

	return [][]string{
		{"Renamed paths", fmt.Sprintf("%d", len(report.Renames))},
		{"Rewritten files", fmt.Sprintf("%d", len(report.Rewrites))},
		{"Headers fixed", fmt.Sprintf("%d", headersFixed)},
		{"Skipped files", fmt.Sprintf("%d", len(report.Skipped))},
		{"Warnings", fmt.Sprintf("%d", len(report.Warnings))},
	}
}

func setupFailureMessage(err error) string {
	if err == nil {
		return setupFailureText
	}

	return fmt.Sprintf("%s (%v)", setupFailureText, err)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

const setupFailureText = "The dialect cannot be created at the specified path"
