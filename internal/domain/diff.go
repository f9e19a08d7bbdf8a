package domain

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	m "mlirutils.dev/pkg/mlirutils/internal/model"
)

const diffContextLines = 3

// RewriteDiff renders a unified diff of one rewritten file. The "from" side
// is labelled with the file's path before renaming.
func RewriteDiff(report m.Report, rewrite m.Rewrite) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(rewrite.Before),
		B:        difflib.SplitLines(rewrite.After),
		FromFile: string(report.OriginalPath(rewrite.Path)),
		ToFile:   string(rewrite.Path),
		Context:  diffContextLines,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", rewrite.Path, err)
	}

	return text, nil
}

// ReportDiff concatenates the diffs of every rewrite in the report.
func ReportDiff(report m.Report) (string, error) {
	var b strings.Builder

	for _, rewrite := range report.Rewrites {
		text, err := RewriteDiff(report, rewrite)
		if err != nil {
			return "", err
		}

		b.WriteString(text)
	}

	return b.String(), nil
}
