package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	m "mlirutils.dev/pkg/mlirutils/internal/model"
)

const (
	// Lines taken by the title, the summary block and the pagination footer.
	reservedLines = 10

	defaultItemsPerPage = 10
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	renameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	rewriteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	skipStyle    = lipgloss.NewStyle().Faint(true)
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	addStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	delStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	fileStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for long change lists and lipgloss for styling.
type TUI struct {
	output    io.Writer
	errOutput io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output, errOutput io.Writer) *TUI {
	return &TUI{output: output, errOutput: errOutput}
}

// DisplayReport prints the change list, paging it when it does not fit the terminal.
func (p *TUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newChangeListModel(report)

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	// The alternate screen is gone once the program exits; keep the totals visible.
	_, err := fmt.Fprint(p.output, model.summary())

	return err
}

// DisplayWarning prints a highlighted warning on the error stream.
func (p *TUI) DisplayWarning(ctx context.Context, warning m.Warning) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintf(p.errOutput, "%s %s\n", warnStyle.Render(warning.Message+":"), warning.Path)
}

// DisplayDiff prints a colourised unified diff.
func (p *TUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		return
	}

	_, _ = fmt.Fprintln(p.output, colorizeDiff(diff))
}

// DisplaySetupFailure prints the creation failure on the error stream.
func (p *TUI) DisplaySetupFailure(ctx context.Context, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	_, _ = fmt.Fprintln(p.errOutput, errorStyle.Render(setupFailureMessage(err)))
}

func colorizeDiff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = fileStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = delStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

// changeListModel is the Bubble Tea model for browsing the changes of a pass.
type changeListModel struct {
	report   m.Report
	lines    []string
	pager    paginator.Model
	height   int
	width    int
	quitting bool
}

func newChangeListModel(report m.Report) changeListModel {
	lines := buildChangeLines(report)

	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.PerPage = defaultItemsPerPage
	pager.SetTotalPages(len(lines))

	return changeListModel{
		report: report,
		lines:  lines,
		pager:  pager,
	}
}

func buildChangeLines(report m.Report) []string {
	lines := make([]string, 0, len(report.Renames)+len(report.Rewrites)+len(report.Skipped)+len(report.Warnings))

	for _, rename := range report.Renames {
		lines = append(lines, renameStyle.Render(fmt.Sprintf("  ↻ %s → %s", rename.From, rename.To)))
	}

	for _, rw := range report.Rewrites {
		line := fmt.Sprintf("  ✎ %s (%s → %s)", rw.Path, humanize.Bytes(uint64(rw.SizeBefore)), humanize.Bytes(uint64(rw.SizeAfter)))
		if rw.HeaderFixed {
			line += " header fixed"
		}

		lines = append(lines, rewriteStyle.Render(line))
	}

	for _, path := range report.Skipped {
		lines = append(lines, skipStyle.Render(fmt.Sprintf("  ∅ %s (not text)", path)))
	}

	for _, warning := range report.Warnings {
		lines = append(lines, warnStyle.Render(fmt.Sprintf("  ⚠ %s: %s", warning.Message, warning.Path)))
	}

	return lines
}

func (c changeListModel) resize(width, height int) changeListModel {
	c.width = width
	c.height = height

	c.pager.PerPage = max(1, height-reservedLines)
	c.pager.SetTotalPages(len(c.lines))

	if c.pager.Page >= c.pager.TotalPages {
		c.pager.Page = max(0, c.pager.TotalPages-1)
	}

	return c
}

// needsPagination returns true if the list is too large to fit on screen.
func (c changeListModel) needsPagination() bool {
	return c.height > 0 && len(c.lines) > c.pager.PerPage
}

func (c changeListModel) Init() tea.Cmd {
	return nil
}

func (c changeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return c.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return c.handleKeyPress(msg)
	}

	return c, nil
}

func (c changeListModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // We only handle specific navigation keys
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		c.quitting = true
		return c, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		c.quitting = true
		return c, tea.Quit

	case "down", "j", "right", "l", "pgdown", " ":
		c.pager.NextPage()

	case "up", "k", "left", "h", "pgup":
		c.pager.PrevPage()

	case "g", "home":
		c.pager.Page = 0

	case "G", "end":
		c.pager.Page = max(0, c.pager.TotalPages-1)
	}

	return c, nil
}

func (c changeListModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(c.title()))
	b.WriteString("\n\n")

	if len(c.lines) == 0 {
		b.WriteString("  Nothing to change\n")
	}

	visible := c.lines
	if c.needsPagination() {
		start, end := c.pager.GetSliceBounds(len(c.lines))
		visible = c.lines[start:end]
	}

	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(c.summary())

	if c.needsPagination() {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  Page %s\n", c.pager.View())
		b.WriteString(helpStyle.Render("  ↑/k: prev | ↓/j: next | g: first | G: last | q: quit"))
		b.WriteString("\n")
	}

	return b.String()
}

func (c changeListModel) title() string {
	if c.report.DryRun {
		return fmt.Sprintf("Dialect %s (dry run)", c.report.Root)
	}

	return fmt.Sprintf("Dialect %s", c.report.Root)
}

func (c changeListModel) summary() string {
	var b strings.Builder

	b.WriteString("\n")

	for _, row := range summaryRows(c.report) {
		fmt.Fprintf(&b, "  %-16s %s\n", row[0], row[1])
	}

	fmt.Fprintf(&b, "  %-16s %s\n", "Bytes written", humanize.Bytes(c.report.BytesWritten()))

	return b.String()
}
