package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/paperjudge/internal/model"
)

const (
	// chromeLines surround the table: title, two blank lines, footer and help.
	chromeLines = 5
	// tableHeaderLines is the column header plus its bottom border.
	tableHeaderLines = 2
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	stageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	footerStyle = lipgloss.NewStyle().Faint(true)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	zeroStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI with styled output. Results that do not fit on screen
// open a scrollable Bubble Tea table.
type TUI struct {
	output io.Writer
	height int
	width  int
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}

	if f, ok := output.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			t.width = width
			t.height = height
		}
	}

	return t
}

// DisplayStage prints a faint progress line.
func (t *TUI) DisplayStage(stage string) {
	_, _ = fmt.Fprintln(t.output, stageStyle.Render("▸ "+stage))
}

// DisplayClassification shows per-block tallies.
func (t *TUI) DisplayClassification(name string, classification *m.Classification) error {
	if classification.Len() == 0 {
		_, err := fmt.Fprintf(t.output, "%s: no blocks in reference transcript\n", name)
		return err
	}

	return t.show(name, classificationHeader, classificationRows(classification), classificationFooter(classification))
}

// DisplayBlocks lists parsed blocks.
func (t *TUI) DisplayBlocks(name string, blocks []m.Block) error {
	if len(blocks) == 0 {
		_, err := fmt.Fprintf(t.output, "%s: no blocks found\n", name)
		return err
	}

	return t.show(name, blocksHeader, blockRows(blocks), fmt.Sprintf("Total Blocks %d", len(blocks)))
}

// DisplayReport shows a saved report.
func (t *TUI) DisplayReport(report m.Report) error {
	if len(report.Data) == 0 {
		_, err := fmt.Fprintln(t.output, "Report is empty")
		return err
	}

	return t.show("Report", reportHeader, reportRows(report), reportFooter(report))
}

func (t *TUI) show(title string, header []string, rows [][]string, footer string) error {
	if !needsPagination(len(rows), t.height) {
		_, err := fmt.Fprint(t.output, renderStatic(title, header, rows, footer))
		return err
	}

	model := newTableModel(title, header, rows, footer, t.height)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// needsPagination returns true if rows do not fit in a terminal of height
// lines. An unknown height never paginates.
func needsPagination(rows, height int) bool {
	return height > 0 && rows > height-chromeLines-tableHeaderLines
}

func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	return widths
}

func renderStatic(title string, header []string, rows [][]string, footer string) string {
	var b strings.Builder

	widths := columnWidths(header, rows)

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = headerStyle.Width(widths[i]).Render(h)
	}

	b.WriteString("  " + strings.Join(cells, "  ") + "\n")

	for _, row := range rows {
		for i, cell := range row {
			cells[i] = styleCell(cell).Width(widths[i]).Render(cell)
		}

		b.WriteString("  " + strings.Join(cells[:len(row)], "  ") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(footer))
	b.WriteString("\n")

	return b.String()
}

func styleCell(cell string) lipgloss.Style {
	switch cell {
	case statusPass:
		return passStyle
	case statusFail, statusNotFound:
		return failStyle
	case "0":
		return zeroStyle
	default:
		return lipgloss.NewStyle()
	}
}
