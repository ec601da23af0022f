package controller

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// tableModel is the Bubble Tea model for scrolling through long results.
type tableModel struct {
	title    string
	footer   string
	table    table.Model
	quitting bool
}

func newTableModel(title string, header []string, rows [][]string, footer string, height int) tableModel {
	widths := columnWidths(header, rows)

	columns := make([]table.Column, len(header))
	for i, h := range header {
		columns[i] = table.Column{Title: h, Width: widths[i]}
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("6")).
		Bold(true)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(tableHeight(height)),
	)
	t.SetStyles(styles)

	return tableModel{title: title, footer: footer, table: t}
}

// tableHeight is the height handed to table.SetHeight, which includes the
// column header. At least one row stays visible.
func tableHeight(height int) int {
	if h := height - chromeLines; h > tableHeaderLines {
		return h
	}

	return tableHeaderLines + 1
}

func (tm tableModel) Init() tea.Cmd {
	return nil
}

func (tm tableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		tm.table.SetHeight(tableHeight(msg.Height))
		return tm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			tm.quitting = true
			return tm, tea.Quit
		}
	}

	var cmd tea.Cmd
	tm.table, cmd = tm.table.Update(msg)

	return tm, cmd
}

func (tm tableModel) View() string {
	if tm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(tm.title))
	b.WriteString("\n\n")
	b.WriteString(tm.table.View())
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render(tm.footer))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("↑/k: up | ↓/j: down | g: top | G: bottom | q: quit"))
	b.WriteString("\n")

	return b.String()
}
