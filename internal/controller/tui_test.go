package controller

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/paperjudge/internal/model"
)

func TestTUI_DisplayMethods_Static(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.DisplayStage("comparing answers")

	if err := tui.DisplayClassification("alice.txt", sampleClassification()); err != nil {
		t.Fatalf("DisplayClassification() error = %v", err)
	}

	if err := tui.DisplayBlocks("ref.txt", []m.Block{{ID: "7", Header: "7:"}}); err != nil {
		t.Fatalf("DisplayBlocks() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"comparing answers",
		"alice.txt",
		"Wrong place",
		"NOT FOUND",
		"Passed 1/3 blocks",
		"Total Blocks 1",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_DisplayMethods_Empty(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.DisplayClassification("a", m.NewClassification()); err != nil {
		t.Fatalf("DisplayClassification() error = %v", err)
	}

	if err := tui.DisplayBlocks("b", nil); err != nil {
		t.Fatalf("DisplayBlocks() error = %v", err)
	}

	if err := tui.DisplayReport(m.Report{}); err != nil {
		t.Fatalf("DisplayReport() error = %v", err)
	}

	want := "a: no blocks in reference transcript\nb: no blocks found\nReport is empty\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestNeedsPagination(t *testing.T) {
	tests := []struct {
		rows, height int
		want         bool
	}{
		{rows: 100, height: 0, want: false},
		{rows: 3, height: 10, want: false},
		{rows: 4, height: 10, want: true},
		{rows: 1, height: 5, want: true},
	}

	for _, tt := range tests {
		if got := needsPagination(tt.rows, tt.height); got != tt.want {
			t.Errorf("needsPagination(%d, %d) = %v, want %v", tt.rows, tt.height, got, tt.want)
		}
	}
}

func TestColumnWidths(t *testing.T) {
	got := columnWidths([]string{"Block", "OK"}, [][]string{{"1", "12345"}, {"long-block", "0"}})

	if got[0] != len("long-block") || got[1] != 5 {
		t.Fatalf("columnWidths() = %v", got)
	}
}

func TestTableModel_UpdateAndView(t *testing.T) {
	model := newTableModel("Report", reportHeader, [][]string{{"test", "1", "PASS", ""}}, "Passed 1/1 blocks", 20)

	if cmd := model.Init(); cmd != nil {
		t.Fatalf("Init() returned a command")
	}

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	tm := updated.(tableModel)

	// Every line not taken by chrome or the column header shows a row.
	if h := tm.table.Height(); h != 30-chromeLines-tableHeaderLines {
		t.Fatalf("visible rows = %d, want %d", h, 30-chromeLines-tableHeaderLines)
	}

	view := tm.View()
	for _, want := range []string{"Report", "Passed 1/1 blocks", "q: quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\nview:\n%s", want, view)
		}
	}

	updated, cmd := tm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("Update(q) returned no command")
	}

	if view := updated.(tableModel).View(); view != "" {
		t.Fatalf("View() after quit = %q, want empty", view)
	}
}

func TestTableHeight(t *testing.T) {
	if got := tableHeight(3); got != tableHeaderLines+1 {
		t.Errorf("tableHeight(3) = %d, want %d", got, tableHeaderLines+1)
	}

	if got := tableHeight(27); got != 22 {
		t.Errorf("tableHeight(27) = %d, want 22", got)
	}
}
