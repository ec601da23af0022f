package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/paperjudge/internal/model"
)

// SimpleUI implements UI with plain tables written to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayStage prints the stage name.
func (s *SimpleUI) DisplayStage(stage string) {
	s.printf("==> %s\n", stage)
}

// DisplayClassification prints one row per block.
func (s *SimpleUI) DisplayClassification(name string, classification *m.Classification) error {
	if classification.Len() == 0 {
		s.printf("%s: no blocks in reference transcript\n", name)
		return nil
	}

	s.printf("\n%s\n", name)
	s.renderTable(classificationHeader, classificationRows(classification), classificationFooter(classification))

	return nil
}

// DisplayBlocks prints the parsed blocks of a transcript.
func (s *SimpleUI) DisplayBlocks(name string, blocks []m.Block) error {
	if len(blocks) == 0 {
		s.printf("%s: no blocks found\n", name)
		return nil
	}

	s.printf("\n%s\n", name)
	s.renderTable(blocksHeader, blockRows(blocks), fmt.Sprintf("Total Blocks %d", len(blocks)))

	return nil
}

// DisplayReport prints every report entry.
func (s *SimpleUI) DisplayReport(report m.Report) error {
	if len(report.Data) == 0 {
		s.printf("Report is empty\n")
		return nil
	}

	s.renderTable(reportHeader, reportRows(report), reportFooter(report))

	return nil
}

func (s *SimpleUI) renderTable(header []string, rows [][]string, footer string) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	alignment := make([]int, len(header))
	for i := range alignment {
		alignment[i] = tablewriter.ALIGN_CENTER
	}

	alignment[0] = tablewriter.ALIGN_LEFT
	table.SetColumnAlignment(alignment)
	table.AppendBulk(rows)
	table.Render()

	s.printf("%s%s\n", tableBuffer.String(), footer)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
