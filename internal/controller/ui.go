// Package controller renders grading results for the terminal.
package controller

import (
	m "github.com/mouse-blink/paperjudge/internal/model"
)

// UI defines how the workflow reports progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayStage announces a workflow stage such as "building reference".
	DisplayStage(stage string)
	// DisplayClassification shows per-block tallies for one submission.
	DisplayClassification(name string, classification *m.Classification) error
	// DisplayBlocks lists the blocks parsed from one transcript.
	DisplayBlocks(name string, blocks []m.Block) error
	// DisplayReport shows a saved report.
	DisplayReport(report m.Report) error
}
