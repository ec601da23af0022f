package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI picks the grading output for cmd. Terminals get the styled TUI, which
// pages long classifications through a scrollable table instead of letting
// them scroll past. Pipes and files get plain tablewriter tables that are safe
// to diff or paste into a ticket.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether grading output goes to an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
