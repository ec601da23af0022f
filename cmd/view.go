package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/paperjudge/internal/domain"
	m "github.com/mouse-blink/paperjudge/internal/model"
)

var viewReportFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously generated grading report",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{Report: m.Path(viewReportFlag)})
		},
	}
	cmd.Flags().StringVar(&viewReportFlag, "report", "", "report path (defaults to files.report)")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
