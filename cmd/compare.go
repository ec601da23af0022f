package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/paperjudge/internal/domain"
	m "github.com/mouse-blink/paperjudge/internal/model"
)

var compareParallelFlag int
var compareReportFlag string
var compareStrictFlag bool

// compareCmd represents the compare command.
var compareCmd = newCompareCmd()

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <reference> <submission...>",
		Short: "Grade local transcripts against a reference transcript",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Compare(cmd.Context(), domain.CompareArgs{
				Reference:        m.Path(args[0]),
				Submissions:      parsePaths(args[1:]),
				Threads:          compareParallelFlag,
				Report:           m.Path(compareReportFlag),
				StrictWhitespace: compareStrictFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&compareParallelFlag, "parallel", "p", 1, "number of submissions graded concurrently")
	cmd.Flags().StringVar(&compareReportFlag, "report", "", "write a merged report to this path")
	cmd.Flags().BoolVar(&compareStrictFlag, "strict-whitespace", false, "compare lines byte for byte")

	return cmd
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
