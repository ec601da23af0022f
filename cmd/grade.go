package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/paperjudge/internal/domain"
	m "github.com/mouse-blink/paperjudge/internal/model"
)

var gradeSrcFlag string
var gradeRevisionFlag string
var gradeReportFlag string

// gradeCmd represents the grade command.
var gradeCmd = newGradeCmd()

func newGradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade --src <repository>",
		Short: "Build the reference program and grade a student repository",
		Long: `Grade pulls the test repository and the student repository, builds the test
project with cmake, runs it to capture the reference transcript and compares it
with the student's answers file. A JSON report is written to files.report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Grade(cmd.Context(), domain.GradeArgs{
				StudentRepo: gradeSrcFlag,
				Revision:    gradeRevisionFlag,
				Report:      m.Path(gradeReportFlag),
			})
		},
	}
	cmd.Flags().StringVar(&gradeSrcFlag, "src", "", "address of the student repository")
	cmd.Flags().StringVarP(&gradeRevisionFlag, "revision", "r", "", "revision of the student repository to grade")
	cmd.Flags().StringVar(&gradeReportFlag, "report", "", "report path (overrides files.report)")
	_ = cmd.MarkFlagRequired("src")

	return cmd
}

func init() {
	rootCmd.AddCommand(gradeCmd)
}
