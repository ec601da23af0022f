package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/paperjudge/internal/domain"
	m "github.com/mouse-blink/paperjudge/internal/model"
)

// blocksCmd represents the blocks command.
var blocksCmd = newBlocksCmd()

func newBlocksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blocks <transcript>",
		Short: "List the numbered blocks of a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Blocks(domain.BlocksArgs{Path: m.Path(args[0])})
		},
	}
}

func init() {
	rootCmd.AddCommand(blocksCmd)
}
