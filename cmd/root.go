// Package cmd provides the root command and CLI setup for paperjudge.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mouse-blink/paperjudge/internal/adapter"
	"github.com/mouse-blink/paperjudge/internal/config"
	"github.com/mouse-blink/paperjudge/internal/controller"
	"github.com/mouse-blink/paperjudge/internal/domain"
)

var configFlag string
var verboseFlag bool

var logger *zap.Logger
var workflow domain.Workflow

// newWorkflow wires the production workflow. Tests replace it with a mock.
var newWorkflow = func(cmd *cobra.Command, cfg *config.Config, log *zap.Logger) domain.Workflow {
	runner := adapter.NewLocalCommandRunner(log)
	fsAdapter := adapter.NewLocalTranscriptFSAdapter()
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	orch := domain.NewOrchestrator(
		cfg,
		fsAdapter,
		adapter.NewGitRepoAdapter(runner),
		adapter.NewCMakeBuildAdapter(runner),
		log,
	)

	return domain.NewWorkflow(cfg, fsAdapter, adapter.NewReportStore(), ui, orch, log)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paperjudge",
		Short: "Grade program output against a reference transcript",
		Long: `Paperjudge grades free-form program output. Both the reference and the
submitted transcript are split into numbered blocks ("12:" headers) and every
block is scored line by line: ok, wrong place, missing and redundant.

Commands:
  grade     clone, build and run the reference, then grade a student repository
  compare   grade local transcripts against a reference transcript
  blocks    list the blocks of a transcript
  view      show a saved report
  init      write the default config file`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", config.DefaultPath, "path to the YAML config file")
	cmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "enable debug logging")

	return cmd
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	logger, err = newLogger(cfg.Logging.Level, verboseFlag)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	workflow = newWorkflow(cmd, cfg, logger)

	return nil
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()

	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	zc.Level = atomic
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return zc.Build()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
