package domain

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/paperjudge/internal/adapter"
	"github.com/mouse-blink/paperjudge/internal/config"
	"github.com/mouse-blink/paperjudge/internal/controller"
	m "github.com/mouse-blink/paperjudge/internal/model"
)

// GradeArgs holds the arguments of a full grading run.
type GradeArgs struct {
	StudentRepo string
	Revision    string
	Report      m.Path // overrides files.report when set
}

// CompareArgs holds the arguments for grading local transcripts.
type CompareArgs struct {
	Reference        m.Path
	Submissions      []m.Path
	Threads          int
	Report           m.Path // no report is written when empty
	StrictWhitespace bool
}

// BlocksArgs holds the arguments for listing the blocks of a transcript.
type BlocksArgs struct {
	Path m.Path
}

// ViewArgs holds the arguments for displaying a saved report.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the grading operations exposed to the CLI.
type Workflow interface {
	Grade(ctx context.Context, args GradeArgs) error
	Compare(ctx context.Context, args CompareArgs) error
	Blocks(args BlocksArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	cfg       *config.Config
	fsAdapter adapter.TranscriptFSAdapter
	store     adapter.ReportStore
	ui        controller.UI
	orch      Orchestrator
	logger    *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(
	cfg *config.Config,
	fsAdapter adapter.TranscriptFSAdapter,
	store adapter.ReportStore,
	ui controller.UI,
	orch Orchestrator,
	logger *zap.Logger,
) Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &workflow{
		cfg:       cfg,
		fsAdapter: fsAdapter,
		store:     store,
		ui:        ui,
		orch:      orch,
		logger:    logger,
	}
}

// Grade syncs both repositories, produces the reference transcript and grades
// the student's answers against it. Any failure stashes and removes both
// checkouts before the error is returned.
func (w *workflow) Grade(ctx context.Context, args GradeArgs) error {
	if args.StudentRepo == "" {
		return ErrMissingSource
	}

	classification, err := w.runGrade(ctx, args)
	if err != nil {
		w.logger.Error("grading failed", zap.Error(err))

		if cleanupErr := w.orch.Cleanup(ctx, true); cleanupErr != nil {
			err = errors.Join(err, fmt.Errorf("cleanup: %w", cleanupErr))
		}

		return err
	}

	report := BuildReport(w.cfg.Grading.PackageName, w.cfg.Grading.Tag, classification)

	reportPath := args.Report
	if reportPath == "" {
		reportPath = m.Path(w.cfg.Files.Report)
	}

	if err := w.store.SaveReport(reportPath, report); err != nil {
		err = fmt.Errorf("failed to save report: %w", err)
		w.logger.Error("grading failed", zap.Error(err))

		if cleanupErr := w.orch.Cleanup(ctx, true); cleanupErr != nil {
			w.logger.Warn("cleanup after grading failed", zap.Error(cleanupErr))
			err = errors.Join(err, fmt.Errorf("cleanup: %w", cleanupErr))
		}

		return err
	}

	w.logGraded(string(w.orch.SubmissionPath()), classification)

	displayErr := w.ui.DisplayClassification(args.StudentRepo, classification)

	if err := w.orch.Cleanup(ctx, false); err != nil {
		w.logger.Warn("cleanup after grading failed", zap.Error(err))
	}

	return displayErr
}

func (w *workflow) runGrade(ctx context.Context, args GradeArgs) (*m.Classification, error) {
	w.ui.DisplayStage("syncing repositories")

	if err := w.orch.SyncRepos(ctx, args.StudentRepo, args.Revision); err != nil {
		return nil, err
	}

	w.ui.DisplayStage("building and running reference")

	referencePath, err := w.orch.ProduceReference(ctx)
	if err != nil {
		return nil, err
	}

	w.ui.DisplayStage("comparing answers")

	reference, err := w.fsAdapter.ReadLines(referencePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference transcript: %w", err)
	}

	submissionPath := w.orch.SubmissionPath()
	if _, err := w.fsAdapter.FileInfo(submissionPath); err != nil {
		return nil, fmt.Errorf("student repository has no %s: %w", w.cfg.Files.Answers, err)
	}

	submitted, err := w.fsAdapter.ReadLines(submissionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read student answers: %w", err)
	}

	return NewAligner(w.matcher(false)).CompareLines(reference, submitted), nil
}

// Compare grades local submissions against one reference transcript. Each
// submission is classified by its own aligner so they can run in parallel.
func (w *workflow) Compare(ctx context.Context, args CompareArgs) error {
	if args.Reference == "" {
		return errors.New("reference transcript is required")
	}

	if len(args.Submissions) == 0 {
		return errors.New("at least one submission is required")
	}

	referenceLines, err := w.fsAdapter.ReadLines(args.Reference)
	if err != nil {
		return fmt.Errorf("failed to read reference transcript: %w", err)
	}

	blocks := ParseBlocks(referenceLines)
	matcher := w.matcher(args.StrictWhitespace)

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	results := make([]*m.Classification, len(args.Submissions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, submission := range args.Submissions {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			lines, err := w.fsAdapter.ReadLines(submission)
			if err != nil {
				return fmt.Errorf("failed to read submission %s: %w", submission, err)
			}

			results[i] = NewAligner(matcher).Classify(blocks, lines)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	reports := make([]m.Report, 0, len(results))

	for i, classification := range results {
		name := w.fsAdapter.Base(args.Submissions[i])
		w.logGraded(string(args.Submissions[i]), classification)

		if err := w.ui.DisplayClassification(name, classification); err != nil {
			return err
		}

		reports = append(reports, BuildReport(name, w.cfg.Grading.Tag, classification))
	}

	if args.Report == "" {
		return nil
	}

	if err := w.store.SaveReport(args.Report, MergeReports(reports...)); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

// Blocks parses a transcript and lists its blocks.
func (w *workflow) Blocks(args BlocksArgs) error {
	lines, err := w.fsAdapter.ReadLines(args.Path)
	if err != nil {
		return fmt.Errorf("failed to read transcript: %w", err)
	}

	return w.ui.DisplayBlocks(string(args.Path), ParseBlocks(lines))
}

// View displays a previously saved report.
func (w *workflow) View(args ViewArgs) error {
	path := args.Report
	if path == "" {
		path = m.Path(w.cfg.Files.Report)
	}

	report, err := w.store.LoadReport(path)
	if err != nil {
		return err
	}

	return w.ui.DisplayReport(report)
}

func (w *workflow) matcher(strictWhitespace bool) Matcher {
	g := w.cfg.Grading

	return NewMatcher(g.IgnoreWhitespace && !strictWhitespace, WildcardPolicy{
		Marker:    g.WildcardMarker,
		Threshold: g.WildcardThreshold,
	})
}

func (w *workflow) logGraded(name string, classification *m.Classification) {
	passed, total := classification.Summary()
	w.logger.Info("graded submission",
		zap.String("submission", name),
		zap.Int("passed", passed),
		zap.Int("blocks", total))
}
