package domain

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/paperjudge/internal/adapter"
	"github.com/mouse-blink/paperjudge/internal/config"
	m "github.com/mouse-blink/paperjudge/internal/model"
)

// Orchestrator drives the external tools that turn the test and student
// repositories into a pair of transcripts on disk.
type Orchestrator interface {
	// SyncRepos brings both checkouts up to date. The student checkout ends at
	// revision when one is given.
	SyncRepos(ctx context.Context, studentRepo, revision string) error
	// ProduceReference builds the test project, runs it and returns the path
	// of the captured reference transcript.
	ProduceReference(ctx context.Context) (m.Path, error)
	// SubmissionPath returns where the student checkout keeps its answers.
	SubmissionPath() m.Path
	// Cleanup stashes local changes in both checkouts and, when purge is set,
	// deletes them.
	Cleanup(ctx context.Context, purge bool) error
}

type orchestrator struct {
	cfg       *config.Config
	fsAdapter adapter.TranscriptFSAdapter
	repo      adapter.RepoAdapter
	build     adapter.BuildAdapter
	logger    *zap.Logger
}

// NewOrchestrator constructs an Orchestrator backed by the provided adapters.
func NewOrchestrator(
	cfg *config.Config,
	fsAdapter adapter.TranscriptFSAdapter,
	repo adapter.RepoAdapter,
	build adapter.BuildAdapter,
	logger *zap.Logger,
) Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &orchestrator{
		cfg:       cfg,
		fsAdapter: fsAdapter,
		repo:      repo,
		build:     build,
		logger:    logger,
	}
}

func (o *orchestrator) SyncRepos(ctx context.Context, studentRepo, revision string) error {
	if studentRepo == "" {
		return ErrMissingSource
	}

	repos := o.cfg.Repos

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		o.logger.Info("syncing test repository", zap.String("addr", repos.TestAddr), zap.String("dir", repos.TestDir))
		return o.repo.Sync(gctx, repos.TestAddr, repos.TestDir, repos.Branch, "")
	})
	g.Go(func() error {
		o.logger.Info("syncing student repository",
			zap.String("addr", studentRepo),
			zap.String("dir", repos.StudentDir),
			zap.String("revision", revision))

		return o.repo.Sync(gctx, studentRepo, repos.StudentDir, repos.Branch, revision)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to sync repositories: %w", err)
	}

	return nil
}

func (o *orchestrator) ProduceReference(ctx context.Context) (m.Path, error) {
	testDir := o.cfg.Repos.TestDir
	b := o.cfg.Build

	o.logger.Info("building reference", zap.String("dir", testDir), zap.String("generator", b.Generator))

	if err := o.build.Build(ctx, testDir, b.Dir, b.Generator, b.Tool); err != nil {
		return "", fmt.Errorf("failed to build reference: %w", err)
	}

	project, err := o.build.ProjectName(testDir)
	if err != nil {
		return "", err
	}

	timeout, err := o.cfg.RunTimeout()
	if err != nil {
		return "", err
	}

	runCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	binaryDir := o.fsAdapter.JoinPath(testDir, b.Dir)
	out := o.fsAdapter.JoinPath(testDir, b.Dir, o.cfg.Files.ReferenceAnswers)

	o.logger.Info("running reference", zap.String("project", project), zap.String("output", string(out)))

	if err := o.build.RunReference(runCtx, string(binaryDir), project, out); err != nil {
		return "", fmt.Errorf("%w: %w", ErrReferenceRun, err)
	}

	return out, nil
}

func (o *orchestrator) SubmissionPath() m.Path {
	return o.fsAdapter.JoinPath(o.cfg.Repos.StudentDir, o.cfg.Files.Answers)
}

func (o *orchestrator) Cleanup(ctx context.Context, purge bool) error {
	ctx = context.WithoutCancel(ctx)

	var firstErr error

	for _, dir := range []string{o.cfg.Repos.StudentDir, o.cfg.Repos.TestDir} {
		if err := o.repo.Stash(ctx, dir); err != nil {
			o.logger.Warn("failed to stash checkout", zap.String("dir", dir), zap.Error(err))

			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if !purge {
		return firstErr
	}

	for _, dir := range []string{o.cfg.Repos.StudentDir, o.cfg.Repos.TestDir} {
		if err := o.fsAdapter.RemoveAll(m.Path(dir)); err != nil {
			o.logger.Warn("failed to remove checkout", zap.String("dir", dir), zap.Error(err))

			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
