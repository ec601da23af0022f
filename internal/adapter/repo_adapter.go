package adapter

import (
	"context"
	"fmt"
	"os"
)

// RepoAdapter keeps local checkouts of remote git repositories up to date.
type RepoAdapter interface {
	// Sync initialises dir on first use, pulls branch from addr and checks out
	// revision. An empty revision leaves the pulled branch head checked out.
	Sync(ctx context.Context, addr, dir, branch, revision string) error
	// Stash shelves local changes made in dir by a grading run.
	Stash(ctx context.Context, dir string) error
}

// GitRepoAdapter implements RepoAdapter with the git command line.
type GitRepoAdapter struct {
	runner CommandRunner
}

// NewGitRepoAdapter constructs a GitRepoAdapter backed by runner.
func NewGitRepoAdapter(runner CommandRunner) *GitRepoAdapter {
	return &GitRepoAdapter{runner: runner}
}

// Sync implements RepoAdapter.
func (g *GitRepoAdapter) Sync(ctx context.Context, addr, dir, branch, revision string) error {
	if _, err := os.Stat(dir); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat %s: %w", dir, err)
		}

		if err := g.initRepo(ctx, addr, dir); err != nil {
			return err
		}
	}

	if out, err := g.runner.Run(ctx, dir, "git", "pull", "origin", branch); err != nil {
		return fmt.Errorf("failed to pull %s: %w\n%s", addr, err, out)
	}

	if revision == "" {
		return nil
	}

	if out, err := g.runner.Run(ctx, dir, "git", "checkout", revision); err != nil {
		return fmt.Errorf("failed to checkout %s: %w\n%s", revision, err, out)
	}

	return nil
}

func (g *GitRepoAdapter) initRepo(ctx context.Context, addr, dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	if out, err := g.runner.Run(ctx, dir, "git", "init"); err != nil {
		return fmt.Errorf("failed to init %s: %w\n%s", dir, err, out)
	}

	if out, err := g.runner.Run(ctx, dir, "git", "remote", "add", "origin", addr); err != nil {
		return fmt.Errorf("failed to add remote %s: %w\n%s", addr, err, out)
	}

	return nil
}

// Stash implements RepoAdapter. Missing directories are skipped.
func (g *GitRepoAdapter) Stash(ctx context.Context, dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	if out, err := g.runner.Run(ctx, dir, "git", "stash"); err != nil {
		return fmt.Errorf("failed to stash %s: %w\n%s", dir, err, out)
	}

	return nil
}
