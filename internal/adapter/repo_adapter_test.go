package adapter

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/paperjudge/internal/adapter/mocks"
)

const testRepoAddr = "https://example.com/paper.git"

func TestGitRepoAdapter_Sync_InitialisesNewCheckout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "student")
	runner := mocks.NewMockCommandRunner(t)
	g := NewGitRepoAdapter(runner)

	runner.On("Run", mock.Anything, dir, "git", []string{"init"}).Return("", nil).Once()
	runner.On("Run", mock.Anything, dir, "git", []string{"remote", "add", "origin", testRepoAddr}).Return("", nil).Once()
	runner.On("Run", mock.Anything, dir, "git", []string{"pull", "origin", "master"}).Return("", nil).Once()
	runner.On("Run", mock.Anything, dir, "git", []string{"checkout", "abc123"}).Return("", nil).Once()

	require.NoError(t, g.Sync(context.Background(), testRepoAddr, dir, "master", "abc123"))
	assert.DirExists(t, dir)
}

func TestGitRepoAdapter_Sync_ExistingCheckoutOnlyPulls(t *testing.T) {
	dir := t.TempDir()
	runner := mocks.NewMockCommandRunner(t)
	g := NewGitRepoAdapter(runner)

	runner.On("Run", mock.Anything, dir, "git", []string{"pull", "origin", "main"}).Return("", nil).Once()

	require.NoError(t, g.Sync(context.Background(), testRepoAddr, dir, "main", ""))
}

func TestGitRepoAdapter_Sync_PullFailure(t *testing.T) {
	dir := t.TempDir()
	runner := mocks.NewMockCommandRunner(t)
	g := NewGitRepoAdapter(runner)

	runner.On("Run", mock.Anything, dir, "git", []string{"pull", "origin", "master"}).
		Return("fatal: couldn't find remote ref", errors.New("exit status 128"))

	err := g.Sync(context.Background(), testRepoAddr, dir, "master", "v1")
	require.ErrorContains(t, err, "failed to pull")
	require.ErrorContains(t, err, "couldn't find remote ref")
}

func TestGitRepoAdapter_Stash(t *testing.T) {
	dir := t.TempDir()
	runner := mocks.NewMockCommandRunner(t)
	g := NewGitRepoAdapter(runner)

	runner.On("Run", mock.Anything, dir, "git", []string{"stash"}).Return("", nil).Once()

	require.NoError(t, g.Stash(context.Background(), dir))

	// Directories that were never cloned are skipped.
	require.NoError(t, g.Stash(context.Background(), filepath.Join(dir, "missing")))
}
