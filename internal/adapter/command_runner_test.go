package adapter

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/paperjudge/internal/model"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestLocalCommandRunner_Run(t *testing.T) {
	skipWithoutShell(t)

	r := NewLocalCommandRunner(nil)
	dir := t.TempDir()

	out, err := r.Run(context.Background(), dir, "sh", "-c", "pwd; echo oops 1>&2")
	require.NoError(t, err)

	assert.Contains(t, out, filepath.Base(dir))
	assert.Contains(t, out, "oops")
}

func TestLocalCommandRunner_Run_Failure(t *testing.T) {
	skipWithoutShell(t)

	r := NewLocalCommandRunner(nil)

	out, err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "echo broken; exit 3")
	require.Error(t, err)
	assert.Contains(t, out, "broken")
	assert.Contains(t, err.Error(), "exit status 3")
}

func TestLocalCommandRunner_RunToFile(t *testing.T) {
	skipWithoutShell(t)

	r := NewLocalCommandRunner(nil)
	dir := t.TempDir()
	out := filepath.Join(dir, "refAnswers.txt")

	require.NoError(t, r.RunToFile(context.Background(), dir, m.Path(out), "sh", "-c", "printf '1:\\n42\\n'; echo noise 1>&2"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1:\n42\n", string(data))
}

func TestLocalCommandRunner_RunToFile_ReportsStderr(t *testing.T) {
	skipWithoutShell(t)

	r := NewLocalCommandRunner(nil)
	dir := t.TempDir()

	err := r.RunToFile(context.Background(), dir, m.Path(filepath.Join(dir, "out.txt")), "sh", "-c", "echo segfault 1>&2; exit 1")
	require.ErrorContains(t, err, "segfault")
}

func TestLocalCommandRunner_RunToFile_Timeout(t *testing.T) {
	skipWithoutShell(t)

	r := NewLocalCommandRunner(nil)
	dir := t.TempDir()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := r.RunToFile(ctx, dir, m.Path(filepath.Join(dir, "out.txt")), "sh", "-c", "sleep 5")
	require.Error(t, err)
}
