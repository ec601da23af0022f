package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	m "github.com/mouse-blink/paperjudge/internal/model"
)

// CommandRunner executes external tools on behalf of the workflow so the
// domain layer never touches os/exec directly.
type CommandRunner interface {
	// Run executes name in dir and returns its combined output.
	Run(ctx context.Context, dir string, name string, args ...string) (string, error)
	// RunToFile executes name in dir, writing its stdout to the stdout path.
	RunToFile(ctx context.Context, dir string, stdout m.Path, name string, args ...string) error
}

// LocalCommandRunner runs commands on the local machine.
type LocalCommandRunner struct {
	logger *zap.Logger
}

// NewLocalCommandRunner constructs a LocalCommandRunner.
func NewLocalCommandRunner(logger *zap.Logger) *LocalCommandRunner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &LocalCommandRunner{logger: logger}
}

// Run executes the command and returns stdout and stderr interleaved.
func (r *LocalCommandRunner) Run(ctx context.Context, dir string, name string, args ...string) (string, error) {
	r.logger.Debug("running command",
		zap.String("dir", dir),
		zap.String("command", name),
		zap.Strings("args", args))

	// #nosec G204 - commands are assembled from configuration, not user input
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}

	return string(out), nil
}

// RunToFile executes the command with stdout redirected to a file. Stderr is
// kept in memory and attached to the error on failure.
func (r *LocalCommandRunner) RunToFile(ctx context.Context, dir string, stdout m.Path, name string, args ...string) error {
	r.logger.Debug("running command",
		zap.String("dir", dir),
		zap.String("command", name),
		zap.Strings("args", args),
		zap.String("stdout", string(stdout)))

	out, err := os.Create(string(stdout))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", stdout, err)
	}

	defer func() { _ = out.Close() }()

	var stderr bytes.Buffer

	// #nosec G204 - the binary name comes from the reference project's CMakeLists.txt
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}

		return fmt.Errorf("%s: %w", name, err)
	}

	return out.Sync()
}
