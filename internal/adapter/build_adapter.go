package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	m "github.com/mouse-blink/paperjudge/internal/model"
)

// ErrNoProjectName is returned when CMakeLists.txt declares no project.
var ErrNoProjectName = errors.New("project name not found in CMakeLists.txt")

var projectPattern = regexp.MustCompile(`(?i)project\s*\(\s*([^\s)]+)`)

// BuildAdapter builds the reference program and captures its output.
type BuildAdapter interface {
	// Build configures root with cmake into target and runs the build tool there.
	Build(ctx context.Context, root, target, generator, tool string) error
	// ProjectName returns the project declared in root/CMakeLists.txt.
	ProjectName(root string) (string, error)
	// RunReference runs binaryDir/project and writes its stdout to out.
	RunReference(ctx context.Context, binaryDir, project string, out m.Path) error
}

// CMakeBuildAdapter implements BuildAdapter with cmake.
type CMakeBuildAdapter struct {
	runner CommandRunner
}

// NewCMakeBuildAdapter constructs a CMakeBuildAdapter backed by runner.
func NewCMakeBuildAdapter(runner CommandRunner) *CMakeBuildAdapter {
	return &CMakeBuildAdapter{runner: runner}
}

// Build implements BuildAdapter.
func (b *CMakeBuildAdapter) Build(ctx context.Context, root, target, generator, tool string) error {
	if err := os.MkdirAll(filepath.Join(root, target), 0o750); err != nil {
		return fmt.Errorf("failed to create build dir: %w", err)
	}

	args := []string{"-B", target}
	if generator != "" {
		args = append(args, "-G", generator)
	}

	if out, err := b.runner.Run(ctx, root, "cmake", args...); err != nil {
		return fmt.Errorf("cmake configure failed: %w\n%s", err, out)
	}

	if out, err := b.runner.Run(ctx, filepath.Join(root, target), tool); err != nil {
		return fmt.Errorf("build failed: %w\n%s", err, out)
	}

	return nil
}

// ProjectName implements BuildAdapter.
func (b *CMakeBuildAdapter) ProjectName(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "CMakeLists.txt"))
	if err != nil {
		return "", fmt.Errorf("failed to read CMakeLists.txt: %w", err)
	}

	return parseProjectName(string(data))
}

func parseProjectName(cmakeLists string) (string, error) {
	match := projectPattern.FindStringSubmatch(cmakeLists)
	if match == nil {
		return "", ErrNoProjectName
	}

	return match[1], nil
}

// RunReference implements BuildAdapter.
func (b *CMakeBuildAdapter) RunReference(ctx context.Context, binaryDir, project string, out m.Path) error {
	dir, err := filepath.Abs(binaryDir)
	if err != nil {
		return err
	}

	return b.runner.RunToFile(ctx, dir, out, filepath.Join(dir, project))
}
