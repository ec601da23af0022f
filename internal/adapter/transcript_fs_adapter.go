// Package adapter contains infrastructure adapters for the paperjudge CLI.
package adapter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/paperjudge/internal/model"
)

// maxLineSize bounds a single transcript line.
const maxLineSize = 16 * 1024 * 1024

// TranscriptFSAdapter abstracts the filesystem operations the workflow needs
// around transcripts and checkout directories, so grading logic can be tested
// without touching the disk.
type TranscriptFSAdapter interface {
	// ReadLines loads a transcript as lines without their terminators.
	ReadLines(path m.Path) ([]string, error)

	// FileInfo returns metadata for a path so the domain can check existence
	// before reading.
	FileInfo(path m.Path) (os.FileInfo, error)

	// RemoveAll removes a directory and all its contents.
	RemoveAll(path m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path

	// Base returns the last element of path.
	Base(path m.Path) string
}

// LocalTranscriptFSAdapter is the os-backed TranscriptFSAdapter.
type LocalTranscriptFSAdapter struct{}

// NewLocalTranscriptFSAdapter constructs a LocalTranscriptFSAdapter.
func NewLocalTranscriptFSAdapter() *LocalTranscriptFSAdapter {
	return &LocalTranscriptFSAdapter{}
}

// ReadLines reads the whole file. Both "\n" and "\r\n" terminate a line, and a
// missing final terminator does not drop the last line.
func (a *LocalTranscriptFSAdapter) ReadLines(path m.Path) ([]string, error) {
	// #nosec G304 - transcripts are chosen by the operator
	f, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}

	defer func() { _ = f.Close() }()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return lines, nil
}

// ReadLines splits r into lines, stripping "\n" and "\r\n" terminators.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalTranscriptFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// RemoveAll removes a directory and all its contents.
func (a *LocalTranscriptFSAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalTranscriptFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// Base returns the last element of path.
func (a *LocalTranscriptFSAdapter) Base(path m.Path) string {
	return filepath.Base(string(path))
}
