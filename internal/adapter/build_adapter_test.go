package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/paperjudge/internal/adapter/mocks"
	m "github.com/mouse-blink/paperjudge/internal/model"
)

func TestParseProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "simple", input: "cmake_minimum_required(VERSION 3.10)\nproject(paper)\n", want: "paper"},
		{name: "languages", input: "project (paper_test CXX)", want: "paper_test"},
		{name: "upper case", input: "PROJECT(Demo VERSION 1.0)", want: "Demo"},
		{name: "padded", input: "project(  spaced  )", want: "spaced"},
		{name: "missing", input: "add_executable(main main.cpp)", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProjectName(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNoProjectName)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCMakeBuildAdapter_ProjectName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CMakeLists.txt"), []byte("project(paper)\n"), 0o600))

	b := NewCMakeBuildAdapter(nil)

	name, err := b.ProjectName(dir)
	require.NoError(t, err)
	assert.Equal(t, "paper", name)

	_, err = b.ProjectName(filepath.Join(dir, "absent"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCMakeBuildAdapter_Build(t *testing.T) {
	root := t.TempDir()
	runner := mocks.NewMockCommandRunner(t)
	b := NewCMakeBuildAdapter(runner)

	runner.On("Run", mock.Anything, root, "cmake", []string{"-B", "build", "-G", "Ninja"}).Return("", nil).Once()
	runner.On("Run", mock.Anything, filepath.Join(root, "build"), "ninja", []string(nil)).Return("", nil).Once()

	require.NoError(t, b.Build(context.Background(), root, "build", "Ninja", "ninja"))
	assert.DirExists(t, filepath.Join(root, "build"))
}

func TestCMakeBuildAdapter_Build_DefaultGenerator(t *testing.T) {
	root := t.TempDir()
	runner := mocks.NewMockCommandRunner(t)
	b := NewCMakeBuildAdapter(runner)

	runner.On("Run", mock.Anything, root, "cmake", []string{"-B", "out"}).Return("", nil).Once()
	runner.On("Run", mock.Anything, filepath.Join(root, "out"), "make", []string(nil)).Return("", nil).Once()

	require.NoError(t, b.Build(context.Background(), root, "out", "", "make"))
}

func TestCMakeBuildAdapter_Build_ConfigureFailure(t *testing.T) {
	root := t.TempDir()
	runner := mocks.NewMockCommandRunner(t)
	b := NewCMakeBuildAdapter(runner)

	runner.On("Run", mock.Anything, root, "cmake", mock.Anything).
		Return("CMake Error: no CMakeLists.txt", errors.New("exit status 1"))

	err := b.Build(context.Background(), root, "build", "Ninja", "ninja")
	require.ErrorContains(t, err, "cmake configure failed")
	require.ErrorContains(t, err, "CMake Error")
}

func TestCMakeBuildAdapter_RunReference(t *testing.T) {
	dir := t.TempDir()
	runner := mocks.NewMockCommandRunner(t)
	b := NewCMakeBuildAdapter(runner)

	out := m.Path(filepath.Join(dir, "refAnswers.txt"))
	runner.On("RunToFile", mock.Anything, dir, out, filepath.Join(dir, "paper"), []string(nil)).Return(nil)

	require.NoError(t, b.RunReference(context.Background(), dir, "paper", out))
}
