// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"context"
	"os"

	"github.com/stretchr/testify/mock"

	m "github.com/mouse-blink/paperjudge/internal/model"
)

type cleanupT interface {
	mock.TestingT
	Cleanup(func())
}

// MockTranscriptFSAdapter mocks adapter.TranscriptFSAdapter.
type MockTranscriptFSAdapter struct {
	mock.Mock
}

// NewMockTranscriptFSAdapter creates a mock that asserts its expectations on cleanup.
func NewMockTranscriptFSAdapter(t cleanupT) *MockTranscriptFSAdapter {
	mk := &MockTranscriptFSAdapter{}
	mk.Mock.Test(t)
	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}

func (mk *MockTranscriptFSAdapter) ReadLines(path m.Path) ([]string, error) {
	ret := mk.Called(path)

	lines, _ := ret.Get(0).([]string)

	return lines, ret.Error(1)
}

func (mk *MockTranscriptFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	ret := mk.Called(path)

	info, _ := ret.Get(0).(os.FileInfo)

	return info, ret.Error(1)
}

func (mk *MockTranscriptFSAdapter) RemoveAll(path m.Path) error {
	return mk.Called(path).Error(0)
}

func (mk *MockTranscriptFSAdapter) JoinPath(elem ...string) m.Path {
	args := make([]interface{}, len(elem))
	for i, e := range elem {
		args[i] = e
	}

	return mk.Called(args...).Get(0).(m.Path)
}

func (mk *MockTranscriptFSAdapter) Base(path m.Path) string {
	return mk.Called(path).String(0)
}

// MockRepoAdapter mocks adapter.RepoAdapter.
type MockRepoAdapter struct {
	mock.Mock
}

// NewMockRepoAdapter creates a mock that asserts its expectations on cleanup.
func NewMockRepoAdapter(t cleanupT) *MockRepoAdapter {
	mk := &MockRepoAdapter{}
	mk.Mock.Test(t)
	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}

func (mk *MockRepoAdapter) Sync(ctx context.Context, addr, dir, branch, revision string) error {
	return mk.Called(ctx, addr, dir, branch, revision).Error(0)
}

func (mk *MockRepoAdapter) Stash(ctx context.Context, dir string) error {
	return mk.Called(ctx, dir).Error(0)
}

// MockBuildAdapter mocks adapter.BuildAdapter.
type MockBuildAdapter struct {
	mock.Mock
}

// NewMockBuildAdapter creates a mock that asserts its expectations on cleanup.
func NewMockBuildAdapter(t cleanupT) *MockBuildAdapter {
	mk := &MockBuildAdapter{}
	mk.Mock.Test(t)
	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}

func (mk *MockBuildAdapter) Build(ctx context.Context, root, target, generator, tool string) error {
	return mk.Called(ctx, root, target, generator, tool).Error(0)
}

func (mk *MockBuildAdapter) ProjectName(root string) (string, error) {
	ret := mk.Called(root)

	return ret.String(0), ret.Error(1)
}

func (mk *MockBuildAdapter) RunReference(ctx context.Context, binaryDir, project string, out m.Path) error {
	return mk.Called(ctx, binaryDir, project, out).Error(0)
}

// MockReportStore mocks adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

// NewMockReportStore creates a mock that asserts its expectations on cleanup.
func NewMockReportStore(t cleanupT) *MockReportStore {
	mk := &MockReportStore{}
	mk.Mock.Test(t)
	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}

func (mk *MockReportStore) SaveReport(path m.Path, report m.Report) error {
	return mk.Called(path, report).Error(0)
}

func (mk *MockReportStore) LoadReport(path m.Path) (m.Report, error) {
	ret := mk.Called(path)

	report, _ := ret.Get(0).(m.Report)

	return report, ret.Error(1)
}

// MockCommandRunner mocks adapter.CommandRunner. Variadic arguments are
// recorded as a single []string.
type MockCommandRunner struct {
	mock.Mock
}

// NewMockCommandRunner creates a mock that asserts its expectations on cleanup.
func NewMockCommandRunner(t cleanupT) *MockCommandRunner {
	mk := &MockCommandRunner{}
	mk.Mock.Test(t)
	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}

func (mk *MockCommandRunner) Run(ctx context.Context, dir string, name string, args ...string) (string, error) {
	ret := mk.Called(ctx, dir, name, args)

	return ret.String(0), ret.Error(1)
}

func (mk *MockCommandRunner) RunToFile(ctx context.Context, dir string, stdout m.Path, name string, args ...string) error {
	return mk.Called(ctx, dir, stdout, name, args).Error(0)
}
