// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/paperjudge/internal/domain"
	m "github.com/mouse-blink/paperjudge/internal/model"
)

type cleanupT interface {
	mock.TestingT
	Cleanup(func())
}

// MockWorkflow mocks domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a mock that asserts its expectations on cleanup.
func NewMockWorkflow(t cleanupT) *MockWorkflow {
	mk := &MockWorkflow{}
	mk.Mock.Test(t)
	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}

func (mk *MockWorkflow) Grade(ctx context.Context, args domain.GradeArgs) error {
	return mk.Called(ctx, args).Error(0)
}

func (mk *MockWorkflow) Compare(ctx context.Context, args domain.CompareArgs) error {
	return mk.Called(ctx, args).Error(0)
}

func (mk *MockWorkflow) Blocks(args domain.BlocksArgs) error {
	return mk.Called(args).Error(0)
}

func (mk *MockWorkflow) View(args domain.ViewArgs) error {
	return mk.Called(args).Error(0)
}

// MockOrchestrator mocks domain.Orchestrator.
type MockOrchestrator struct {
	mock.Mock
}

// NewMockOrchestrator creates a mock that asserts its expectations on cleanup.
func NewMockOrchestrator(t cleanupT) *MockOrchestrator {
	mk := &MockOrchestrator{}
	mk.Mock.Test(t)
	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}

func (mk *MockOrchestrator) SyncRepos(ctx context.Context, studentRepo, revision string) error {
	return mk.Called(ctx, studentRepo, revision).Error(0)
}

func (mk *MockOrchestrator) ProduceReference(ctx context.Context) (m.Path, error) {
	ret := mk.Called(ctx)

	path, _ := ret.Get(0).(m.Path)

	return path, ret.Error(1)
}

func (mk *MockOrchestrator) SubmissionPath() m.Path {
	return mk.Called().Get(0).(m.Path)
}

func (mk *MockOrchestrator) Cleanup(ctx context.Context, purge bool) error {
	return mk.Called(ctx, purge).Error(0)
}
