// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	m "github.com/mouse-blink/paperjudge/internal/model"
)

// MockUI mocks controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a mock that asserts its expectations on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mk := &MockUI{}
	mk.Mock.Test(t)
	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}

func (mk *MockUI) DisplayStage(stage string) {
	mk.Called(stage)
}

func (mk *MockUI) DisplayClassification(name string, classification *m.Classification) error {
	return mk.Called(name, classification).Error(0)
}

func (mk *MockUI) DisplayBlocks(name string, blocks []m.Block) error {
	return mk.Called(name, blocks).Error(0)
}

func (mk *MockUI) DisplayReport(report m.Report) error {
	return mk.Called(report).Error(0)
}
