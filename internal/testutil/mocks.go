// --- START OF FINAL REVISED FILE internal/testutil/mocks.go ---
// Package testutil provides mock implementations for interfaces defined in the
// converter library (pkg/converter) plus small filesystem helpers. These mocks
// facilitate unit testing by isolating components.
package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/infosia/FBX-glTF-conv/pkg/converter"
)

// MockConverter provides a mock implementation of the converter.Converter interface.
// Configure expectations using testify/mock methods (e.g., .On("Convert", ...).Return(...)).
// Use .Run to call opts.Writer or opts.Logger from inside the conversion.
type MockConverter struct {
	mock.Mock
}

// Convert mocks the Convert method.
func (m *MockConverter) Convert(ctx context.Context, inputPath string, opts converter.Options) (converter.Document, error) {
	args := m.Called(ctx, inputPath, opts)
	doc, _ := args.Get(0).(converter.Document) // nil when the test returns an error only
	return doc, args.Error(1)
}

// MockBufferWriter provides a mock implementation of the converter.BufferWriter interface.
type MockBufferWriter struct {
	mock.Mock
}

// Buffer mocks the Buffer method.
func (m *MockBufferWriter) Buffer(data []byte, index uint32, multi bool) (string, error) {
	args := m.Called(data, index, multi)
	return args.String(0), args.Error(1)
}

// MockDocument provides a mock implementation of the converter.Document interface.
type MockDocument struct {
	mock.Mock
}

// Serialize mocks the Serialize method.
func (m *MockDocument) Serialize(indent int) ([]byte, error) {
	args := m.Called(indent)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

// --- END OF FINAL REVISED FILE internal/testutil/mocks.go ---
