package flightdata

import (
	"context"

	"github.com/farescope/farescope/internal/contract"
	"github.com/farescope/farescope/schema"
	"github.com/stretchr/testify/mock"
)

// MockRecordSource is a mock implementation of RecordSource for testing.
type MockRecordSource struct {
	mock.Mock
}

var _ contract.RecordSource = &MockRecordSource{} // Compile-time check

// Load implements the RecordSource interface.
func (m *MockRecordSource) Load(ctx context.Context) ([]schema.RawRecord, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]schema.RawRecord)
	return records, args.Error(1)
}

// Describe implements the RecordSource interface.
func (m *MockRecordSource) Describe() string {
	args := m.Called()
	return args.String(0)
}
