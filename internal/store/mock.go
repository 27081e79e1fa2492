package store

import (
	"context"
	"slices"

	"fjacquet/household-tracker/internal/models"
)

// MockPersistence is an in-memory Persistence for testing.
type MockPersistence struct {
	Records []models.ExpenseRecord
	Saves   int
	Closed  bool

	// Error flags for testing error conditions
	LoadError error
	SaveError error
}

// Load returns a copy of the mock records.
func (m *MockPersistence) Load(_ context.Context) ([]models.ExpenseRecord, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	if m.Records == nil {
		return []models.ExpenseRecord{}, nil
	}
	return slices.Clone(m.Records), nil
}

// Save stores a copy of recs.
func (m *MockPersistence) Save(_ context.Context, recs []models.ExpenseRecord) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Records = slices.Clone(recs)
	m.Saves++
	return nil
}

// Close marks the mock closed.
func (m *MockPersistence) Close() error {
	m.Closed = true
	return nil
}
