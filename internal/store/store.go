// Package store persists the expense record collection between runs.
package store

import (
	"context"
	"fmt"

	"fjacquet/household-tracker/internal/config"
	"fjacquet/household-tracker/internal/logging"
	"fjacquet/household-tracker/internal/models"
)

// Persistence loads and saves the whole record collection. Load returns the
// records in the order they were saved; a store that was never written
// loads as an empty collection.
type Persistence interface {
	Load(ctx context.Context) ([]models.ExpenseRecord, error)
	Save(ctx context.Context, recs []models.ExpenseRecord) error
	Close() error
}

// New opens the backend selected by cfg.Storage.Backend.
func New(cfg *config.Config, logger logging.Logger) (Persistence, error) {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	path := cfg.StoragePath()

	switch cfg.Storage.Backend {
	case models.StorageBackendJSON:
		return NewFileStore(path, logger), nil
	case models.StorageBackendSQLite:
		return NewSQLiteStore(path, cfg.Storage.RetryAttempts, logger)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Storage.Backend)
	}
}
