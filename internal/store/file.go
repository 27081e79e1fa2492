package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"fjacquet/household-tracker/internal/export"
	"fjacquet/household-tracker/internal/fileutils"
	"fjacquet/household-tracker/internal/logging"
	"fjacquet/household-tracker/internal/models"
	"fjacquet/household-tracker/internal/validation"
)

// FileStore keeps the collection in a single JSON file, in the same
// format the json export produces.
type FileStore struct {
	path   string
	logger logging.Logger
}

// NewFileStore creates a FileStore backed by path. The file is created on
// the first Save.
func NewFileStore(path string, logger logging.Logger) *FileStore {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &FileStore{
		path: path,
		logger: logger.WithFields(
			logging.F(logging.FieldComponent, "FileStore"),
			logging.F(logging.FieldFile, path),
		),
	}
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the collection. A missing or blank file yields no records.
func (s *FileStore) Load(ctx context.Context) ([]models.ExpenseRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !fileutils.FileExists(s.path) {
		s.logger.Debug("Data file not found, starting with an empty collection")
		return []models.ExpenseRecord{}, nil
	}

	if info, err := os.Stat(s.path); err == nil {
		if err := validation.IsValidFilePermissions(info.Mode().Perm()); err != nil {
			s.logger.WithError(err).Warn("Data file is readable by other users")
		}
	}

	data, err := fileutils.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("error loading records: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.ExpenseRecord{}, nil
	}

	var recs []models.ExpenseRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("error parsing records file %s: %w", s.path, err)
	}
	if recs == nil {
		recs = []models.ExpenseRecord{}
	}

	s.logger.Debug("Loaded records", logging.F(logging.FieldCount, len(recs)))
	return recs, nil
}

// Save replaces the file contents atomically.
func (s *FileStore) Save(ctx context.Context, recs []models.ExpenseRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := export.MarshalRecords(recs)
	if err != nil {
		return fmt.Errorf("error marshaling records: %w", err)
	}

	if err := fileutils.WriteFileAtomic(s.path, data, models.PermissionDataFile); err != nil {
		return fmt.Errorf("error saving records: %w", err)
	}

	s.logger.Debug("Saved records", logging.F(logging.FieldCount, len(recs)))
	return nil
}

// Close is a no-op; FileStore holds no open handles.
func (s *FileStore) Close() error {
	return nil
}
