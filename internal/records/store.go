// Package records holds the in-memory collection of expense records. The
// Store is the only owner of the collection; every read hands out a copy.
package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"fjacquet/household-tracker/internal/logging"
	"fjacquet/household-tracker/internal/models"
	"fjacquet/household-tracker/internal/trackererror"
)

// Store is the ordered collection of expense records. It is not safe for
// concurrent use; the tracker has a single logical writer.
type Store struct {
	records []models.ExpenseRecord
	ids     map[int64]struct{}
	lastID  int64
	now     func() time.Time
	logger  logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp new records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty Store.
func NewStore(logger logging.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	s := &Store{
		ids:    make(map[int64]struct{}),
		now:    time.Now,
		logger: logger.WithField(logging.FieldComponent, "records"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append validates rec and adds it to the end of the collection. The
// timestamp is stored in UTC. On error the store is unchanged.
func (s *Store) Append(rec models.ExpenseRecord) error {
	rec.Timestamp = rec.Timestamp.UTC()
	if err := rec.Validate(); err != nil {
		s.logger.Debug("Rejected record", logging.F(logging.FieldError, err.Error()))
		return err
	}
	if _, dup := s.ids[rec.ID]; dup {
		return &trackererror.ValidationError{
			Field:  "id",
			Value:  strconv.FormatInt(rec.ID, 10),
			Reason: "already present in the store",
		}
	}

	s.records = append(s.records, rec)
	s.trackID(rec.ID)

	s.logger.Debug("Appended record",
		logging.F(logging.FieldRecordID, rec.ID),
		logging.F(logging.FieldCategory, string(rec.Category)))
	return nil
}

// NewRecord stamps draft with a fresh ID and creation timestamp and appends
// it. IDs are the creation time in Unix milliseconds, bumped when needed so
// they stay unique and increasing within the process.
func (s *Store) NewRecord(draft models.ExpenseRecord) (models.ExpenseRecord, error) {
	now := s.now()
	rec := draft
	rec.ID = s.nextID(now)
	rec.Timestamp = now.UTC()

	if err := s.Append(rec); err != nil {
		return models.ExpenseRecord{}, err
	}
	return rec, nil
}

// ReplaceAll replaces the whole collection with the records of a JSON array
// payload. Only the array shape and the record field types are checked;
// records are not validated against the taxonomy. Unlike a plain array
// import, an element whose fields have the wrong JSON type (a quoted price,
// a numeric name) rejects the whole payload as MalformedRecord, since the
// typed record cannot hold it. On error the store is unchanged.
func (s *Store) ReplaceAll(payload []byte) error {
	trimmed := bytes.TrimSpace(payload)
	if !json.Valid(trimmed) {
		return &trackererror.ImportError{Kind: trackererror.InvalidJSON, Index: -1, Err: fmt.Errorf("payload is not valid JSON")}
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return &trackererror.ImportError{Kind: trackererror.NotAnArray, Index: -1}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return &trackererror.ImportError{Kind: trackererror.InvalidJSON, Index: -1, Err: err}
	}

	imported := make([]models.ExpenseRecord, len(elements))
	for i, raw := range elements {
		if err := json.Unmarshal(raw, &imported[i]); err != nil {
			return &trackererror.ImportError{Kind: trackererror.MalformedRecord, Index: i, Err: err}
		}
	}

	s.Replace(imported)
	s.logger.Info("Imported records", logging.F(logging.FieldCount, len(imported)))
	return nil
}

// Replace swaps in records as the new collection without validation. It is
// used by persistence adapters when loading saved data.
func (s *Store) Replace(recs []models.ExpenseRecord) {
	s.records = slices.Clone(recs)
	s.ids = make(map[int64]struct{}, len(recs))
	s.lastID = 0

	duplicates := 0
	for _, rec := range s.records {
		if _, dup := s.ids[rec.ID]; dup {
			duplicates++
		}
		s.trackID(rec.ID)
	}
	if duplicates > 0 {
		s.logger.Warn("Replaced collection contains duplicate record IDs",
			logging.F(logging.FieldCount, duplicates))
	}
}

// All returns a copy of every record in insertion order.
func (s *Store) All() []models.ExpenseRecord {
	out := slices.Clone(s.records)
	if out == nil {
		out = []models.ExpenseRecord{}
	}
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) trackID(id int64) {
	s.ids[id] = struct{}{}
	if id > s.lastID {
		s.lastID = id
	}
}

func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	for {
		if _, taken := s.ids[id]; !taken {
			return id
		}
		id++
	}
}
