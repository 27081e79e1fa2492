package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"fjacquet/household-tracker/internal/fileutils"
	"fjacquet/household-tracker/internal/logging"
	"fjacquet/household-tracker/internal/models"

	"github.com/avast/retry-go"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	busyTimeoutMillis = 1000
	retryDelay        = 50 * time.Millisecond
)

const insertExpense = `INSERT INTO expenses
	(position, id, comments, price, payment, weight, shop, category, subcategory, date, name, timestamp)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const selectExpenses = `SELECT id, comments, price, payment, weight, shop, category, subcategory, date, name, timestamp
	FROM expenses ORDER BY position`

// SQLiteStore keeps the collection in a SQLite database, one row per
// record, ordered by its position in the collection.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	attempts uint
	logger   logging.Logger
}

// NewSQLiteStore opens (creating if needed) the database at path and applies
// pending migrations. attempts bounds how often a locked write is tried.
func NewSQLiteStore(path string, attempts uint, logger logging.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if attempts == 0 {
		attempts = 1
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", path, busyTimeoutMillis)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dsn); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{
		db:       db,
		path:     path,
		attempts: attempts,
		logger: logger.WithFields(
			logging.F(logging.FieldComponent, "SQLiteStore"),
			logging.F(logging.FieldFile, path),
		),
	}, nil
}

// Load reads every row in collection order.
func (s *SQLiteStore) Load(ctx context.Context) ([]models.ExpenseRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectExpenses)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	recs := []models.ExpenseRecord{}
	for rows.Next() {
		var (
			rec       models.ExpenseRecord
			payment   string
			category  string
			timestamp string
		)
		if err := rows.Scan(&rec.ID, &rec.Comments, &rec.Price, &payment, &rec.Weight,
			&rec.Shop, &category, &rec.Subcategory, &rec.Date, &rec.Name, &timestamp); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		rec.Payment = models.PaymentMethod(payment)
		rec.Category = models.Category(category)
		if rec.Timestamp, err = time.Parse(time.RFC3339Nano, timestamp); err != nil {
			return nil, fmt.Errorf("parse timestamp of record %d: %w", rec.ID, err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	s.logger.Debug("Loaded records", logging.F(logging.FieldCount, len(recs)))
	return recs, nil
}

// Save replaces the table contents in a single transaction. A locked
// database is retried with backoff.
func (s *SQLiteStore) Save(ctx context.Context, recs []models.ExpenseRecord) error {
	err := retry.Do(
		func() error {
			return s.replaceAll(ctx, recs)
		},
		retry.RetryIf(isBusy),
		retry.OnRetry(func(n uint, err error) {
			s.logger.WithError(err).Warn("Database busy, retrying save",
				logging.F(logging.FieldAttempt, n+1))
		}),
		retry.Attempts(s.attempts),
		retry.Delay(retryDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("save expenses: %w", err)
	}

	s.logger.Debug("Saved records", logging.F(logging.FieldCount, len(recs)))
	return nil
}

func (s *SQLiteStore) replaceAll(ctx context.Context, recs []models.ExpenseRecord) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM expenses"); err != nil {
		return fmt.Errorf("clear expenses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertExpense)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, rec := range recs {
		if _, err = stmt.ExecContext(ctx, i, rec.ID, rec.Comments, rec.Price, string(rec.Payment), rec.Weight,
			rec.Shop, string(rec.Category), rec.Subcategory, rec.Date, rec.Name,
			rec.Timestamp.UTC().Format(time.RFC3339Nano)); err != nil {
			return fmt.Errorf("insert record %d: %w", rec.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// isBusy reports whether err is SQLite refusing a write because another
// connection holds the lock.
func isBusy(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xff {
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return true
		}
	}
	return strings.Contains(err.Error(), "database is locked")
}
