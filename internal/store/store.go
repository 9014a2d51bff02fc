// Package store implements the retail-operations data store on embedded
// SQLite: schema bootstrap, the stock-consistency enforcer, the employee
// audit recorder, reporting (hierarchy, pivot, monthly sales), and the
// named procedural operations the CLI exposes.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

//go:embed indexes.sql
var indexesSQL string

//go:embed views.sql
var viewsSQL string

// timeFormat is the canonical text encoding for timestamps. RFC 3339
// strings compare in chronological order, so date ordering in SQL stays
// correct.
const timeFormat = time.RFC3339

// Store is an open retail-operations database. All operations are
// synchronous round-trips; multi-step operations run inside a single
// transaction. The connection pool is capped at one connection, so
// concurrent callers serialize at the engine and never observe a partially
// applied unit of work.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database named by cfg and
// verifies the connection. Failures to reach the engine wrap
// types.ErrConnection and are fatal for the run.
func Open(cfg types.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w: %v", types.ErrConnection, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)",
		cfg.DBPath, cfg.BusyTimeout())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %v", cfg.DBPath, types.ErrConnection, err)
	}

	// SQLite allows one writer at a time; a single pooled connection keeps
	// every caller on that writer instead of surfacing busy errors.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w: %v", cfg.DBPath, types.ErrConnection, err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// CreateTables creates all tables. Safe to invoke repeatedly.
func (s *Store) CreateTables() error {
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("create tables: %w", classifyError(err))
	}
	return nil
}

// CreateIndexes creates the secondary indexes. Safe to invoke repeatedly.
func (s *Store) CreateIndexes() error {
	if _, err := s.db.Exec(indexesSQL); err != nil {
		return fmt.Errorf("create indexes: %w", classifyError(err))
	}
	return nil
}

// CreateViews creates the reporting views. Safe to invoke repeatedly.
func (s *Store) CreateViews() error {
	if _, err := s.db.Exec(viewsSQL); err != nil {
		return fmt.Errorf("create views: %w", classifyError(err))
	}
	return nil
}

// Setup bootstraps the complete schema: tables, indexes, and views.
// Idempotent; running it against an initialized database changes nothing.
func (s *Store) Setup() error {
	if err := s.CreateTables(); err != nil {
		return err
	}
	if err := s.CreateIndexes(); err != nil {
		return err
	}
	return s.CreateViews()
}

// withTx runs fn inside a transaction, committing on nil and rolling back
// on error. The returned error is already classified.
func (s *Store) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", classifyError(err))
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", classifyError(err))
	}
	return nil
}

// nullInt64 converts an optional ID into its SQL representation.
func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// int64Ptr converts a nullable SQL integer back into an optional ID.
func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

// parseTime decodes a stored timestamp. Stored values are produced by this
// package, so a decode failure indicates external tampering and is
// surfaced as-is.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored time %q: %w", s, err)
	}
	return t, nil
}
