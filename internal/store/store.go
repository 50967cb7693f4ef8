package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// ErrClosed is returned when an operation is attempted through a handle
// that has already been closed. This is a programmer error, not a
// recoverable condition.
var ErrClosed = errors.New("store: handle is closed")

// UnavailableError reports that the backing store could not be opened or
// prepared (bad path, permissions, corrupt file). Callers may retry after
// fixing the underlying condition.
type UnavailableError struct {
	Path string
	Err  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("store: %s unavailable: %v", e.Path, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Store owns the single connection to the SQLite task database.
// It is designed for sequential use by one caller; concurrent access is
// left to SQLite's own locking.
type Store struct {
	db     *sql.DB
	path   string
	closed bool
}

// Open opens (creating if absent) the task database at path and applies
// the schema. Foreign keys are enabled on the connection so that deleting
// a task cascades to its steps.
func Open(path string) (*Store, error) {
	// Expand ~ in path
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, &UnavailableError{Path: path, Err: err}
		}
		path = filepath.Join(home, path[1:])
	}

	// Ensure directory exists
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &UnavailableError{Path: path, Err: err}
		}
	}

	db, err := sql.Open("sqlite3", path+"?_fk=1")
	if err != nil {
		return nil, &UnavailableError{Path: path, Err: err}
	}

	// sql.Open is lazy; force the file open so a bad location fails here,
	// not on the first statement.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &UnavailableError{Path: path, Err: err}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, &UnavailableError{Path: path, Err: err}
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file location this handle was opened with.
func (s *Store) Path() string { return s.path }

// Close releases the connection. Any later use of the handle fails with
// ErrClosed.
func (s *Store) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	return s.db.Close()
}

// Tx runs fn inside a single transaction: commit if fn returns nil,
// rollback otherwise. Every mutating operation runs through exactly one
// Tx call so partial writes are never observable.
func (s *Store) Tx(fn func(tx *sql.Tx) error) error {
	if s.closed {
		return ErrClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Query runs a read-only query through the handle.
func (s *Store) Query(query string, args ...any) (*sql.Rows, error) {
	if s.closed {
		return nil, ErrClosed
	}
	return s.db.Query(query, args...)
}

// QueryRow runs a single-row read through the handle.
func (s *Store) QueryRow(query string, args ...any) (*sql.Row, error) {
	if s.closed {
		return nil, ErrClosed
	}
	return s.db.QueryRow(query, args...), nil
}
