// Package sqlite implements storage.Storage on a local SQLite database file.
// It backs one-off runs of the enrich command where no PostgreSQL server is
// available. Background jobs are not supported.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	root "enricher"
	"enricher/pkg/serrors"
	"enricher/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
	"github.com/riverqueue/river"
	_ "modernc.org/sqlite"
)

const (
	dialect = "sqlite3"
	// MigrationsDir is the directory of the embedded SQLite migrations.
	MigrationsDir = "migrations/sqlite"
	// now renders the current time with millisecond precision.
	now = "strftime('%Y-%m-%d %H:%M:%f', 'now')"
)

// Options configures the SQLite store.
type Options struct {
	// Path is the database file. Parent directories are created when missing.
	Path string
}

// DB is the subset of database/sql shared by *sql.DB and *sql.Tx.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder is the subset of goqu used to build queries bound to DB.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
}

var _ storage.Storage = (*SQLite)(nil)

// SQLite implements storage.Storage on top of modernc.org/sqlite.
type SQLite struct {
	DB      DB
	Builder Builder
}

// New opens (creating if needed) the database file. The schema is not
// created; call EnsureSchema.
func New(options Options) (*SQLite, error) {
	if dir := filepath.Dir(options.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("could not create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", options.Path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database: %w", err)
	}
	// a single connection serializes writers and keeps transactions simple
	db.SetMaxOpenConns(1)

	return &SQLite{
		DB:      db,
		Builder: goqu.Dialect(dialect).DB(db),
	}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return storage.ErrAlreadyInTx
	}

	if err := db.Close(); err != nil {
		return fmt.Errorf("could not close sqlite database: %w", err)
	}

	return nil
}

// EnsureSchema applies all pending embedded migrations.
func (s *SQLite) EnsureSchema(ctx context.Context) error {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return storage.ErrAlreadyInTx
	}

	fsys, err := fs.Sub(root.Migrations, MigrationsDir)
	if err != nil {
		return fmt.Errorf("could not open migrations: %w", err)
	}

	provider, err := goose.NewProvider(database.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("could not create migration provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	return nil
}

// Commit commits the current transaction.
func (s *SQLite) Commit() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the current transaction.
func (s *SQLite) Rollback() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin starts a transaction.
func (s *SQLite) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &SQLite{
		DB:      tx,
		Builder: goqu.NewTx(dialect, tx),
	}, nil
}

// WithTx runs cb inside a transaction, committing when it returns nil.
func (s *SQLite) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

// AddJob always fails: the SQLite store has no job queue.
func (s *SQLite) AddJob(context.Context, river.JobArgs, *river.InsertOpts) (bool, error) {
	return false, storage.ErrJobsUnsupported
}

func translateError(err error, msgFmt string, args ...any) error {
	if strings.Contains(err.Error(), "no such table") {
		return serrors.Wrap(storage.ErrNotInitialized, err, msgFmt, args...)
	}

	return fmt.Errorf(msgFmt+": %w", append(args, err)...)
}
