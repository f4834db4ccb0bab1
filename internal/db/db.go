package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/clinicadesk/clinicadesk/internal/apperrors"
)

// DB manages the connection to the clinic's SQLite database file. A single
// connection serializes all access; the handle is owned by the caller and
// passed explicitly, never global. The store is not usable until Provision
// has completed.
type DB struct {
	sql   *sql.DB
	log   *zap.Logger
	ready atomic.Bool
}

// Open opens (creating if absent) the database file at path. Foreign key
// enforcement is switched on so referential integrity holds declaratively.
func Open(ctx context.Context, path string, logger *zap.Logger) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection, matching the single-handle model of the desktop app.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database opened", zap.String("path", path))
	return &DB{sql: sqlDB, log: logger}, nil
}

// NewFromSQL wraps an existing database handle. The store is considered
// provisioned; intended for tests and for embedding into hosts that manage
// their own connection.
func NewFromSQL(sqlDB *sql.DB, logger *zap.Logger) *DB {
	d := &DB{sql: sqlDB, log: logger}
	d.ready.Store(true)
	return d
}

// Ready reports whether provisioning has completed and the store accepts
// queries.
func (d *DB) Ready() bool {
	return d.ready.Load()
}

// Close closes the database connection. The store rejects all operations
// afterwards.
func (d *DB) Close() error {
	d.ready.Store(false)
	return d.sql.Close()
}

// SQL returns the underlying database handle.
func (d *DB) SQL() *sql.DB {
	return d.sql
}

// classify wraps engine errors into the shared taxonomy while preserving the
// engine's message verbatim.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %v", apperrors.ErrConstraint, err)
	}
	return err
}
