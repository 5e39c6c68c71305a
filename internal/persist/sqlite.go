package persist

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// schema contains the DDL for the slice table. Idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS slices (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// SQLiteStorage implements Storage using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStorage opens (or creates) a SQLite database at dbPath and runs
// the schema migration. Use ":memory:" for an in-memory database (useful in
// tests).
func NewSQLiteStorage(dbPath string, logger *slog.Logger) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// WAL keeps reads cheap while a write is in flight.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return &SQLiteStorage{
		db:     db,
		logger: logger.With("component", "persist"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Get returns the stored value for key, or (nil, nil) when absent.
func (s *SQLiteStorage) Get(ctx context.Context, key string) ([]byte, error) {
	s.logger.Debug("sql", "op", "select", "key", key)

	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM slices WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

// Put writes value under key, replacing any previous value.
func (s *SQLiteStorage) Put(ctx context.Context, key string, value []byte) error {
	s.logger.Debug("sql", "op", "upsert", "key", key, "bytes", len(value))

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO slices (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}
