// Package local persists collections on the device through a sqlite-backed
// key-value table. Each entity family is one JSON blob under a fixed key;
// every mutation rewrites the whole blob. O(n) per write, which is fine at
// personal-finance data volumes.
package local

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Fixed keys for the persisted collections. The JSON layout under each key
// is the wire contract with earlier app versions.
const (
	KeyExpenses    = "expenses"
	KeyIncomes     = "incomes"
	KeyUserDetails = "userDetails"
)

// Store is the device-local key-value store shared by all local sources.
// It is constructed once at application start and handed to every consumer.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the key-value store at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// WAL keeps readers from blocking the single writer
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS collections (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the blob stored under key, or nil when the key is absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM collections WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set writes the blob under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO collections (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now())
	return err
}

// Delete removes the blob under key. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM collections WHERE key = ?", key)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
