package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver

	"github.com/pkordes/promptlib/backend/internal/domain"
)

// OpenSQLite opens (or creates) a local SQLite database file with the
// pragmas the KV store relies on. Schema is applied separately by
// migrations.Up with the sqlite dialect.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		path = "promptlib.db"
	}
	d, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("repo.OpenSQLite: %w", err)
	}
	if err := d.PingContext(ctx); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("repo.OpenSQLite: ping: %w", err)
	}
	// journal_mode may not be supported in some contexts (e.g., in-memory). Ignore errors.
	_, _ = d.ExecContext(ctx, `PRAGMA journal_mode=WAL`)
	if _, err := d.ExecContext(ctx, `PRAGMA busy_timeout=5000`); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("repo.OpenSQLite: busy_timeout: %w", err)
	}
	return d, nil
}

// sqliteKV is the SQLite implementation of KVStore, backed by the kv_store
// table created by migrations/sqlite.
type sqliteKV struct {
	db *sql.DB
}

// NewSQLiteKV constructs a KVStore backed by an open SQLite database.
func NewSQLiteKV(db *sql.DB) KVStore {
	return &sqliteKV{db: db}
}

func (r *sqliteKV) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM kv_store WHERE key = ?`

	var value []byte
	err := r.db.QueryRowContext(ctx, q, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("repo.sqliteKV.Get: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.sqliteKV.Get: %w", err)
	}
	return value, nil
}

func (r *sqliteKV) Put(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET value      = excluded.value,
		    updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("repo.sqliteKV.Put: %w", err)
	}
	return nil
}

func (r *sqliteKV) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM kv_store WHERE key = ?`

	if _, err := r.db.ExecContext(ctx, q, key); err != nil {
		return fmt.Errorf("repo.sqliteKV.Delete: %w", err)
	}
	return nil
}
