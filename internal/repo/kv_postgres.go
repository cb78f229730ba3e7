package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/promptlib/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgKV is the Postgres implementation of KVStore, backed by the kv_store
// table created by migrations/postgres. Values are stored as jsonb.
type pgKV struct {
	db db
}

// NewPostgresKV constructs a KVStore backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgresKV(db db) KVStore {
	return &pgKV{db: db}
}

// Get retrieves the value for key.
func (r *pgKV) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM kv_store WHERE key = @key`

	var value []byte
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repo.pgKV.Get: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.pgKV.Get: %w", err)
	}
	return value, nil
}

// Put upserts the value for key and bumps updated_at.
func (r *pgKV) Put(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_store (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE
		SET value      = EXCLUDED.value,
		    updated_at = now()`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "value": value})
	if err != nil {
		return fmt.Errorf("repo.pgKV.Put: %w", err)
	}
	return nil
}

// Delete removes key. Zero rows affected is not an error.
func (r *pgKV) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM kv_store WHERE key = @key`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": key}); err != nil {
		return fmt.Errorf("repo.pgKV.Delete: %w", err)
	}
	return nil
}
