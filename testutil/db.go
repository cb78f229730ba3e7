// Package testutil holds database helpers shared by the storage tests.
// Postgres helpers need TEST_DATABASE_URL and skip the calling test without
// it. SQLite helpers run everywhere: the database lives in memory.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	_ "github.com/mattn/go-sqlite3"    // registers "sqlite3" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/pkordes/promptlib/backend/migrations"
)

// DatabaseURLEnv names the variable that points the integration tests at a
// disposable Postgres database.
const DatabaseURLEnv = "TEST_DATABASE_URL"

// NewPool opens a *pgxpool.Pool on the test Postgres database and closes it
// when the test finishes. The postgres KV store runs on top of it.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB opens the test Postgres database through database/sql, which is
// what goose needs. It is closed when the test finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := openPostgres(requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// MustOpenSQLDB is NewSQLDB for TestMain, where no *testing.T exists.
// It panics on failure and the caller closes the returned *sql.DB.
func MustOpenSQLDB(dsn string) *sql.DB {
	db, err := openPostgres(dsn)
	if err != nil {
		panic("testutil.MustOpenSQLDB: " + err.Error())
	}
	return db
}

// NewSQLiteDB returns an in-memory SQLite database with the kv_store
// migrations applied. It is limited to one connection because every
// connection to ":memory:" sees its own empty database.
func NewSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("testutil.NewSQLiteDB: open: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	Migrate(t, goose.DialectSQLite3, db)
	return db
}

// Migrate applies every pending migration for dialect to db or fails the test.
func Migrate(t *testing.T, dialect goose.Dialect, db *sql.DB) {
	t.Helper()
	if err := migrations.Up(context.Background(), dialect, db); err != nil {
		t.Fatalf("testutil.Migrate(%s): %v", dialect, err)
	}
}

func openPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(DatabaseURLEnv)
	if dsn == "" {
		t.Skip(DatabaseURLEnv + " not set; skipping postgres test")
	}
	return dsn
}
