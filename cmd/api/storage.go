package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/pkordes/promptlib/backend/internal/config"
	"github.com/pkordes/promptlib/backend/internal/repo"
	"github.com/pkordes/promptlib/backend/migrations"
)

// openKV connects the key/value backend selected by cfg.StorageDriver and
// applies its migrations. The returned func releases the backend's
// connections and must be called on shutdown.
func openKV(ctx context.Context, cfg config.Config, log *slog.Logger) (repo.KVStore, func(), error) {
	noop := func() {}

	switch cfg.StorageDriver {
	case config.DriverMemory:
		log.Warn("using in-memory storage; the catalog is lost on restart")
		return repo.NewMemoryKV(), noop, nil

	case config.DriverFile:
		kv, err := repo.NewFileKV(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using file storage", "dir", cfg.DataDir)
		return kv, noop, nil

	case config.DriverSQLite:
		db, err := repo.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := migrations.Up(ctx, goose.DialectSQLite3, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info("using sqlite storage", "path", cfg.SQLitePath)
		return repo.NewSQLiteKV(db), func() { _ = db.Close() }, nil

	case config.DriverPostgres:
		// pgxpool manages a pool of Postgres connections.
		// New() does not open connections immediately; the first query does.
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("create database pool: %w", err)
		}
		// Verify the DB is reachable before accepting traffic.
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		// goose drives database/sql, so migrations run over a *sql.DB view
		// of the same pool.
		sqlDB := stdlib.OpenDBFromPool(pool)
		if err := migrations.Up(ctx, goose.DialectPostgres, sqlDB); err != nil {
			_ = sqlDB.Close()
			pool.Close()
			return nil, nil, err
		}
		log.Info("database connection established")
		return repo.NewPostgresKV(pool), func() { _ = sqlDB.Close(); pool.Close() }, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		log.Info("using redis storage", "addr", cfg.RedisAddr, "prefix", cfg.RedisPrefix)
		return repo.NewRedisKV(client, cfg.RedisPrefix), func() { _ = client.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
