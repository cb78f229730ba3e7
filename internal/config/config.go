// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// CORSMaxAge is how long browsers may cache a preflight answer.
	// Defaults to 10m.
	CORSMaxAge time.Duration

	// StorageDriver selects the snapshot backend. Defaults to "file".
	StorageDriver string

	// DataDir is where the file driver keeps one JSON file per key.
	DataDir string

	// DatabaseURL is the Postgres connection string. Required for the postgres driver.
	DatabaseURL string

	// SQLitePath is the database file for the sqlite driver.
	SQLitePath string

	// RedisAddr is host:port of the Redis server. Required for the redis driver.
	RedisAddr string

	// RedisPrefix namespaces every key the redis driver writes.
	RedisPrefix string

	// JWTSecret signs session tokens. Required.
	JWTSecret string

	// SessionTTL is how long a session token stays valid. Defaults to 24h.
	SessionTTL time.Duration

	// SimulatedLatency delays every catalog operation. Defaults to 0.
	SimulatedLatency time.Duration

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// SeedFile, when set, replaces the built-in seed dataset.
	SeedFile string

	// LogFile, when set, sends logs to a rotating file instead of stdout.
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding variables already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config.LoadDotEnv: %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing every required variable that is not set and every
// variable that does not parse.
func Load() (Config, error) {
	var missing, invalid []string

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", DriverFile)),
		DataDir:       getEnv("DATA_DIR", "data"),
		SQLitePath:    getEnv("SQLITE_PATH", "promptlib.db"),
		RedisPrefix:   getEnv("REDIS_PREFIX", "promptlib:"),
		SeedFile:      os.Getenv("SEED_FILE"),
		LogFile:       os.Getenv("LOG_FILE"),
	}

	cfg.CORSMaxAge = getDuration("CORS_MAX_AGE", 10*time.Minute, &invalid)
	cfg.SessionTTL = getDuration("SESSION_TTL", 24*time.Hour, &invalid)
	cfg.SimulatedLatency = getDuration("SIMULATED_LATENCY", 0, &invalid)
	cfg.MaxBodyBytes = int64(getInt("MAX_BODY_BYTES", 1<<20, &invalid))
	cfg.LogMaxSizeMB = getInt("LOG_MAX_SIZE_MB", 100, &invalid)
	cfg.LogMaxBackups = getInt("LOG_MAX_BACKUPS", 3, &invalid)
	cfg.LogMaxAgeDays = getInt("LOG_MAX_AGE_DAYS", 28, &invalid)

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	switch cfg.StorageDriver {
	case DriverMemory, DriverFile, DriverSQLite:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	case DriverRedis:
		if cfg.RedisAddr == "" {
			missing = append(missing, "REDIS_ADDR")
		}
	default:
		invalid = append(invalid, "STORAGE_DRIVER")
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", ")))
	}
	if len(invalid) > 0 {
		errs = append(errs, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", ")))
	}
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration parses key as a time.Duration. Negative or malformed values
// are recorded in invalid and yield fallback.
func getDuration(key string, fallback time.Duration, invalid *[]string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		*invalid = append(*invalid, key)
		return fallback
	}
	return d
}

// getInt parses key as a positive integer. Anything else is recorded in
// invalid and yields fallback.
func getInt(key string, fallback int, invalid *[]string) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		*invalid = append(*invalid, key)
		return fallback
	}
	return n
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
