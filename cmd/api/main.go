// Package main is the entry point for the prompt library API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/promptlib/backend/api"
	"github.com/pkordes/promptlib/backend/internal/config"
	"github.com/pkordes/promptlib/backend/internal/handler"
	"github.com/pkordes/promptlib/backend/internal/logging"
	"github.com/pkordes/promptlib/backend/internal/middleware"
	"github.com/pkordes/promptlib/backend/internal/repo"
	"github.com/pkordes/promptlib/backend/internal/seed"
	"github.com/pkordes/promptlib/backend/internal/service"
)

func main() {
	// --- Config -----------------------------------------------------------
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("failed to read .env", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logger, logOut := logging.New(logging.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	defer logOut.Close()
	slog.SetDefault(logger)

	ctx := context.Background()

	// --- Storage ----------------------------------------------------------
	kv, closeKV, err := openKV(ctx, cfg, logger)
	if err != nil {
		slog.Error("failed to open storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer closeKV()

	// --- Services ---------------------------------------------------------
	ds, err := loadSeed(cfg.SeedFile)
	if err != nil {
		slog.Error("failed to load seed data", "error", err)
		os.Exit(1)
	}

	prompts, err := service.NewPromptService(ctx, repo.NewSnapshotRepo(kv), ds,
		service.WithLogger(logger),
		service.WithLatency(cfg.SimulatedLatency),
	)
	if err != nil {
		slog.Error("failed to load prompt catalog", "error", err)
		os.Exit(1)
	}
	auth, err := service.NewAuthService(ds.Users, repo.NewSessionRepo(kv), cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		slog.Error("failed to configure sessions", "error", err)
		os.Exit(1)
	}
	export := service.NewExportService(prompts)

	// --- Router -----------------------------------------------------------
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// Metrics and SlogLogger record one sample and one log line per request.
	// The authenticator resolves an optional bearer token before logging so
	// the log line carries the user id.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewMetrics())
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins, cfg.CORSMaxAge))
	r.Use(middleware.NewAuthenticator(auth, logger))
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/openapi.yaml", api.ServeOpenAPI)
	r.Get("/docs", api.ServeDocs)

	// NewHTTPHandler registers the generated routes on r.
	apiServer := handler.NewServer(prompts, auth, export, logger).
		WithStorageCheck(func(ctx context.Context) error { return repo.Ping(ctx, kv) })
	handler.NewHTTPHandler(apiServer, r)

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10*time.Second + cfg.SimulatedLatency,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// loadSeed returns the built-in dataset, or the one in path when set.
func loadSeed(path string) (seed.Dataset, error) {
	now := time.Now().UTC()
	if path == "" {
		return seed.Default(now)
	}
	return seed.LoadFile(path, now)
}
