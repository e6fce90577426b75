// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Toolshelf HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Install the OpenTelemetry tracer provider (off unless TRACING_EXPORTER is set).
//  4. Connect to PostgreSQL (pgxpool).
//  5. Connect to Redis when sessions are stored there.
//  6. Run database migrations (idempotent).
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/toolshelf/internal/api"
	"github.com/taibuivan/toolshelf/internal/core/tag"
	"github.com/taibuivan/toolshelf/internal/core/tool"
	"github.com/taibuivan/toolshelf/internal/core/tooltag"
	"github.com/taibuivan/toolshelf/internal/platform/config"
	"github.com/taibuivan/toolshelf/internal/platform/constants"
	"github.com/taibuivan/toolshelf/internal/platform/metrics"
	"github.com/taibuivan/toolshelf/internal/platform/migration"
	pgstore "github.com/taibuivan/toolshelf/internal/platform/postgres"
	redisstore "github.com/taibuivan/toolshelf/internal/platform/redis"
	"github.com/taibuivan/toolshelf/internal/platform/sec"
	"github.com/taibuivan/toolshelf/internal/platform/tracing"
	"github.com/taibuivan/toolshelf/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("[Toolshelf] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("session_store", cfg.SessionStore),
		slog.String("tracing_exporter", cfg.TracingExporter),
	)

	// Root context, cancelled on shutdown. Background sweepers stop with it.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Startup gets a 30s deadline so misconfiguration is caught quickly.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. Tracing ────────────────────────────────────────────────────────
	shutdownTracing, err := tracing.Setup(startupCtx, tracing.Options{
		ServiceName: constants.AppName,
		Environment: cfg.Environment,
		Exporter:    cfg.TracingExporter,
		SampleRatio: cfg.TracingSampleRatio,
	})
	must(log, err, "initialize tracing")
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if terr := shutdownTracing(flushCtx); terr != nil {
			log.Error("tracing shutdown error", slog.Any("error", terr))
		}
	}()

	// ── 4. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 5. Redis (optional) ───────────────────────────────────────────────
	var rdb *goredis.Client
	if cfg.UsesRedis() {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()
	}

	// ── 6. Migrations ─────────────────────────────────────────────────────
	if cfg.RunMigrations {
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
	}

	// ── 7. Auth Service ───────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.JWTSecretKey, constants.AuthIssuer, auth.AccessTokenTTL)
	must(log, err, "initialize jwt service")

	recorder := metrics.New()

	var sessionRepository auth.SessionRepository = auth.NewSessionRepository(pool)
	if cfg.SessionStore == config.SessionStoreRedis {
		sessionRepository = auth.NewRedisSessionRepository(rdb)
	}

	authService := auth.NewService(auth.NewUserRepository(pool), sessionRepository, tokenService, recorder)

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	healthDependencies := api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
	}
	if rdb != nil {
		healthDependencies.CheckCache = func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}
	}
	liveness, readiness := api.NewHealthHandlers(healthDependencies, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	toolService := tool.NewService(tool.NewPostgresRepository(pool), log)
	tagService := tag.NewService(tag.NewPostgresRepository(pool), log)
	toolTagService := tooltag.NewService(tooltag.NewPostgresRepository(pool), toolService, tagService, log)

	// ── 10. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, recorder, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService, cfg.IsProduction()),
		Gate:      auth.Gate(authService),
		Tools:     tool.NewHandler(toolService),
		Tags:      tag.NewHandler(tagService),
		ToolTags:  tooltag.NewHandler(toolTagService),
	})

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		rootCancel()
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// newLogger builds the JSON stdout logger tagged with the application name.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
