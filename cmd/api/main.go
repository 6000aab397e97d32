// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api serves the Linkdeck board and its management API.
//
// # Startup
//
// Configuration comes from the environment. PostgreSQL is required and is
// migrated before the listener opens. Redis is used only when REDIS_URL is
// set. SIGINT or SIGTERM drains in-flight requests and exits.
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

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/linkdeck/internal/api"
	"github.com/taibuivan/linkdeck/internal/auth"
	"github.com/taibuivan/linkdeck/internal/core/group"
	"github.com/taibuivan/linkdeck/internal/core/listing"
	"github.com/taibuivan/linkdeck/internal/core/ordering"
	"github.com/taibuivan/linkdeck/internal/core/site"
	"github.com/taibuivan/linkdeck/internal/core/transfer"
	"github.com/taibuivan/linkdeck/internal/platform/config"
	"github.com/taibuivan/linkdeck/internal/platform/constants"
	"github.com/taibuivan/linkdeck/internal/platform/middleware"
	"github.com/taibuivan/linkdeck/internal/platform/migration"
	pgstore "github.com/taibuivan/linkdeck/internal/platform/postgres"
	redisstore "github.com/taibuivan/linkdeck/internal/platform/redis"
	"github.com/taibuivan/linkdeck/internal/platform/sec"
)

// startupTimeout bounds connecting to PostgreSQL and Redis.
const startupTimeout = 30 * time.Second

func main() {
	log := newLogger(slog.LevelInfo)

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("auth_enabled", cfg.AuthEnabled),
		slog.Bool("redis_enabled", cfg.RedisURL != ""),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startupCtx, cancelStartup := context.WithTimeout(ctx, startupTimeout)
	defer cancelStartup()

	// ── Storage ───────────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	cache, closeCache := connectCache(startupCtx, cfg, log)
	defer closeCache()

	migrator := migration.NewRunner(cfg.DatabaseURL, cfg.MigrationPath, log)
	_, err = migrator.Up()
	must(log, err, "run migrations")

	// ── Wiring ────────────────────────────────────────────────────────────
	tokens := sec.NewTokenService(cfg.Auth())
	gate := middleware.NewGate(cfg.Auth(), tokens)

	listingService := listing.NewService(listing.NewPostgresStore(pool), cache.listing, listing.DefaultCacheTTL, log)
	server := api.NewServer(ctx, cfg, log, gate, listingService.Invalidate,
		buildHandlers(pool, migrator, tokens, listingService, cache, log))

	// ── Serve ─────────────────────────────────────────────────────────────
	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown_signal_received")
	case err := <-serverErr:
		log.Error("server_failed", slog.Any("error", err))
	}

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("server_stopped")
}

// caches holds the Redis-backed collaborators. Both fields stay nil
// interfaces when Redis is off, which disables the throttle and the cache.
type caches struct {
	counter auth.Counter
	listing listing.Cache
	ping    func(ctx context.Context) error
}

func connectCache(ctx context.Context, cfg *config.Config, log *slog.Logger) (caches, func()) {
	if cfg.RedisURL == "" {
		return caches{}, func() {}
	}

	client, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
	must(log, err, "connect to redis")

	store := redisstore.NewStore(client)
	closeClient := func() {
		if err := client.Close(); err != nil {
			log.Error("redis_close_failed", slog.Any("error", err))
		}
	}

	return caches{
		counter: store,
		listing: store,
		ping:    func(ctx context.Context) error { return redisstore.Ping(ctx, client) },
	}, closeClient
}

func buildHandlers(pool *pgxpool.Pool, migrator *migration.Runner, tokens *sec.TokenService, listingService *listing.Service, cache caches, log *slog.Logger) api.Handlers {
	groups := group.NewPostgresRepository(pool)
	sites := site.NewPostgresRepository(pool)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		CheckCache:    cache.ping,
	}, log)

	return api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(auth.NewService(tokens, auth.NewThrottle(cache.counter), log)),
		Init:      auth.NewInitHandler(migrator, log),
		Listing:   listing.NewHandler(listingService),
		Groups:    group.NewHandler(group.NewService(groups, log)),
		Sites:     site.NewHandler(site.NewService(sites, log)),
		Ordering:  ordering.NewHandler(ordering.NewService(pgstore.NewBatcher(pool), log)),
		Transfer:  transfer.NewHandler(transfer.NewService(groups, sites, transfer.NewPostgresImporter(pool), log)),
	}
}

func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must exits on a startup error. After startup every error is returned.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failed", slog.String("step", step), slog.Any("error", err))
		os.Exit(1)
	}
}
