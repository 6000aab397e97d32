// Copyright (c) 2026 Linkdeck. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration wraps golang-migrate for the groups and sites schema.
//
// # Architecture
//
// The same [Runner] is used at startup and by the first-run init endpoint.
// Running it against an up-to-date database is a no-op.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Result describes one migration run.
type Result struct {
	FromVersion uint
	ToVersion   uint
	Changed     bool
}

// Runner applies pending UP migrations. Runs are serialized.
type Runner struct {
	mu          sync.Mutex
	databaseURL string
	sourceURL   string
	logger      *slog.Logger
}

/*
NewRunner prepares a runner for the given database and migrations directory.

Parameters:
  - dsn: A libpq-compatible DSN or postgres:// URL
  - migrationsPath: Filesystem path to the *.sql files
  - logger: *slog.Logger
*/
func NewRunner(dsn, migrationsPath string, logger *slog.Logger) *Runner {
	return &Runner{
		databaseURL: ToPgx5DSN(dsn),
		sourceURL:   "file://" + migrationsPath,
		logger:      logger,
	}
}

/*
Up applies every pending migration.

Returns:
  - Result: Versions before and after; Changed is false when nothing was pending
  - error: Initialization, dirty state or migration failure
*/
func (runner *Runner) Up() (Result, error) {
	runner.mu.Lock()
	defer runner.mu.Unlock()

	migrator, err := migrate.New(runner.sourceURL, runner.databaseURL)
	if err != nil {
		return Result{}, fmt.Errorf("migration: failed to initialize: %w", err)
	}
	defer func() {
		sourceError, dbError := migrator.Close()
		if sourceError != nil {
			runner.logger.Error("migration_source_close_failed", slog.Any("error", sourceError))
		}
		if dbError != nil {
			runner.logger.Error("migration_db_close_failed", slog.Any("error", dbError))
		}
	}()

	migrator.Log = &migrateLogger{logger: runner.logger}

	currentVersion, isDirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return Result{}, fmt.Errorf("migration: failed to get current version: %w", err)
	}

	if isDirty {
		return Result{}, fmt.Errorf("migration: database is in a dirty state at version %d (manual intervention required)", currentVersion)
	}

	result := Result{FromVersion: currentVersion, ToVersion: currentVersion}

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			runner.logger.Info("migration_already_up_to_date", slog.Uint64("version", uint64(currentVersion)))
			return result, nil
		}
		return Result{}, fmt.Errorf("migration: up failed: %w", err)
	}

	result.ToVersion, _, _ = migrator.Version()
	result.Changed = true

	runner.logger.Info("migration_successful",
		slog.Uint64("from_version", uint64(result.FromVersion)),
		slog.Uint64("to_version", uint64(result.ToVersion)),
	)

	return result, nil
}

// ToPgx5DSN rewrites postgres:// and postgresql:// URLs to the pgx5:// scheme
// golang-migrate expects. Other inputs are returned unchanged.
func ToPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger adapts golang-migrate's logger interface to slog.
type migrateLogger struct {
	logger  *slog.Logger
	verbose bool
}

// Printf implements migrate.Logger.
func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Verbose implements migrate.Logger.
func (l *migrateLogger) Verbose() bool {
	return l.verbose
}
