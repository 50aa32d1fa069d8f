// Package db opens the PostgreSQL and Redis connections used by the binaries.
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wealth-planner/backend/config"
	"github.com/wealth-planner/backend/internal/integration/persistence/model"
)

// Database owns the gorm handle of the ledger database.
type Database struct {
	gorm *gorm.DB
}

// Connect opens the pool described by cfg and waits until the server answers
// a ping. Failed pings are retried cfg.ConnectAttempts times with exponential
// backoff, which covers a database container that starts after the app.
func Connect(ctx context.Context, cfg *config.DatabaseConfig) (*Database, error) {
	// TranslateError maps unique violations to gorm.ErrDuplicatedKey.
	gdb, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pool, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	attempts := max(cfg.ConnectAttempts, 1)
	wait := cfg.ConnectBackoff
	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = pool.PingContext(pingCtx)
		cancel()
		if err == nil {
			break
		}
		if attempt == attempts {
			_ = pool.Close()
			return nil, fmt.Errorf("database unreachable after %d attempts: %w", attempts, err)
		}

		slog.Warn("Database not ready, retrying", "attempt", attempt, "wait", wait, "error", err)
		select {
		case <-ctx.Done():
			_ = pool.Close()
			return nil, errors.Join(ctx.Err(), err)
		case <-time.After(wait):
		}
		wait *= 2
	}

	slog.Info("Database connection established",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)
	return &Database{gorm: gdb}, nil
}

// DB returns the gorm handle.
func (d *Database) DB() *gorm.DB {
	return d.gorm
}

// Migrate creates or alters the tables of every persisted model.
func (d *Database) Migrate() error {
	if err := d.gorm.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (d *Database) Close() error {
	pool, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return pool.Close()
}

// PostgresHealthCheck returns a health checker that pings the pool behind gdb.
func PostgresHealthCheck(gdb *gorm.DB) func() bool {
	return func() bool {
		pool, err := gdb.DB()
		if err != nil {
			return false
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := pool.PingContext(ctx); err != nil {
			slog.Error("Database health check failed", "error", err)
			return false
		}
		return true
	}
}
