// Command recurring-worker materializes due recurring entry installments,
// either on a daily schedule or once for a given date.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/wealth-planner/backend/config"
	"github.com/wealth-planner/backend/internal/infra/db"
	"github.com/wealth-planner/backend/internal/infra/dependency"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&runCmd{}, "")
	commander.Register(&processCmd{}, "")

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}

// bootstrap connects to the stores and wires the application. The returned
// cleanup closes everything that was opened.
func bootstrap(ctx context.Context) (*dependency.Injector, func(), error) {
	cfg := config.Load()

	database, err := db.Connect(ctx, &cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(); err != nil {
			_ = database.Close()
			return nil, nil, err
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = db.NewRedisClient(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable, using in-process locks", "error", err)
			redisClient = nil
		}
	}

	injector, err := dependency.NewInjector(cfg, database.DB(), redisClient)
	if err != nil {
		if redisClient != nil {
			_ = redisClient.Close()
		}
		_ = database.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := injector.Close(); err != nil {
			slog.Error("Failed to release dependencies", "error", err)
		}
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}
	return injector, cleanup, nil
}
