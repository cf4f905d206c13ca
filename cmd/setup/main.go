// Command setup creates the configured postgres database when it is missing
// and applies the embedded migrations. It reads the same DB_* environment as
// the server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/krishiquest/KrishiQuest_Go/internal/config"
	"github.com/krishiquest/KrishiQuest_Go/internal/database"
	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
)

// maintenanceDB exists on every postgres server
const maintenanceDB = "postgres"

const setupTimeout = 2 * time.Minute

func main() {
	if err := run(); err != nil {
		slog.Error("Setup failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadDatabase()
	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, ServiceName: "krishiquest-setup"}, os.Stdout)

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	created, err := ensureDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	slog.Info("Database ready", "name", cfg.DBName, "created", created)

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.DefaultMinConnections, database.DefaultMaxIdleTime, database.DefaultMaxLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	return database.Migrate(ctx, pool)
}

// ensureDatabase creates cfg.DBName through the maintenance database and
// reports whether it had to
func ensureDatabase(ctx context.Context, cfg *config.Config) (bool, error) {
	conn, err := pgx.Connect(ctx, cfg.DBConnStringFor(maintenanceDB))
	if err != nil {
		return false, fmt.Errorf("connect to %s database: %w", maintenanceDB, err)
	}
	defer conn.Close(ctx)

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists); err != nil {
		return false, fmt.Errorf("look up database %s: %w", cfg.DBName, err)
	}
	if exists {
		return false, nil
	}

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return false, fmt.Errorf("create database %s: %w", cfg.DBName, err)
	}
	return true, nil
}
