// Package database opens the postgres pool and applies the embedded schema.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/krishiquest/KrishiQuest_Go/migrations"
)

// Pool is the part of a connection pool needed for readiness and shutdown
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// NewPool connects to connString and verifies the connection with a ping
func NewPool(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}
	cfg.MaxConns = int32(min(max(maxConns, DefaultMinConnections), math.MaxInt32))
	cfg.MinConns = DefaultMinConnections
	cfg.MaxConnIdleTime = maxIdle
	cfg.MaxConnLifetime = maxLife

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Info(LogMsgSuccessfullyConnectedToDatabase, "max_conns", cfg.MaxConns)
	return pool, nil
}

// Migrate brings the schema up to the latest embedded goose migration. It is a
// no-op when the schema is current.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	provider, db, err := newMigrator(pool)
	if err != nil {
		return err
	}
	defer db.Close()

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	slog.Info(LogMsgMigrationsApplied, "applied", len(results), "version", version)
	return nil
}

func newMigrator(pool *pgxpool.Pool) (*goose.Provider, *sql.DB, error) {
	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToInitMigrator, err)
	}
	return provider, db, nil
}
