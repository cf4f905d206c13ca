package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krishiquest/KrishiQuest_Go/internal/config"
	"github.com/krishiquest/KrishiQuest_Go/internal/database"
	"github.com/krishiquest/KrishiQuest_Go/internal/database/memory"
	"github.com/krishiquest/KrishiQuest_Go/internal/database/postgres"
	"github.com/krishiquest/KrishiQuest_Go/internal/repository"
)

// Repositories holds the repository implementations used by the services.
// DB is nil for the in-memory backend.
type Repositories struct {
	Fields repository.FieldRepository
	Tasks  repository.TaskRepository
	DB     *pgxpool.Pool
}

// InitializeRepositories builds the store selected by STORAGE_BACKEND.
// The postgres backend connects, migrates and returns the open pool.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.StorageBackend {
	case config.StorageMemory, "":
		store := memory.NewStore()
		slog.Info(LogMsgUsingMemoryStore)
		return &Repositories{Fields: store, Tasks: store}, nil

	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
		}
		slog.Info(LogMsgUsingPostgresStore, "host", cfg.DBHost, "db", cfg.DBName)
		return &Repositories{
			Fields: postgres.NewFieldRepository(pool),
			Tasks:  postgres.NewTaskRepository(pool),
			DB:     pool,
		}, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreBackend, cfg.StorageBackend)
	}
}
