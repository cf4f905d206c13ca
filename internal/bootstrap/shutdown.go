package bootstrap

import (
	"context"
	"log/slog"

	"github.com/krishiquest/KrishiQuest_Go/internal/database"
	"github.com/krishiquest/KrishiQuest_Go/internal/scheduler"
	"github.com/krishiquest/KrishiQuest_Go/internal/server"
	"github.com/krishiquest/KrishiQuest_Go/internal/sse"
	"github.com/krishiquest/KrishiQuest_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil entries are skipped.
type ShutdownComponents struct {
	Server       *server.Server
	GrowthWorker *worker.GrowthWorker
	Scheduler    *scheduler.Scheduler
	WorkerPool   *worker.Pool
	SSEHub       *sse.Hub
	DB           database.Pool
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Growth worker (cancel pending timers, wait for running callbacks)
// 3. Scheduler and worker pool (no more weather ticks)
// 4. SSE hub (close client streams)
// 5. Database pool
//
// Errors are logged and never stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.GrowthWorker != nil {
		if err := c.GrowthWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgGrowthWorkerFailed, "error", err)
		}
	}

	if c.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		c.Scheduler.Stop()
	}

	if c.WorkerPool != nil {
		slog.Info(LogMsgStoppingWorkerPool)
		if err := c.WorkerPool.Stop(ctx); err != nil {
			slog.Error(LogMsgWorkerPoolFailed, "error", err)
		}
	}

	if c.SSEHub != nil {
		slog.Info(LogMsgStoppingSSEHub)
		c.SSEHub.Stop()
	}

	if c.DB != nil {
		slog.Info(LogMsgClosingDatabase)
		c.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
