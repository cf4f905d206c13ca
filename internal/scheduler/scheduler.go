// Package scheduler enqueues recurring jobs onto a worker pool.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/krishiquest/KrishiQuest_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler submits each registered job once per interval
type Scheduler struct {
	pool   Enqueuer
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a scheduler feeding pool
func New(pool Enqueuer) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{pool: pool, ctx: ctx, cancel: cancel}
}

// Schedule submits job every interval until Stop. A tick is skipped, not
// queued up, when the pool has no room.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	log := slog.With("job", name)
	log.Info(LogMsgJobScheduled, "interval", interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				if !s.pool.TryEnqueue(job) {
					log.Warn(LogMsgTickSkipped)
				}
			}
		}
	}()
}

// Stop ends every schedule and waits for the tick loops to exit
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

const (
	LogMsgJobScheduled = "Recurring job scheduled"
	LogMsgTickSkipped  = "Scheduler tick skipped, worker queue full"
)
