package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
	"github.com/krishiquest/KrishiQuest_Go/internal/metrics"
)

// GrowthCompleter performs the watered to grown step when a timer fires
type GrowthCompleter interface {
	CompleteGrowth(ctx context.Context, fieldID, tileID string) (bool, error)
}

// GrowthWorker owns the one-shot growth timers, one per tile
type GrowthWorker struct {
	mu        sync.RWMutex
	completer GrowthCompleter
	timers    *timerSet
}

// NewGrowthWorker creates a new GrowthWorker. Timers that fire before Start is called are dropped.
func NewGrowthWorker() *GrowthWorker {
	return &GrowthWorker{timers: newTimerSet()}
}

// Start binds the worker to the service that completes growth
func (w *GrowthWorker) Start(completer GrowthCompleter) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.completer = completer
}

// Schedule arms the growth timer for a tile, replacing any earlier one
func (w *GrowthWorker) Schedule(fieldID, tileID string, delay time.Duration) {
	log := logger.FromContext(context.Background())
	if !w.timers.schedule(tileID, fieldID, delay, func() { w.grow(fieldID, tileID) }) {
		log.Warn(LogMsgGrowthScheduleRejected, "fieldID", fieldID, "tileID", tileID)
		return
	}
	log.Debug(LogMsgSchedulingGrowth, "fieldID", fieldID, "tileID", tileID, "delay", delay)
	w.reportPending()
}

// Cancel drops the pending timer for a tile
func (w *GrowthWorker) Cancel(tileID string) {
	if w.timers.stop(tileID) {
		logger.FromContext(context.Background()).Debug(LogMsgGrowthCancelled, "tileID", tileID)
		w.reportPending()
	}
}

// CancelField drops every pending timer of a field
func (w *GrowthWorker) CancelField(fieldID string) {
	if n := w.timers.stopGroup(fieldID); n > 0 {
		logger.FromContext(context.Background()).Debug(LogMsgGrowthCancelled, "fieldID", fieldID, "count", n)
		w.reportPending()
	}
}

// Pending returns the number of timers waiting to fire
func (w *GrowthWorker) Pending() int {
	return w.timers.len()
}

func (w *GrowthWorker) grow(fieldID, tileID string) {
	defer w.reportPending()

	ctx := context.Background()
	log := logger.FromContext(ctx)

	w.mu.RLock()
	completer := w.completer
	w.mu.RUnlock()
	if completer == nil {
		log.Warn(LogMsgGrowthWorkerNotStarted, "tileID", tileID)
		return
	}

	grown, err := completer.CompleteGrowth(ctx, fieldID, tileID)
	switch {
	case errors.Is(err, domain.ErrFieldNotFound), errors.Is(err, domain.ErrTileNotFound):
		log.Debug(LogMsgGrowthTargetGone, "fieldID", fieldID, "tileID", tileID)
	case err != nil:
		log.Error(LogMsgFailedToCompleteGrowth, "fieldID", fieldID, "tileID", tileID, "error", err)
	case !grown:
		log.Debug(LogMsgGrowthTargetGone, "fieldID", fieldID, "tileID", tileID)
	}
}

func (w *GrowthWorker) reportPending() {
	metrics.GrowthTimersPending.Set(float64(w.timers.len()))
}

// Shutdown cancels all pending timers and waits for running callbacks
func (w *GrowthWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDownGrowthWorker)

	cancelled, done := w.timers.close()
	if cancelled > 0 {
		log.Info(LogMsgCancelledPendingGrowth, "count", cancelled)
	}
	w.reportPending()

	select {
	case <-done:
		log.Info(LogMsgGrowthWorkerShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgGrowthWorkerShutdownTimeout)
		return ctx.Err()
	}
}
