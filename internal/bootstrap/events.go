package bootstrap

import (
	"context"
	"log/slog"

	"github.com/krishiquest/KrishiQuest_Go/internal/event"
	"github.com/krishiquest/KrishiQuest_Go/internal/metrics"
	"github.com/krishiquest/KrishiQuest_Go/internal/sse"
)

// EventHandlerDependencies holds what the bus subscribers need
type EventHandlerDependencies struct {
	EventBus event.Bus
	SSEHub   *sse.Hub
}

// InitializeEventSystem creates the in-process event bus
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}

// RegisterEventHandlers subscribes the metrics collector and, when a hub is
// present, the SSE bridge to the bus.
func RegisterEventHandlers(ctx context.Context, deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.SSEHub != nil {
		sse.NewSubscriber(deps.SSEHub, deps.EventBus).Subscribe(ctx)
		slog.Info(LogMsgSSESubscriberRegistered)
	}
}
