package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
)

// Handler reacts to one published event
type Handler func(ctx context.Context, event Event) error

// Bus delivers events to the handlers subscribed to their type
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-process Bus. Handlers run synchronously on the
// publisher's goroutine, in subscription order.
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewMemoryBus creates an empty bus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Type][]Handler)}
}

// Publish runs every handler for the event's type. A failing handler does not
// stop the rest; their errors are joined into the result.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	subs := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, h := range subs {
		if err := h(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf(ErrMsgHandlersFailedFormat, len(errs), event.Type, errors.Join(errs...))
}

// Subscribe adds handler for eventType
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	// published slices are never mutated; Publish ranges over them unlocked
	subs := make([]Handler, len(b.handlers[eventType]), len(b.handlers[eventType])+1)
	copy(subs, b.handlers[eventType])
	b.handlers[eventType] = append(subs, handler)
}

// PublishBestEffort publishes evt and logs a failure instead of returning it.
// A nil bus is ignored.
func PublishBestEffort(ctx context.Context, bus Bus, evt Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
