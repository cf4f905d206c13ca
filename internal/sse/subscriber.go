package sse

import (
	"context"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/event"
	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
	"github.com/krishiquest/KrishiQuest_Go/internal/metrics"
)

// Subscriber forwards bus events to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a subscriber for hub fed by bus
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers the forwarders for every streamed event type
func (s *Subscriber) Subscribe(ctx context.Context) {
	tile := forward(s.hub, func(p domain.TileChangedPayload) string { return p.PlayerID })
	s.bus.Subscribe(event.TileChanged, tile)
	s.bus.Subscribe(event.TileGrown, tile)
	s.bus.Subscribe(event.TaskCompleted, forward(s.hub, func(p domain.TaskCompletedPayload) string { return p.PlayerID }))
	// weather is not player-scoped
	s.bus.Subscribe(event.WeatherChanged, forward(s.hub, func(domain.WeatherChangedPayload) string { return "" }))

	logger.FromContext(ctx).Info(LogMsgSubscriberReady,
		"types", []string{
			domain.EventTypeTileChanged,
			domain.EventTypeTileGrown,
			domain.EventTypeTaskCompleted,
			domain.EventTypeWeatherChanged,
		})
}

// forward decodes the payload as P and broadcasts it scoped to owner(payload).
// Undecodable payloads are counted and dropped without failing the publisher.
func forward[P any](hub *Hub, owner func(P) string) event.Handler {
	return func(ctx context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[P](evt.Payload)
		if err != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			logger.FromContext(ctx).Warn(LogMsgBadPayload, "type", evt.Type, "error", err)
			return nil
		}
		hub.Broadcast(string(evt.Type), owner(payload), payload)
		return nil
	}
}
