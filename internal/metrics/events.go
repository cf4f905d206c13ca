package metrics

import (
	"context"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/event"
	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all farm events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.TileChanged,
		event.TileGrown,
		event.FieldScanned,
		event.TaskCompleted,
		event.WeatherChanged,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case domain.TileChangedPayload:
		TileTransitions.WithLabelValues(string(p.From), string(p.To)).Inc()

	case domain.FieldScannedPayload:
		FieldsScanned.Inc()

	case domain.TaskCompletedPayload:
		taskType, _ := evt.Metadata[event.MetadataTaskType].(string)
		TasksCompleted.WithLabelValues(taskType).Inc()
		PointsAwarded.Add(float64(p.Points))

	case domain.WeatherChangedPayload:
		WeatherChanges.WithLabelValues(string(p.Effect)).Inc()

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
