// Package event carries farm, task and weather notifications between services.
package event

import (
	"time"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
)

// Type names an event kind
type Type string

// Metadata holds optional attributes that are not part of the payload schema
type Metadata map[string]interface{}

// Event is one notification on the bus
type Event struct {
	Version  string      `json:"version"`
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

const (
	TileChanged    Type = domain.EventTypeTileChanged
	TileGrown      Type = domain.EventTypeTileGrown
	FieldScanned   Type = domain.EventTypeFieldScanned
	TaskCompleted  Type = domain.EventTypeTaskCompleted
	WeatherChanged Type = domain.EventTypeWeatherChanged
)

func newEvent(t Type, payload interface{}) Event {
	return Event{Version: EventSchemaVersion, Type: t, Payload: payload}
}

func now() int64 { return time.Now().Unix() }

// NewTileChangedEvent reports a tool moving a tile from one state to the next
func NewTileChangedEvent(playerID, fieldID, tileID string, from, to domain.TileType, tool domain.Tool) Event {
	return newEvent(TileChanged, domain.TileChangedPayload{
		PlayerID: playerID, FieldID: fieldID, TileID: tileID,
		From: from, To: to, Tool: tool,
		Timestamp: now(),
	})
}

// NewTileGrownEvent reports the delayed watered to grown step, which has no tool
func NewTileGrownEvent(playerID, fieldID, tileID string) Event {
	return newEvent(TileGrown, domain.TileChangedPayload{
		PlayerID: playerID, FieldID: fieldID, TileID: tileID,
		From: domain.TileWatered, To: domain.TileGrown,
		Timestamp: now(),
	})
}

// NewFieldScannedEvent reports a new or replaced field
func NewFieldScannedEvent(playerID, fieldID string, tileCount int) Event {
	return newEvent(FieldScanned, domain.FieldScannedPayload{
		PlayerID: playerID, FieldID: fieldID, TileCount: tileCount,
		Timestamp: now(),
	})
}

// NewTaskCompletedEvent carries the player notification for a completed task.
// The task type travels in metadata for metrics labelling.
func NewTaskCompletedEvent(task domain.Task, totalPoints int) Event {
	evt := newEvent(TaskCompleted, domain.TaskCompletedPayload{
		PlayerID:    task.PlayerID,
		TaskID:      task.ID,
		Title:       task.Title,
		Points:      task.Points,
		TotalPoints: totalPoints,
		Message:     domain.TaskCompletedMessage(task.Title),
		Timestamp:   now(),
	})
	evt.Metadata = Metadata{MetadataTaskType: string(task.Type)}
	return evt
}

// NewWeatherChangedEvent reports a weather cycle tick
func NewWeatherChangedEvent(effect domain.WeatherEffect) Event {
	return newEvent(WeatherChanged, domain.WeatherChangedPayload{Effect: effect, Timestamp: now()})
}
