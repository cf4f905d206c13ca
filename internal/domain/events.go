package domain

// Event type constants used for event bus subscriptions, SSE fan-out and metrics.
//
// Event types follow the pattern: <entity>.<action> (e.g., "task.completed")
const (
	// EventTypeTileChanged is published when a player's tool action advances a tile
	EventTypeTileChanged = "farm.tile_changed"

	// EventTypeTileGrown is published when a watered tile finishes growing
	EventTypeTileGrown = "farm.tile_grown"

	// EventTypeFieldScanned is published when a player scans a new field
	EventTypeFieldScanned = "farm.field_scanned"

	// EventTypeTaskCompleted is published when a task is marked complete
	EventTypeTaskCompleted = "task.completed"

	// EventTypeWeatherChanged is published on every weather cycle tick
	EventTypeWeatherChanged = "weather.changed"
)

// TileChangedPayload is the payload for tile changed and tile grown events
type TileChangedPayload struct {
	PlayerID  string   `json:"player_id"`
	FieldID   string   `json:"field_id"`
	TileID    string   `json:"tile_id"`
	From      TileType `json:"from"`
	To        TileType `json:"to"`
	Tool      Tool     `json:"tool,omitempty"`
	Timestamp int64    `json:"timestamp"`
}

// FieldScannedPayload is the payload for field scanned events
type FieldScannedPayload struct {
	PlayerID  string `json:"player_id"`
	FieldID   string `json:"field_id"`
	TileCount int    `json:"tile_count"`
	Timestamp int64  `json:"timestamp"`
}

// TaskCompletedPayload is the payload for task completed events
type TaskCompletedPayload struct {
	PlayerID    string `json:"player_id"`
	TaskID      string `json:"task_id"`
	Title       string `json:"title"`
	Points      int    `json:"points"`
	TotalPoints int    `json:"total_points"`
	Message     string `json:"message"`
	Timestamp   int64  `json:"timestamp"`
}

// WeatherChangedPayload is the payload for weather changed events
type WeatherChangedPayload struct {
	Effect    WeatherEffect `json:"effect"`
	Timestamp int64         `json:"timestamp"`
}
