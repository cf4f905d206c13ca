package farm

import "time"

// Field limits
const (
	// MaxFieldDimension caps the width and height of a scanned field
	MaxFieldDimension = 32
	MaxMoistureLevel  = 100
)

// Defaults used when the service is built without explicit options
const (
	DefaultGrowthDelay      = 3 * time.Second
	DefaultSessionCacheSize = 1024
	DefaultSessionTTL       = 2 * time.Hour
)

const lockKeyPrefix = "field:"

// Log messages
const (
	LogMsgFieldScanned       = "Field scanned"
	LogMsgToolSelected       = "Tool selected"
	LogMsgSelectionCleared   = "Tile selection cleared"
	LogMsgActionRejected     = "Tool does not apply to tile"
	LogMsgStaleTransition    = "Tile changed before transition could apply"
	LogMsgTileChanged        = "Tile changed"
	LogMsgTileGrown          = "Tile grown"
	LogMsgGrowthSkipped      = "Growth skipped, tile no longer watered"
	LogMsgTaskCouplingFailed = "Task coupling failed after tile change"
	LogMsgTaskSeedFailed     = "Failed to seed tasks for scanned field"
)
