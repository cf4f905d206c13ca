package bootstrap

import "time"

// Session log files
const (
	LogDirPerm  = 0o755
	LogFilePerm = 0o644

	// SessionLogTimeLayout sorts lexically in creation order
	SessionLogTimeLayout = "2006-01-02_15-04-05"
	SessionLogPattern    = "session_%s.log"
	SessionLogSuffix     = ".log"

	// SessionLogsKept counts older sessions left next to the current one
	SessionLogsKept = 9
)

const (
	LogMsgLoggerReady         = "Logger ready"
	LogMsgStartingKrishiQuest = "Starting KrishiQuest"
	LogMsgEffectiveConfig     = "Effective configuration"
	ErrMsgCreateLogDir        = "create log directory"
	ErrMsgOpenSessionLog      = "open session log"
	LogMsgFailedDeleteOldLog  = "Failed to remove old session log"
)

// =============================================================================
// Storage
// =============================================================================

const (
	LogMsgUsingMemoryStore    = "Using in-memory game store"
	LogMsgUsingPostgresStore  = "Using PostgreSQL game store"
	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedMigrateDB     = "failed to migrate database"
	ErrMsgUnknownStoreBackend = "unknown storage backend"
)

// =============================================================================
// Catalogues
// =============================================================================

const (
	LogMsgCatalogueLoaded      = "Catalogue loaded"
	LogMsgCatalogueDefaultUsed = "Catalogue file not found, using built-in defaults"
	ErrMsgFailedLoadTasks      = "failed to load task catalogue"
	ErrMsgFailedLoadMarket     = "failed to load market catalogue"

	CatalogueTasks  = "tasks"
	CatalogueMarket = "market"
)

// =============================================================================
// Workers
// =============================================================================

const (
	// WeatherPoolWorkers runs the weather job; one is enough for a single recurring job
	WeatherPoolWorkers = 1

	// WeatherPoolQueueSize bounds pending weather ticks
	WeatherPoolQueueSize = 1

	// JobNameWeather is the scheduler name of the weather cycle
	JobNameWeather = "weather-cycle"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Event metrics subscribed"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	ErrMsgFailedCreateChatClient     = "failed to create chat client"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgGrowthWorkerFailed   = "Growth worker shutdown failed"
	LogMsgWorkerPoolFailed     = "Worker pool shutdown failed"
	LogMsgStoppingScheduler    = "Stopping scheduler"
	LogMsgStoppingWorkerPool   = "Stopping worker pool"
	LogMsgStoppingSSEHub       = "Stopping SSE hub"
	LogMsgClosingDatabase      = "Closing database pool"
)

// DefaultShutdownTimeout bounds the whole graceful shutdown
const DefaultShutdownTimeout = 10 * time.Second
