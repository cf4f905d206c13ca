package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameAuthFailures         = "http_auth_failures_total"
	MetricNameRequestsThrottled    = "http_requests_throttled_total"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Farm metric names
const (
	MetricNameTileTransitions = "farm_tile_transitions_total"
	MetricNameRejectedActions = "farm_rejected_actions_total"
	MetricNameFieldsScanned   = "farm_fields_scanned_total"
	MetricNameGrowthPending   = "farm_growth_timers_pending"
	MetricNameTasksCompleted  = "tasks_completed_total"
	MetricNamePointsAwarded   = "task_points_awarded_total"
	MetricNameWeatherChanges  = "weather_changes_total"
	MetricNameChatRequests    = "chat_requests_total"
	MetricNameChatLatency     = "chat_request_duration_seconds"
	MetricNameSSEClients      = "sse_clients_connected"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextAuthFailures         = "Total number of requests rejected for a missing or wrong API key"
	HelpTextRequestsThrottled    = "Total number of requests rejected by the per-IP rate limit"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Farm metric help text
const (
	HelpTextTileTransitions = "Total number of tile stage transitions"
	HelpTextRejectedActions = "Total number of tile clicks whose tool did not match the tile stage"
	HelpTextFieldsScanned   = "Total number of fields scanned"
	HelpTextGrowthPending   = "Number of growth timers waiting to fire"
	HelpTextTasksCompleted  = "Total number of tasks completed"
	HelpTextPointsAwarded   = "Total task points awarded"
	HelpTextWeatherChanges  = "Total number of weather cycle ticks"
	HelpTextChatRequests    = "Total number of voice chat requests by outcome"
	HelpTextChatLatency     = "Voice chat endpoint latency in seconds"
	HelpTextSSEClients      = "Number of connected SSE clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelFrom    = "from"
	LabelTo      = "to"
	LabelTool    = "tool"
	LabelEffect  = "effect"
	LabelOutcome = "outcome"
)

// Chat outcomes
const (
	ChatOutcomeReply   = "reply"
	ChatOutcomeNoReply = "no_reply"
	ChatOutcomeNetwork = "network_error"
	ChatOutcomeIgnored = "ignored"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ChatLatencyBuckets covers a remote chatbot that may take several seconds
var ChatLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
