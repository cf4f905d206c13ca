package sse

import "time"

const (
	// BroadcastBufferSize is how many events may wait for delivery
	BroadcastBufferSize = 100

	// ClientEventBuffer is the per-stream backlog before events are skipped
	ClientEventBuffer = 50

	KeepaliveInterval = 30 * time.Second
)

// Stream-only event types
const (
	// EventTypeConnected is the first event on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Query parameters
const (
	QueryParamTypes    = "types"
	QueryParamPlayerID = "player_id"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventDropped       = "SSE broadcast buffer full, dropping event"
	LogMsgClientSlow         = "SSE client buffer full, skipping event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
	LogMsgBadPayload         = "Unexpected SSE event payload"
)

// HTTP error bodies
const (
	ErrMsgStreamingUnsupported = "streaming unsupported"
	ErrMsgHubStopped           = "event stream closed"
)
