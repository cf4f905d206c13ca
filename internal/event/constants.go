package event

// EventSchemaVersion is stamped on every event this package builds
const EventSchemaVersion = "1.0"

// MetadataTaskType is the metadata key holding a completed task's tool
const MetadataTaskType = "task_type"

const (
	LogMsgPublishFailed = "Failed to publish event"

	// ErrMsgHandlersFailedFormat takes the failure count, the event type and the joined errors
	ErrMsgHandlersFailedFormat = "%d handlers failed for event %s: %w"

	// ErrMsgDecodePayloadFormat takes the target value and the cause
	ErrMsgDecodePayloadFormat = "decode payload as %T: %w"
)
