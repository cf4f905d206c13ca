package task

// Error messages
const (
	ErrMsgReadCatalogue  = "failed to read task catalogue"
	ErrMsgParseCatalogue = "failed to parse task catalogue"
)

// Log messages
const (
	LogMsgTasksSeeded     = "Tasks seeded for player"
	LogMsgTaskCompleted   = "Task completed"
	LogMsgTaskAlreadyDone = "Task already completed"
)
