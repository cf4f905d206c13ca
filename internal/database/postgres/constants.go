package postgres

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToCommit           = "failed to commit transaction"
)

// Error Messages - Field Operations
const (
	ErrMsgFailedToGetField    = "failed to get field"
	ErrMsgFailedToGetTiles    = "failed to get field tiles"
	ErrMsgFailedToDeleteField = "failed to delete previous field"
	ErrMsgFailedToInsertField = "failed to insert field"
	ErrMsgFailedToInsertTiles = "failed to insert field tiles"
	ErrMsgFailedToUpdateTile  = "failed to update tile"
	ErrMsgFailedToLookupTile  = "failed to look up tile"
)

// Error Messages - Task Operations
const (
	ErrMsgFailedToListTasks    = "failed to list tasks"
	ErrMsgFailedToCountTasks   = "failed to count tasks"
	ErrMsgFailedToInsertTasks  = "failed to insert tasks"
	ErrMsgFailedToFindTask     = "failed to find task"
	ErrMsgFailedToCompleteTask = "failed to complete task"
	ErrMsgFailedToAddPoints    = "failed to add points"
	ErrMsgFailedToGetPoints    = "failed to get points"
)

// Log Messages
const (
	LogMsgRollbackFailed = "Failed to rollback transaction"
)
