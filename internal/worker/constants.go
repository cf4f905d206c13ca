package worker

// Pool log messages
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerQueueFull = "Worker queue full, job dropped"
)

// Growth worker log messages
const (
	LogMsgSchedulingGrowth             = "Scheduling tile growth"
	LogMsgGrowthScheduleRejected       = "Growth worker is shut down, timer not scheduled"
	LogMsgGrowthCancelled              = "Cancelled pending growth"
	LogMsgGrowthWorkerNotStarted       = "Growth timer fired before worker was started"
	LogMsgGrowthTargetGone             = "Growth timer fired for a tile that is no longer watered"
	LogMsgFailedToCompleteGrowth       = "Failed to complete growth"
	LogMsgShuttingDownGrowthWorker     = "Shutting down growth worker"
	LogMsgCancelledPendingGrowth       = "Cancelled pending growth timers"
	LogMsgGrowthWorkerShutdownComplete = "Growth worker shutdown complete"
	LogMsgGrowthWorkerShutdownTimeout  = "Growth worker shutdown timeout"
)
