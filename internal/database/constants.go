package database

import "time"

// Pool defaults, used by cmd/setup and as floors for configured values
const (
	// DefaultMinConnections is kept open even when idle
	DefaultMinConnections = 2

	DefaultMaxIdleTime = 5 * time.Minute
	DefaultMaxLifetime = time.Hour
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToInitMigrator    = "failed to load migrations"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
