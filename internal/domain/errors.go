package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Field errors
	ErrMsgFieldNotFound    = "field not found"
	ErrMsgTileNotFound     = "tile not found"
	ErrMsgInvalidFieldSize = "invalid field size"

	// Tool errors
	ErrMsgInvalidTool = "invalid tool"

	// Task errors
	ErrMsgTaskNotFound = "task not found"

	// Chat errors
	ErrMsgRecognitionUnsupported = "speech recognition not supported"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrFieldNotFound    = errors.New(ErrMsgFieldNotFound)
	ErrTileNotFound     = errors.New(ErrMsgTileNotFound)
	ErrInvalidFieldSize = errors.New(ErrMsgInvalidFieldSize)

	ErrInvalidTool = errors.New(ErrMsgInvalidTool)

	ErrTaskNotFound = errors.New(ErrMsgTaskNotFound)

	ErrRecognitionUnsupported = errors.New(ErrMsgRecognitionUnsupported)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
