package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
)

// SuccessResponse is the body of endpoints that only acknowledge
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a user-facing error message
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON encodes payload into a pooled buffer before any header is written
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err, "status", status)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn(LogMsgWriteFailed, "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := statusForError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."

	ErrMsgFieldNotFoundError   = "No field scanned yet. Scan your field first."
	ErrMsgTileNotFoundError    = "Tile not found"
	ErrMsgInvalidFieldSizeErr  = "Field size must be between 1 and 32 tiles per side"
	ErrMsgInvalidToolError     = "Unknown tool. Use plough, sow, water or harvest."
	ErrMsgTaskNotFoundError    = "Task not found"
	ErrMsgRecognitionUnsupport = "Speech recognition is not supported"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// serviceErrors is matched in order with errors.Is; the first hit wins
var serviceErrors = []errorMapping{
	{domain.ErrFieldNotFound, http.StatusNotFound, ErrMsgFieldNotFoundError},
	{domain.ErrTileNotFound, http.StatusNotFound, ErrMsgTileNotFoundError},
	{domain.ErrTaskNotFound, http.StatusNotFound, ErrMsgTaskNotFoundError},
	{domain.ErrInvalidFieldSize, http.StatusBadRequest, ErrMsgInvalidFieldSizeErr},
	{domain.ErrInvalidTool, http.StatusBadRequest, ErrMsgInvalidToolError},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestError},
	{domain.ErrRecognitionUnsupported, http.StatusNotImplemented, ErrMsgRecognitionUnsupport},
}

// statusForError picks the status and message shown for a service error.
// Anything unrecognised, database failures included, becomes a generic 500.
func statusForError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}
	for _, m := range serviceErrors {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
