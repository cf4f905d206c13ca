package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
)

// ValidationErrorResponse is the 400 body for a request that failed validation
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest reads a JSON body into req and validates it. On
// error the response has been written and the handler should just return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context()).With("action", actionName)

	body := http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		fields := FormatValidationError(err)
		log.Debug(LogMsgValidationFailed, "fields", fields)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{Error: ErrMsgInvalidRequestSummary, Fields: fields})
		return err
	}

	log.Debug(LogMsgRequestDecoded)
	return nil
}

// GetQueryParam returns a required query parameter. When it is missing a 400
// has been written and ok is false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (value string, ok bool) {
	if value = r.URL.Query().Get(paramName); value != "" {
		return value, true
	}
	logger.FromContext(r.Context()).Warn(LogMsgMissingParam, "param", paramName)
	respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
	return "", false
}

// GetOptionalQueryParam returns a query parameter or defaultValue when it is empty
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	if value := r.URL.Query().Get(paramName); value != "" {
		return value
	}
	return defaultValue
}
