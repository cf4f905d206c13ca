package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"field not found", domain.ErrFieldNotFound, http.StatusNotFound, ErrMsgFieldNotFoundError},
		{"wrapped tile not found", fmt.Errorf("%w: tile abc", domain.ErrTileNotFound), http.StatusNotFound, ErrMsgTileNotFoundError},
		{"task not found", domain.ErrTaskNotFound, http.StatusNotFound, ErrMsgTaskNotFoundError},
		{"field size", domain.ErrInvalidFieldSize, http.StatusBadRequest, ErrMsgInvalidFieldSizeErr},
		{"tool", domain.ErrInvalidTool, http.StatusBadRequest, ErrMsgInvalidToolError},
		{"input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestError},
		{"recognition", domain.ErrRecognitionUnsupported, http.StatusNotImplemented, ErrMsgRecognitionUnsupport},
		{"database", fmt.Errorf("save: %w", domain.ErrDatabaseError), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"unknown error hides details", errors.New("pq: relation does not exist"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"first match wins", errors.Join(domain.ErrInvalidInput, domain.ErrTaskNotFound), http.StatusNotFound, ErrMsgTaskNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := statusForError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
