package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureDefaultLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestRedactHeaders(t *testing.T) {
	h := http.Header{}
	h.Set(HeaderAPIKey, "secret-key-123")
	h.Set(HeaderAuthorization, "Bearer mytoken")
	h.Set("User-Agent", "TestAgent")

	got := redactHeaders(h)

	assert.Equal(t, RedactedValue, got.Get(HeaderAPIKey))
	assert.Equal(t, RedactedValue, got.Get(HeaderAuthorization))
	assert.Equal(t, "TestAgent", got.Get("User-Agent"))
	assert.Equal(t, "secret-key-123", h.Get(HeaderAPIKey), "original header is untouched")
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	buf := captureDefaultLog(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	loggingMiddleware(okHandler).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, LogMsgRequestCompleted)
}

func TestLoggingMiddleware_SkipsQuietPaths(t *testing.T) {
	buf := captureDefaultLog(t)

	handler := loggingMiddleware(okHandler)
	for _, path := range QuietPaths {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Zero(t, buf.Len(), buf.String())
}
