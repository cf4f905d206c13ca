package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/event"
)

func TestEventMetricsCollector_TileChanged(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	before := testutil.ToFloat64(TileTransitions.WithLabelValues("empty", "soil"))
	evt := event.NewTileChangedEvent("p1", "f1", "t1", domain.TileEmpty, domain.TileSoil, domain.ToolPlough)
	require.NoError(t, bus.Publish(context.Background(), evt))

	assert.Equal(t, before+1, testutil.ToFloat64(TileTransitions.WithLabelValues("empty", "soil")))
}

func TestEventMetricsCollector_TaskCompleted(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	beforeTasks := testutil.ToFloat64(TasksCompleted.WithLabelValues("sow"))
	beforePoints := testutil.ToFloat64(PointsAwarded)

	task := domain.Task{ID: "t1", PlayerID: "p1", Title: "Sow", Type: domain.ToolSow, Points: 7}
	require.NoError(t, bus.Publish(context.Background(), event.NewTaskCompletedEvent(task, 7)))

	assert.Equal(t, beforeTasks+1, testutil.ToFloat64(TasksCompleted.WithLabelValues("sow")))
	assert.Equal(t, beforePoints+7, testutil.ToFloat64(PointsAwarded))
}

func TestEventMetricsCollector_UnknownPayload(t *testing.T) {
	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{Type: "x", Payload: 42})
	assert.NoError(t, err)
}

func TestMiddleware_LabelsRouteTemplate(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/tiles/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/tiles/{id}", "418")
	before := testutil.ToFloat64(counter)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tiles/t-9", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Zero(t, testutil.ToFloat64(HTTPRequestsInFlight))
}

func TestMiddleware_UnroutedDefaultsToOK(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "200")
	before := testutil.ToFloat64(counter)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/random/path", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
