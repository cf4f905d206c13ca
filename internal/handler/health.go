package handler

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
)

// HealthResponse is the body of /healthz and /readyz
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Pinger is a dependency readiness waits on, usually the database pool
type Pinger interface {
	Ping(ctx context.Context) error
}

const (
	readinessTimeout = 2 * time.Second

	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
	msgDependencyDown       = "dependency check failed"
)

// HandleHealthz answers as long as the process serves HTTP
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: healthStatusOK})
	}
}

// HandleReadyz pings every dependency in parallel and is ready only when all
// answer within readinessTimeout. With no dependencies it is always ready.
// @Summary Readiness check
// @Description Returns OK if the service is ready to accept traffic
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(deps ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		g, gctx := errgroup.WithContext(ctx)
		for _, dep := range deps {
			g.Go(func() error { return dep.Ping(gctx) })
		}
		if err := g.Wait(); err != nil {
			logger.FromContext(ctx).Error(LogMsgReadinessFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  healthStatusUnavailable,
				Message: msgDependencyDown,
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: healthStatusOK})
	}
}
