package server

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/krishiquest/KrishiQuest_Go/internal/chat"
	"github.com/krishiquest/KrishiQuest_Go/internal/farm"
	"github.com/krishiquest/KrishiQuest_Go/internal/handler"
	"github.com/krishiquest/KrishiQuest_Go/internal/logger"
	"github.com/krishiquest/KrishiQuest_Go/internal/market"
	"github.com/krishiquest/KrishiQuest_Go/internal/metrics"
	"github.com/krishiquest/KrishiQuest_Go/internal/sse"
	"github.com/krishiquest/KrishiQuest_Go/internal/task"
	"github.com/krishiquest/KrishiQuest_Go/internal/weather"
)

// Services are the domain services the router exposes
type Services struct {
	Farm    farm.Service
	Tasks   task.Service
	Weather weather.Service
	Chat    chat.Service
	Market  market.Service
	SSEHub  *sse.Hub

	// Readiness lists dependencies /readyz pings, usually the database pool
	Readiness []handler.Pinger
}

// Server owns the HTTP listener
type Server struct {
	httpServer *http.Server
	services   Services
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		services: svc,
	}
}

// NewRouter builds the HTTP routing tree
func NewRouter(apiKey string, trustedProxies []string, svc Services) http.Handler {
	r := chi.NewRouter()

	guard := NewActivityGuard()

	// outermost first; the rate limit also counts requests that fail auth
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(trustedProxies, guard))
	r.Use(AuthMiddleware(apiKey, trustedProxies, guard))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Readiness...))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		farmHandler := handler.NewFarmHandler(svc.Farm)
		r.Route("/field", func(r chi.Router) {
			r.Get("/", farmHandler.HandleGetField())
			r.Post("/scan", farmHandler.HandleScanField())
			r.Get("/progress", farmHandler.HandleGetProgress())
		})
		r.Route("/farm", func(r chi.Router) {
			r.Post("/tool", farmHandler.HandleSelectTool())
			r.Get("/selection", farmHandler.HandleGetSelection())
			r.Post("/click", farmHandler.HandleClickTile())
		})

		r.Get("/tasks", handler.HandleListTasks(svc.Tasks))
		r.Post("/tasks/complete", handler.HandleCompleteTask(svc.Tasks))
		r.Get("/points", handler.HandleGetPoints(svc.Tasks))

		r.Get("/weather", handler.HandleGetWeather(svc.Weather))

		r.Route("/chat", func(r chi.Router) {
			r.Post("/message", handler.HandleChatMessage(svc.Chat))
			r.Post("/listen", handler.HandleChatListen(svc.Chat))
			r.Get("/history", handler.HandleChatHistory(svc.Chat))
		})

		r.Route("/market", func(r chi.Router) {
			r.Get("/prices", handler.HandleMarketPrices(svc.Market))
			r.Get("/listings", handler.HandleMarketListings(svc.Market))
			r.Get("/categories", handler.HandleMarketCategories(svc.Market))
			r.Get("/stats", handler.HandleMarketStats(svc.Market))
			r.Get("/trends", handler.HandleMarketTrends(svc.Market))
		})

		if svc.SSEHub != nil {
			r.Get("/events", sse.Handler(svc.SSEHub))
		}
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

func isQuietPath(path string) bool {
	return slices.ContainsFunc(QuietPaths, func(prefix string) bool {
		return strings.HasPrefix(path, prefix)
	})
}

// redactHeaders copies h with credential headers masked
func redactHeaders(h http.Header) http.Header {
	out := h.Clone()
	for k := range out {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
		}
	}
	return out
}

// loggingMiddleware tags each request with an id and logs its start and outcome
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", cmp.Or(ww.Status(), http.StatusOK),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
