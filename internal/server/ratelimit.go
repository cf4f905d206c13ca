package server

import (
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/krishiquest/KrishiQuest_Go/internal/metrics"
)

// ipWindow counts one client's activity since its window opened
type ipWindow struct {
	requests   int
	failedAuth int
}

// ActivityGuard enforces a per-IP request budget and raises alerts on repeated
// auth failures. Each IP gets a fixed window that opens on its first request;
// the least recently seen IPs are dropped once MaxTrackedIPs is reached.
type ActivityGuard struct {
	mu        sync.Mutex
	windows   *expirable.LRU[string, *ipWindow]
	limit     int
	authAlert int
}

// GuardOption tunes an ActivityGuard
type GuardOption func(*guardConfig)

type guardConfig struct {
	window    time.Duration
	limit     int
	authAlert int
	tracked   int
}

// WithRateWindow sets how long a client's counters live
func WithRateWindow(d time.Duration) GuardOption {
	return func(c *guardConfig) { c.window = d }
}

// WithRequestLimit sets the per-window request budget
func WithRequestLimit(n int) GuardOption {
	return func(c *guardConfig) { c.limit = n }
}

// NewActivityGuard creates a guard with the server defaults
func NewActivityGuard(opts ...GuardOption) *ActivityGuard {
	cfg := guardConfig{
		window:    RateWindow,
		limit:     MaxRequestsPerWindow,
		authAlert: FailedAuthAlertThreshold,
		tracked:   MaxTrackedIPs,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ActivityGuard{
		windows:   expirable.NewLRU[string, *ipWindow](cfg.tracked, nil, cfg.window),
		limit:     cfg.limit,
		authAlert: cfg.authAlert,
	}
}

// window returns the live counters for ip, opening a new window if needed. Caller holds g.mu.
func (g *ActivityGuard) window(ip string) *ipWindow {
	if w, ok := g.windows.Get(ip); ok {
		return w
	}
	w := &ipWindow{}
	g.windows.Add(ip, w)
	return w
}

// Allow counts a request and reports whether ip is still within budget
func (g *ActivityGuard) Allow(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	w := g.window(ip)
	w.requests++
	if w.requests <= g.limit {
		return true
	}

	metrics.RequestsThrottled.Inc()
	if (w.requests-g.limit)%ThrottleLogEvery == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", w.requests)
	}
	return false
}

// FailedAuth records a rejected API key and returns the count in the current window
func (g *ActivityGuard) FailedAuth(ip string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	w := g.window(ip)
	w.failedAuth++
	metrics.AuthFailures.Inc()

	if w.failedAuth >= g.authAlert {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", w.failedAuth)
	}
	return w.failedAuth
}
