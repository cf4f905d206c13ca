package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	AuthFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuthFailures,
			Help: HelpTextAuthFailures,
		},
	)

	RequestsThrottled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRequestsThrottled,
			Help: HelpTextRequestsThrottled,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Farm Metrics
var (
	TileTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTileTransitions,
			Help: HelpTextTileTransitions,
		},
		[]string{LabelFrom, LabelTo},
	)

	RejectedActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRejectedActions,
			Help: HelpTextRejectedActions,
		},
		[]string{LabelTool},
	)

	FieldsScanned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFieldsScanned,
			Help: HelpTextFieldsScanned,
		},
	)

	GrowthTimersPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameGrowthPending,
			Help: HelpTextGrowthPending,
		},
	)

	TasksCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTasksCompleted,
			Help: HelpTextTasksCompleted,
		},
		[]string{LabelTool},
	)

	PointsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsAwarded,
			Help: HelpTextPointsAwarded,
		},
	)

	WeatherChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWeatherChanges,
			Help: HelpTextWeatherChanges,
		},
		[]string{LabelEffect},
	)
)

// Chat and streaming Metrics
var (
	ChatRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChatRequests,
			Help: HelpTextChatRequests,
		},
		[]string{LabelOutcome},
	)

	ChatLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameChatLatency,
			Help:    HelpTextChatLatency,
			Buckets: ChatLatencyBuckets,
		},
	)

	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)
)
