package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusInvalid = "invalid"
)

// DefaultRegistry holds every DevFlow collector and is served on /metrics.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		LLMRequestsTotal, LLMTokensTotal,
		ToolCallsTotal, ToolDuration,
		TurnIterations, ClassificationsTotal,
		SourceDuration, SourceFailuresTotal,
		HTTPRequestsTotal, ChatDuration,
	)
}

// LLMRequestsTotal counts model calls per provider and outcome.
var LLMRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "devflow_llm_requests_total",
		Help: "Model invocations by provider and status",
	},
	[]string{"provider", "status"}, // success | error
)

// LLMTokensTotal counts tokens reported by providers.
var LLMTokensTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "devflow_llm_tokens_total",
		Help: "Total tokens consumed",
	},
	[]string{"provider"},
)

// ToolCallsTotal counts proposed actions by outcome.
var ToolCallsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "devflow_tool_calls_total",
		Help: "Proposed actions by tool and status",
	},
	[]string{"tool", "status"}, // success | error | invalid
)

// ToolDuration observes action execution time in seconds.
var ToolDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "devflow_tool_duration_seconds",
		Help:    "Action execution time in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"tool"},
)

// TurnIterations observes how many model calls a turn needed.
var TurnIterations = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "devflow_turn_iterations",
		Help:    "Model calls per turn",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 25},
	},
)

// Classifier variants.
const (
	VariantDetailed = "detailed"
	VariantSimple   = "simple"
)

// ClassificationsTotal counts assigned tags per classifier variant.
var ClassificationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "devflow_classifications_total",
		Help: "Response classifications by variant and tag",
	},
	[]string{"variant", "tag"},
)

// SourceDuration observes structured-source fetch time.
var SourceDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "devflow_source_duration_seconds",
		Help:    "Structured source fetch time in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"source"},
)

// SourceFailuresTotal counts failed or timed-out source fetches.
var SourceFailuresTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "devflow_source_failures_total",
		Help: "Structured source failures",
	},
	[]string{"source"},
)

// HTTPRequestsTotal counts served API requests.
var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "devflow_http_requests_total",
		Help: "HTTP requests by route and status code",
	},
	[]string{"method", "route", "code"},
)

// ChatDuration observes end-to-end chat request latency.
var ChatDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "devflow_chat_duration_seconds",
		Help:    "Chat request latency in seconds",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	},
)

// Handler exposes DefaultRegistry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{})
}
