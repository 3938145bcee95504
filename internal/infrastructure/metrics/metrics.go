package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Agent-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pagila",
			Subsystem: "agent_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status", "model"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pagila",
			Subsystem: "agent_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	// Agent invocation duration (dominated by LLM round trips)
	ChatDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pagila",
			Subsystem: "agent_api",
			Name:      "chat_duration_seconds",
			Help:      "End-to-end agent invocation duration in seconds",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 120},
		},
		[]string{"model", "status"},
	)

	// Agent cache behaviour
	AgentCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pagila",
			Subsystem: "agent_api",
			Name:      "agent_cache_total",
			Help:      "Agent handle cache lookups by result",
		},
		[]string{"result"},
	)

	// Provider errors
	ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pagila",
			Subsystem: "agent_api",
			Name:      "provider_errors_total",
			Help:      "Total provider call failures",
		},
		[]string{"provider", "error_type"},
	)

	// Catalog sync runs
	CatalogSyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pagila",
			Subsystem: "agent_api",
			Name:      "catalog_sync_total",
			Help:      "OpenRouter catalog refresh attempts by status",
		},
		[]string{"status"},
	)
)

// RecordRequest records an HTTP request with its duration
func RecordRequest(method, endpoint, status, model string, duration float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status, model).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(duration)
}

// RecordChat records one agent invocation
func RecordChat(model, status string, duration float64) {
	ChatDuration.WithLabelValues(model, status).Observe(duration)
}

// RecordAgentCache records an agent cache lookup ("hit" or "miss")
func RecordAgentCache(result string) {
	AgentCacheTotal.WithLabelValues(result).Inc()
}

// RecordProviderError records a provider failure by classified type
func RecordProviderError(provider, errorType string) {
	ProviderErrorsTotal.WithLabelValues(provider, errorType).Inc()
}

// RecordCatalogSync records a catalog refresh attempt ("ok" or "error")
func RecordCatalogSync(status string) {
	CatalogSyncTotal.WithLabelValues(status).Inc()
}
