// Package metrics provides Prometheus metrics for the webhook.site MCP
// server. It tracks tool calls, API latencies, cache performance, and the
// wait/poll engine's behavior.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "webhook_site_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// CacheHits counts cache hits
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cache_hits_total",
		Help:      "Total cache hit count",
	})

	// CacheMisses counts cache misses
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cache_misses_total",
		Help:      "Total cache miss count",
	})

	// CacheSize tracks current cache entry count
	CacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "cache_entries",
		Help:      "Current number of cache entries",
	})

	// CacheEvictions counts cache evictions
	CacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cache_evictions_total",
		Help:      "Total cache eviction count",
	})

	// APILatency measures webhook.site API call latency by action
	APILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "api_latency_seconds",
		Help:      "webhook.site API call latency by action",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action"})

	// APIRequestsTotal counts webhook.site API requests
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_requests_total",
		Help:      "Total webhook.site API requests by action and status",
	}, []string{"action", "status"})

	// APIErrors counts webhook.site API errors by error code
	APIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_errors_total",
		Help:      "webhook.site API errors by action and error code",
	}, []string{"action", "error_code"})

	// APIRetries counts API request retries
	APIRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_retries_total",
		Help:      "webhook.site API retry count by action",
	}, []string{"action"})

	// PollCycles counts poll-loop iterations by wait kind
	PollCycles = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "poll_cycles_total",
		Help:      "Wait engine poll cycles by kind (request or email)",
	}, []string{"kind"})

	// WaitsTotal counts completed wait invocations by kind and outcome
	WaitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "waits_total",
		Help:      "Completed wait invocations by kind and outcome",
	}, []string{"kind", "outcome"})

	// WaitDuration measures how long wait invocations block
	WaitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "wait_duration_seconds",
		Help:      "Wall-clock duration of wait invocations by kind",
		Buckets:   []float64{1, 2, 5, 10, 30, 60, 120, 300},
	}, []string{"kind"})

	// RateLimitWaits counts requests that had to wait for rate limiter
	RateLimitWaits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "rate_limit_waits_total",
		Help:      "Requests that waited for rate limiter semaphore",
	})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed request with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records a webhook.site API call
func RecordAPICall(action string, duration float64, success bool, errorCode string) {
	status := "success"
	if !success {
		status = "error"
	}
	APIRequestsTotal.WithLabelValues(action, status).Inc()
	APILatency.WithLabelValues(action).Observe(duration)
	if errorCode != "" {
		APIErrors.WithLabelValues(action, errorCode).Inc()
	}
}

// RecordPollCycle records one iteration of a wait poll loop
func RecordPollCycle(kind string) {
	PollCycles.WithLabelValues(kind).Inc()
}

// RecordWait records a completed wait invocation
func RecordWait(kind, outcome string, duration time.Duration) {
	WaitsTotal.WithLabelValues(kind, outcome).Inc()
	WaitDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordCacheAccess records a cache hit or miss
func RecordCacheAccess(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// SetCacheSize updates the current cache size gauge
func SetCacheSize(size int64) {
	CacheSize.Set(float64(size))
}
