// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 300},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Extractor (yt-dlp) Metrics
	ExtractorInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extractor_invocations_total",
			Help: "Total number of yt-dlp invocations",
		},
		[]string{"operation", "result"}, // result: "success", "tool_error", "spawn_error", "timeout", "rejected"
	)

	ExtractorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "extractor_invocation_duration_seconds",
			Help:    "Duration of yt-dlp invocations in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
		},
		[]string{"operation"},
	)

	ExtractorAvailable = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "extractor_available",
			Help: "Whether the last yt-dlp probe succeeded (1) or failed (0)",
		},
	)

	// Streaming Proxy Metrics
	ProxyRedirectsFollowed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "proxy_redirects_followed_total",
			Help: "Total number of upstream redirects followed by the streaming proxy",
		},
	)

	ProxyUpstreamResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proxy_upstream_responses_total",
			Help: "Upstream responses received by the streaming proxy",
		},
		[]string{"status_class"}, // "2xx", "3xx", "4xx", "5xx"
	)

	ProxyBytesStreamed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "proxy_bytes_streamed_total",
			Help: "Total number of body bytes copied to clients",
		},
	)

	ProxyStreamFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proxy_stream_failures_total",
			Help: "Streaming proxy failures by reason",
		},
		[]string{"reason"}, // "upstream", "too_many_redirects", "bad_redirect", "connection", "interrupted", "client_disconnected"
	)

	ProxyActiveStreams = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "proxy_active_streams",
			Help: "Current number of streams being copied to clients",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordExtractorInvocation records one yt-dlp invocation
func RecordExtractorInvocation(operation, result string, duration time.Duration) {
	ExtractorInvocations.WithLabelValues(operation, result).Inc()
	if result != "rejected" {
		ExtractorDuration.WithLabelValues(operation).Observe(duration.Seconds())
	}
}

// SetExtractorAvailable records the result of the latest probe
func SetExtractorAvailable(ok bool) {
	if ok {
		ExtractorAvailable.Set(1)
	} else {
		ExtractorAvailable.Set(0)
	}
}

// RecordProxyRedirect records one followed redirect hop
func RecordProxyRedirect() {
	ProxyRedirectsFollowed.Inc()
}

// RecordProxyUpstreamStatus records an upstream response by status class
func RecordProxyUpstreamStatus(statusCode int) {
	ProxyUpstreamResponses.WithLabelValues(StatusClass(statusCode)).Inc()
}

// RecordProxyBytes adds n streamed bytes
func RecordProxyBytes(n int64) {
	if n > 0 {
		ProxyBytesStreamed.Add(float64(n))
	}
}

// RecordProxyFailure records a streaming failure by reason
func RecordProxyFailure(reason string) {
	ProxyStreamFailures.WithLabelValues(reason).Inc()
}

// TrackActiveStream increments or decrements the active stream gauge
func TrackActiveStream(inc bool) {
	if inc {
		ProxyActiveStreams.Inc()
	} else {
		ProxyActiveStreams.Dec()
	}
}

// StatusClass maps an HTTP status code to "1xx".."5xx", or "other".
func StatusClass(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "1xx"
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500 && code < 600:
		return "5xx"
	default:
		return "other"
	}
}
