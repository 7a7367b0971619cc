// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

/*
Package metrics defines the Prometheus collectors exported at /metrics.

Collectors are registered on the default registry with promauto at package
init. Callers use the Record* helpers rather than touching the vectors.

# Available Metrics

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Extractor:
  - extractor_invocations_total{operation,result}
  - extractor_invocation_duration_seconds{operation}
  - extractor_available

Streaming proxy:
  - proxy_redirects_followed_total
  - proxy_upstream_responses_total{status_class}
  - proxy_bytes_streamed_total
  - proxy_stream_failures_total{reason}
  - proxy_active_streams

Circuit breaker:
  - circuit_breaker_state{name}
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

The endpoint label carries the chi route pattern (for example
/stream/{videoId}), never the raw path, so video IDs do not create series.
*/
package metrics
