// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

/*
Package middleware provides the infrastructure middleware mounted on the chi router.

Key Components:

  - RequestID: X-Request-ID echo plus request/correlation IDs for logging.Ctx
  - PrometheusMetrics: request count, latency and in-flight gauge by route pattern
  - AccessLog: one zerolog line per completed request

All three are plain func(http.Handler) http.Handler values:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog)

The response writer wrappers forward Flush and implement Unwrap, so
http.ResponseController keeps working for streamed audio.
*/
package middleware
