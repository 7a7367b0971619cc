// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package models

// HealthResponse is the static /health payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// LivenessResponse is returned by /health/live.
type LivenessResponse struct {
	Alive  bool    `json:"alive"`
	Uptime float64 `json:"uptime"`
}

// ReadinessResponse is returned by /health/ready with 200 or 503.
type ReadinessResponse struct {
	Status             string  `json:"status"` // "ready" or "not_ready"
	ExtractorAvailable bool    `json:"extractor_available"`
	ExtractorVersion   string  `json:"extractor_version,omitempty"`
	BreakerState       string  `json:"breaker_state"`
	LastProbeError     string  `json:"last_probe_error,omitempty"`
	Uptime             float64 `json:"uptime"`
}

// SearchResponse is returned by /search.
type SearchResponse struct {
	Results []MediaItem `json:"results"`
	Source  string      `json:"source"`
}

// ImportResponse is returned by POST /import.
type ImportResponse struct {
	Data   PlaylistResult `json:"data"`
	Source string         `json:"source"`
}

// ErrorResponse is the error envelope used by every route.
type ErrorResponse struct {
	Error string `json:"error"`
}
