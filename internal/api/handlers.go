// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/ytgate/internal/extractor"
)

// Version is reported by /health.
const Version = "1.0.0"

// Extractor is the subset of *extractor.Client used by the handlers.
// Each method returns raw yt-dlp stdout.
type Extractor interface {
	Search(ctx context.Context, query string, limit int) (string, error)
	Audio(ctx context.Context, videoID string) (string, error)
	StreamSource(ctx context.Context, videoID string) (string, error)
	PlaylistEntries(ctx context.Context, url string) (string, error)
	PlaylistInfo(ctx context.Context, url string) (string, error)
	Video(ctx context.Context, url string) (string, error)
}

// MediaStreamer copies a remote media URL to the client; see proxy.Streamer.
type MediaStreamer interface {
	Stream(ctx context.Context, w http.ResponseWriter, target, rangeHeader string) (int64, error)
}

// ProbeStatusProvider reports the last extractor probe result.
type ProbeStatusProvider interface {
	Status() extractor.ProbeStatus
}

// BreakerStateProvider reports the extractor circuit breaker state.
type BreakerStateProvider interface {
	State() string
}

// Handler serves the gateway routes. It holds no per-request state.
type Handler struct {
	extractor   Extractor
	streamer    MediaStreamer
	prober      ProbeStatusProvider
	breaker     BreakerStateProvider
	searchLimit int
	startTime   time.Time
}

// HandlerOption configures optional Handler dependencies.
type HandlerOption func(*Handler)

// WithProber enables extractor status on /health/ready.
func WithProber(p ProbeStatusProvider) HandlerOption {
	return func(h *Handler) { h.prober = p }
}

// WithBreaker enables breaker state on /health/ready.
func WithBreaker(b BreakerStateProvider) HandlerOption {
	return func(h *Handler) { h.breaker = b }
}

// WithSearchLimit sets how many results /search asks yt-dlp for when the
// client gives no usable limit.
func WithSearchLimit(limit int) HandlerOption {
	return func(h *Handler) {
		if limit > 0 {
			h.searchLimit = limit
		}
	}
}

// NewHandler creates a Handler.
//
// Dependencies:
//   - ext: yt-dlp command builder (search, metadata, playlist listing)
//   - streamer: streaming proxy used by /stream
//
// Readiness reporting is optional and enabled with WithProber and
// WithBreaker.
func NewHandler(ext Extractor, streamer MediaStreamer, opts ...HandlerOption) *Handler {
	h := &Handler{
		extractor:   ext,
		streamer:    streamer,
		searchLimit: extractor.DefaultSearchLimit,
		startTime:   time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
