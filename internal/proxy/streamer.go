// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package proxy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/tomtom215/ytgate/internal/logging"
	"github.com/tomtom215/ytgate/internal/metrics"
)

const (
	// DefaultMaxRedirects is the redirect bound for one stream request.
	DefaultMaxRedirects = 5

	// DefaultBufferSize is the copy chunk size.
	DefaultBufferSize = 32 * 1024

	// maxDrain bounds how much of a discarded body is read to keep the
	// connection reusable.
	maxDrain = 64 * 1024
)

// Failure reasons for proxy_stream_failures_total.
const (
	reasonUpstream     = "upstream"
	reasonRedirects    = "too_many_redirects"
	reasonBadRedirect  = "bad_redirect"
	reasonConnection   = "connection"
	reasonInterrupted  = "interrupted"
	reasonClientClosed = "client_disconnected"
)

// forwardedHeaders is the complete set of upstream response headers passed
// to the client.
var forwardedHeaders = []string{
	"Content-Type",
	"Content-Length",
	"Accept-Ranges",
	"Content-Range",
	"Cache-Control",
	"Last-Modified",
}

// Config controls outbound fetches.
type Config struct {
	MaxRedirects          int
	DialTimeout           time.Duration
	ResponseHeaderTimeout time.Duration
	UserAgent             string
	BufferSize            int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		MaxRedirects:          DefaultMaxRedirects,
		DialTimeout:           10 * time.Second,
		ResponseHeaderTimeout: 15 * time.Second,
		BufferSize:            DefaultBufferSize,
	}
}

// Streamer fetches a remote media URL and copies it to a client response.
// It is safe for concurrent use; requests share only the connection pool.
type Streamer struct {
	client *http.Client
	cfg    Config
}

// NewStreamer creates a Streamer. The underlying client never follows
// redirects itself and has no overall timeout, since a body may stream for
// as long as the track plays.
func NewStreamer(cfg Config) *Streamer {
	if cfg.MaxRedirects < 0 {
		cfg.MaxRedirects = DefaultMaxRedirects
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultBufferSize
	}

	dialer := &net.Dialer{Timeout: cfg.DialTimeout, KeepAlive: 30 * time.Second}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   cfg.DialTimeout,
		ResponseHeaderTimeout: cfg.ResponseHeaderTimeout,
	}

	return &Streamer{
		client: &http.Client{
			Transport: transport,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		cfg: cfg,
	}
}

// Stream fetches target and writes it to w, following up to MaxRedirects
// redirects. rangeHeader is forwarded verbatim when non-empty; no other
// inbound header is.
//
// The returned byte count is what reached w. An *InterruptedError means the
// status line was already written; every other error leaves w untouched.
func (s *Streamer) Stream(ctx context.Context, w http.ResponseWriter, target, rangeHeader string) (int64, error) {
	log := logging.Ctx(ctx).With().Str("component", "proxy").Logger()

	current := target
	chain := make([]string, 0, s.cfg.MaxRedirects+1)

	for attempt := 0; ; attempt++ {
		if attempt > s.cfg.MaxRedirects {
			metrics.RecordProxyFailure(reasonRedirects)
			log.Warn().Int("hops", len(chain)).Str("last", logging.RedactURL(current)).Msg("Redirect bound exceeded")
			return 0, fmt.Errorf("%w: %d hops", ErrTooManyRedirects, len(chain))
		}
		chain = append(chain, current)

		resp, err := s.fetch(ctx, current, rangeHeader)
		if err != nil {
			s.recordFailure(ctx, reasonConnection)
			log.Warn().Err(err).Str("url", logging.RedactURL(current)).Int("attempt", attempt).Msg("Upstream request failed")
			return 0, &ConnectionError{URL: logging.RedactURL(current), Err: err}
		}
		metrics.RecordProxyUpstreamStatus(resp.StatusCode)

		switch {
		case isRedirect(resp.StatusCode):
			next, locErr := resp.Location()
			discard(resp.Body)
			if locErr != nil {
				metrics.RecordProxyFailure(reasonBadRedirect)
				return 0, fmt.Errorf("%w: status %d: %v", ErrBadRedirect, resp.StatusCode, locErr)
			}
			metrics.RecordProxyRedirect()
			log.Debug().
				Int("status", resp.StatusCode).
				Int("attempt", attempt).
				Str("location", logging.RedactURL(next.String())).
				Msg("Following upstream redirect")
			current = next.String()

		case resp.StatusCode >= http.StatusBadRequest:
			discard(resp.Body)
			metrics.RecordProxyFailure(reasonUpstream)
			log.Warn().Int("status", resp.StatusCode).Str("url", logging.RedactURL(current)).Msg("Upstream returned an error status")
			return 0, &UpstreamError{StatusCode: resp.StatusCode}

		default:
			return s.forward(ctx, w, resp, current)
		}
	}
}

func (s *Streamer) fetch(ctx context.Context, target, rangeHeader string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, err
	}
	if s.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", s.cfg.UserAgent)
	}
	if rangeHeader != "" {
		req.Header.Set("Range", rangeHeader)
	}
	return s.client.Do(req)
}

// forward waits for the first body chunk (or a clean EOF), then commits the
// upstream status and allow-listed headers to w and copies the rest chunk
// by chunk, flushing after each write. A body that fails before its first
// byte is a *ConnectionError and leaves w untouched.
func (s *Streamer) forward(ctx context.Context, w http.ResponseWriter, resp *http.Response, current string) (int64, error) {
	defer resp.Body.Close()

	buf := make([]byte, s.cfg.BufferSize)
	n, readErr := readChunk(resp.Body, buf)
	if n == 0 && readErr != nil && !errors.Is(readErr, io.EOF) {
		s.recordFailure(ctx, reasonConnection)
		logging.Ctx(ctx).Warn().Err(readErr).Str("url", logging.RedactURL(current)).Msg("Upstream body failed before the first byte")
		return 0, &ConnectionError{URL: logging.RedactURL(current), Err: readErr}
	}

	metrics.TrackActiveStream(true)
	defer metrics.TrackActiveStream(false)

	header := w.Header()
	for _, name := range forwardedHeaders {
		if v := resp.Header.Get(name); v != "" {
			header.Set(name, v)
		}
	}
	w.WriteHeader(resp.StatusCode)

	rc := http.NewResponseController(w)
	var written int64

	for {
		if n > 0 {
			m, writeErr := w.Write(buf[:n])
			written += int64(m)
			if writeErr != nil {
				return s.interrupted(ctx, written, writeErr)
			}
			// Writers without Flush support still deliver the bytes.
			_ = rc.Flush()
		}
		if errors.Is(readErr, io.EOF) {
			metrics.RecordProxyBytes(written)
			return written, nil
		}
		if readErr != nil {
			return s.interrupted(ctx, written, readErr)
		}
		n, readErr = resp.Body.Read(buf)
	}
}

// readChunk reads until it has at least one byte or an error.
func readChunk(r io.Reader, buf []byte) (int, error) {
	for {
		n, err := r.Read(buf)
		if n > 0 || err != nil {
			return n, err
		}
	}
}

func (s *Streamer) interrupted(ctx context.Context, written int64, err error) (int64, error) {
	metrics.RecordProxyBytes(written)
	s.recordFailure(ctx, reasonInterrupted)
	logging.Ctx(ctx).Debug().Err(err).Int64("bytes", written).Msg("Stream interrupted")
	return written, &InterruptedError{Written: written, Err: err}
}

// recordFailure counts a failure, attributing it to the client when the
// request context is already gone.
func (s *Streamer) recordFailure(ctx context.Context, reason string) {
	if ctx.Err() != nil {
		reason = reasonClientClosed
	}
	metrics.RecordProxyFailure(reason)
}

func isRedirect(code int) bool {
	return code >= http.StatusMultipleChoices && code < http.StatusBadRequest
}

func discard(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrain))
	_ = body.Close()
}
