// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package proxy

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyRedirects is returned once the redirect bound is exceeded.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrBadRedirect is returned for a 3xx response without a usable Location.
	ErrBadRedirect = errors.New("upstream redirect without a usable Location")
)

// UpstreamError reports a 4xx or 5xx response from the media host.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Upstream error %d", e.StatusCode)
}

// ConnectionError reports a transport failure before anything was sent to
// the client. A response can still be written.
type ConnectionError struct {
	URL string // redacted
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("upstream connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// InterruptedError reports a failure after the status line went out. The
// client response is already committed and can only be aborted.
type InterruptedError struct {
	Written int64
	Err     error
}

func (e *InterruptedError) Error() string {
	return fmt.Sprintf("stream interrupted after %d bytes: %v", e.Written, e.Err)
}

func (e *InterruptedError) Unwrap() error {
	return e.Err
}
