// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/ytgate/internal/extractor"
	"github.com/tomtom215/ytgate/internal/proxy"
	"github.com/tomtom215/ytgate/internal/validation"
)

// ErrInvalidBody is returned for request bodies that are not a JSON object.
var ErrInvalidBody = errors.New("request body must be a JSON object")

// Client-facing messages for proxy failures that carry no useful detail.
const (
	msgTooManyRedirects = "Too many redirects"
	msgBadRedirect      = "Upstream redirect failed"
	msgConnection       = "Failed to connect to media host"
)

// errorResponse maps an error to its HTTP status and client message.
//
//	validation / bad body           400
//	open circuit breaker            503
//	upstream 4xx/5xx                mirrored, "Upstream error <code>"
//	everything else                 500
func errorResponse(err error) (int, string) {
	var validationErr *validation.RequestValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}
	if errors.Is(err, ErrInvalidBody) {
		return http.StatusBadRequest, ErrInvalidBody.Error()
	}

	if errors.Is(err, extractor.ErrExtractorUnavailable) {
		return http.StatusServiceUnavailable, extractor.ErrExtractorUnavailable.Error()
	}

	var upstreamErr *proxy.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.StatusCode, upstreamErr.Error()
	}

	switch {
	case errors.Is(err, proxy.ErrTooManyRedirects):
		return http.StatusInternalServerError, msgTooManyRedirects
	case errors.Is(err, proxy.ErrBadRedirect):
		return http.StatusInternalServerError, msgBadRedirect
	}

	var connErr *proxy.ConnectionError
	if errors.As(err, &connErr) {
		return http.StatusInternalServerError, msgConnection
	}

	// Tool diagnostics, spawn failures, parse and resolution errors are
	// passed through as-is.
	return http.StatusInternalServerError, err.Error()
}
