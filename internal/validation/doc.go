// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

// Package validation wraps a singleton go-playground/validator instance.
//
// Field names in messages come from the `label` struct tag, so
//
//	Query string `label:"Query" validate:"required"`
//
// fails with "Query is required". Two custom tags are registered:
// videoid (path-safe video identifier) and httpurl (absolute http/https URL).
package validation
