// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

// Package logging provides the zerolog-based structured logger used by YTGate.
//
// A single global logger is configured once at startup and then used through
// package-level helpers:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("addr", addr).Msg("Server starting")
//
// Request handlers log through Ctx so that request_id and correlation_id
// set by the API middleware appear on every line:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Search failed")
//
// NewSlogLogger bridges the same logger into log/slog for sutureslog.
//
// Upstream media URLs carry signed query parameters. Use RedactURL before
// logging them.
package logging
