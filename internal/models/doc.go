// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

/*
Package models defines the request and response shapes of the YTGate HTTP API.

Key Components:

  - MediaItem: one playable video in search results or a track list
  - PlaylistResult: imported playlist (or single video) with ordered tracks
  - AudioDescriptor: resolved audio URL plus display metadata
  - SearchRequest, VideoRequest, ImportRequest: validated inputs

JSON field names follow the public API (videoId, audioUrl) rather than Go
conventions. Models are built fresh per response and never persisted.
*/
package models
