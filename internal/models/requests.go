// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package models

// SearchRequest holds /search query parameters.
// Limit is zero when the client sent none or an unusable value.
type SearchRequest struct {
	Query string `label:"Query" validate:"required,max=500"`
	Limit int    `label:"Limit" validate:"min=0,max=100"`
}

// VideoRequest holds the {videoId} path parameter of /audio and /stream.
type VideoRequest struct {
	VideoID string `label:"Video ID" validate:"required,videoid"`
}

// ImportRequest is the POST /import body.
type ImportRequest struct {
	URL string `json:"url" label:"URL" validate:"required,max=2048,httpurl"`
}
