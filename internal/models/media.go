// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package models

// Source is the value of the "source" field on every successful payload.
const Source = "yt-dlp"

// ThumbnailTemplate is the fallback thumbnail URL for a video ID.
const ThumbnailTemplate = "https://i.ytimg.com/vi/%s/mqdefault.jpg"

// MediaItem is one playable unit returned to API clients.
//
// Search results carry Uploader and leave it out when yt-dlp has neither an
// uploader nor a channel. Playlist and import tracks carry Artist instead,
// which always has a value ("Unknown" at worst).
//
// Example search item:
//
//	{
//	  "id": "dQw4w9WgXcQ",
//	  "videoId": "dQw4w9WgXcQ",
//	  "title": "Never Gonna Give You Up",
//	  "uploader": "Rick Astley",
//	  "duration": 213,
//	  "thumbnail": "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"
//	}
type MediaItem struct {
	ID        string   `json:"id"`
	VideoID   string   `json:"videoId"`
	Title     string   `json:"title"`
	Uploader  string   `json:"uploader,omitempty"`
	Artist    string   `json:"artist,omitempty"`
	Duration  *float64 `json:"duration,omitempty"`
	Thumbnail string   `json:"thumbnail"`
}

// PlaylistResult is an imported playlist or single video.
// Tracks keep the order in which yt-dlp listed them.
type PlaylistResult struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Author    string      `json:"author,omitempty"`
	Thumbnail string      `json:"thumbnail,omitempty"`
	Tracks    []MediaItem `json:"tracks"`
}

// AudioDescriptor describes a resolved audio stream for /audio/{videoId}.
// AudioURL is the raw, time-limited upstream URL.
type AudioDescriptor struct {
	AudioURL  string   `json:"audioUrl"`
	Title     string   `json:"title"`
	Artist    string   `json:"artist,omitempty"`
	Thumbnail string   `json:"thumbnail"`
	Duration  *float64 `json:"duration,omitempty"`
	Source    string   `json:"source"`
}
