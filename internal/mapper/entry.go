// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package mapper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/ytgate/internal/logging"
)

// Thumbnail is one element of yt-dlp's "thumbnails" array.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Entry is the subset of a yt-dlp info dict the gateway reads. The same
// shape covers flat listing entries, full video dumps and playlist
// metadata; absent fields stay at their zero value.
type Entry struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Uploader   string      `json:"uploader"`
	Channel    string      `json:"channel"`
	Duration   *float64    `json:"duration"`
	Thumbnail  string      `json:"thumbnail"`
	Thumbnails []Thumbnail `json:"thumbnails"`
	URL        string      `json:"url"`
}

// ErrEmptyOutput is returned by ParseSingle when yt-dlp printed nothing
// usable.
var ErrEmptyOutput = errors.New("yt-dlp returned no metadata")

// ParseLines parses newline-delimited JSON. Lines that are empty, not
// valid JSON, or the literal null are skipped; the rest keep their order.
func ParseLines(output string) []Entry {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return nil
	}

	lines := strings.Split(trimmed, "\n")
	entries := make([]Entry, 0, len(lines))
	skipped := 0

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || line == "null" {
			continue
		}

		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			skipped++
			logging.Debug().
				Err(err).
				Str("line", logging.TruncateValue(line)).
				Msg("Skipping unparseable yt-dlp output line")
			continue
		}
		entries = append(entries, e)
	}

	if skipped > 0 {
		logging.Debug().Int("parsed", len(entries)).Int("skipped", skipped).Msg("Parsed yt-dlp output")
	}
	return entries
}

// ParseSingle parses output holding exactly one JSON object.
func ParseSingle(output string) (Entry, error) {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" || trimmed == "null" {
		return Entry{}, ErrEmptyOutput
	}

	var e Entry
	if err := json.Unmarshal([]byte(trimmed), &e); err != nil {
		return Entry{}, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}
	return e, nil
}

// author returns uploader, then channel, then "".
func (e *Entry) author() string {
	if e.Uploader != "" {
		return e.Uploader
	}
	return e.Channel
}

// firstThumbnail returns thumbnails[0].url, then thumbnail, then "".
func (e *Entry) firstThumbnail() string {
	if len(e.Thumbnails) > 0 && e.Thumbnails[0].URL != "" {
		return e.Thumbnails[0].URL
	}
	return e.Thumbnail
}
