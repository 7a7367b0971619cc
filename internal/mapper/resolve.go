// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package mapper

import (
	"errors"
	"net/url"
)

// ErrNoPlayableURL means the metadata lookup produced no usable media URL.
var ErrNoPlayableURL = errors.New("no playable URL found")

// ResolutionError reports that a video could not be resolved to a stream.
type ResolutionError struct {
	VideoID string
	Err     error
}

func (e *ResolutionError) Error() string {
	return "could not resolve a playable stream for " + e.VideoID + ": " + e.Err.Error()
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// StreamURL returns the absolute http(s) media URL from a format-selected
// metadata dump.
func StreamURL(e Entry, videoID string) (string, error) {
	if e.URL == "" {
		return "", &ResolutionError{VideoID: videoID, Err: ErrNoPlayableURL}
	}

	u, err := url.Parse(e.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", &ResolutionError{VideoID: videoID, Err: ErrNoPlayableURL}
	}
	return e.URL, nil
}
