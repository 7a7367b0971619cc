// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package mapper

import (
	"fmt"
	"strings"

	"github.com/tomtom215/ytgate/internal/models"
)

const (
	// MaxSearchResults caps /search output no matter how many entries
	// yt-dlp was asked for.
	MaxSearchResults = 15

	// VideoIDLength is the length of a playable YouTube video ID.
	VideoIDLength = 11

	// UnknownArtist is used for tracks with neither uploader nor channel.
	UnknownArtist = "Unknown"

	channelPrefix  = "UC"
	playlistPrefix = "PL"
)

// ThumbnailURL returns the templated thumbnail for a video ID.
func ThumbnailURL(videoID string) string {
	return fmt.Sprintf(models.ThumbnailTemplate, videoID)
}

func resolveThumbnail(e *Entry, id string) string {
	if t := e.firstThumbnail(); t != "" {
		return t
	}
	return ThumbnailURL(id)
}

// IsPlayableID reports whether id looks like a video rather than a channel
// or playlist.
func IsPlayableID(id string) bool {
	if len(id) != VideoIDLength {
		return false
	}
	return !strings.HasPrefix(id, channelPrefix) && !strings.HasPrefix(id, playlistPrefix)
}

// SearchResults filters entries down to playable videos and caps the list.
func SearchResults(entries []Entry) []models.MediaItem {
	results := make([]models.MediaItem, 0, min(len(entries), MaxSearchResults))

	for i := range entries {
		e := &entries[i]
		if !IsPlayableID(e.ID) {
			continue
		}

		results = append(results, models.MediaItem{
			ID:        e.ID,
			VideoID:   e.ID,
			Title:     e.Title,
			Uploader:  e.author(),
			Duration:  e.Duration,
			Thumbnail: resolveThumbnail(e, e.ID),
		})

		if len(results) == MaxSearchResults {
			break
		}
	}
	return results
}

// PlaylistTracks maps flat playlist entries in order without ID filtering.
// A missing duration becomes 0.
func PlaylistTracks(entries []Entry) []models.MediaItem {
	tracks := make([]models.MediaItem, 0, len(entries))
	for i := range entries {
		t := track(&entries[i])
		if t.Duration == nil {
			zero := 0.0
			t.Duration = &zero
		}
		tracks = append(tracks, t)
	}
	return tracks
}

func track(e *Entry) models.MediaItem {
	artist := e.author()
	if artist == "" {
		artist = UnknownArtist
	}

	return models.MediaItem{
		ID:        e.ID,
		VideoID:   e.ID,
		Title:     e.Title,
		Artist:    artist,
		Duration:  e.Duration,
		Thumbnail: resolveThumbnail(e, e.ID),
	}
}

// Playlist combines playlist metadata with its already mapped tracks. The
// thumbnail falls back to the first track's.
func Playlist(info Entry, tracks []models.MediaItem) models.PlaylistResult {
	thumbnail := info.firstThumbnail()
	if thumbnail == "" && len(tracks) > 0 {
		thumbnail = tracks[0].Thumbnail
	}
	if tracks == nil {
		tracks = []models.MediaItem{}
	}

	return models.PlaylistResult{
		ID:        info.ID,
		Title:     info.Title,
		Author:    info.author(),
		Thumbnail: thumbnail,
		Tracks:    tracks,
	}
}

// SingleVideoResult wraps one video as a playlist of one track.
func SingleVideoResult(e Entry) models.PlaylistResult {
	return models.PlaylistResult{
		ID:        e.ID,
		Title:     e.Title,
		Author:    e.author(),
		Thumbnail: resolveThumbnail(&e, e.ID),
		Tracks:    []models.MediaItem{track(&e)},
	}
}

// Audio builds the /audio payload. videoID is the requested ID, used for
// the thumbnail fallback.
func Audio(e Entry, videoID string) models.AudioDescriptor {
	return models.AudioDescriptor{
		AudioURL:  e.URL,
		Title:     e.Title,
		Artist:    e.author(),
		Thumbnail: resolveThumbnail(&e, videoID),
		Duration:  e.Duration,
		Source:    models.Source,
	}
}
