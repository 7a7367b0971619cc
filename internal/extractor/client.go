// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package extractor

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/ytgate/internal/logging"
	"github.com/tomtom215/ytgate/internal/metrics"
)

// Defaults for Client.
const (
	DefaultSearchLimit  = 20
	DefaultStreamFormat = "bestaudio[ext=m4a]/bestaudio"

	watchURLPrefix = "https://www.youtube.com/watch?v="
	playlistMarker = "list="
)

// Operation names used for metrics and logs.
const (
	OpSearch        = "search"
	OpAudio         = "audio"
	OpStream        = "stream"
	OpPlaylist      = "playlist"
	OpPlaylistInfo  = "playlist_info"
	OpVideo         = "video"
	OpVersion       = "version"
	resultSuccess   = "success"
	resultToolError = "tool_error"
	resultSpawn     = "spawn_error"
	resultTimeout   = "timeout"
	resultCancelled = "cancelled"
	resultRejected  = "rejected"
)

// Client builds yt-dlp argument lists for each gateway operation and runs them.
// It returns raw stdout; turning that into API shapes is the mapper's job.
type Client struct {
	runner       Runner
	searchLimit  int
	streamFormat string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithSearchLimit sets the result count requested from yt-dlp when the
// caller passes none.
func WithSearchLimit(limit int) ClientOption {
	return func(c *Client) {
		if limit > 0 {
			c.searchLimit = limit
		}
	}
}

// WithStreamFormat sets the -f selector used by StreamSource.
func WithStreamFormat(format string) ClientOption {
	return func(c *Client) {
		if format != "" {
			c.streamFormat = format
		}
	}
}

// NewClient creates a Client on top of runner.
func NewClient(runner Runner, opts ...ClientOption) *Client {
	c := &Client{
		runner:       runner,
		searchLimit:  DefaultSearchLimit,
		streamFormat: DefaultStreamFormat,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchLimit returns the default number of results requested from yt-dlp.
func (c *Client) SearchLimit() int {
	return c.searchLimit
}

// Search runs a flat ytsearch for query. A limit <= 0 uses the default.
func (c *Client) Search(ctx context.Context, query string, limit int) (string, error) {
	if limit <= 0 {
		limit = c.searchLimit
	}
	return c.run(ctx, OpSearch, SearchArgs(query, limit))
}

// Audio dumps metadata for the best audio format of videoID.
func (c *Client) Audio(ctx context.Context, videoID string) (string, error) {
	return c.run(ctx, OpAudio, AudioArgs(videoID))
}

// StreamSource dumps metadata for the format used by /stream.
func (c *Client) StreamSource(ctx context.Context, videoID string) (string, error) {
	return c.run(ctx, OpStream, StreamArgs(videoID, c.streamFormat))
}

// PlaylistEntries lists playlist members, one JSON object per line.
func (c *Client) PlaylistEntries(ctx context.Context, url string) (string, error) {
	return c.run(ctx, OpPlaylist, PlaylistEntriesArgs(url))
}

// PlaylistInfo dumps the playlist itself as a single JSON object.
func (c *Client) PlaylistInfo(ctx context.Context, url string) (string, error) {
	return c.run(ctx, OpPlaylistInfo, PlaylistInfoArgs(url))
}

// Video dumps metadata for a single video URL.
func (c *Client) Video(ctx context.Context, url string) (string, error) {
	return c.run(ctx, OpVideo, VideoArgs(url))
}

// Version returns the trimmed `yt-dlp --version` output.
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.run(ctx, OpVersion, []string{"--version"})
	return strings.TrimSpace(out), err
}

func (c *Client) run(ctx context.Context, operation string, args []string) (string, error) {
	start := time.Now()
	out, err := c.runner.Run(ctx, args...)
	duration := time.Since(start)

	result := resultLabel(err)
	metrics.RecordExtractorInvocation(operation, result, duration)

	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("operation", operation).
			Str("result", result).
			Str("target", logging.TruncateValue(args[0])).
			Dur("duration", duration).
			Msg("yt-dlp invocation failed")
		return "", err
	}

	logging.Ctx(ctx).Debug().
		Str("operation", operation).
		Int("stdout_bytes", len(out)).
		Dur("duration", duration).
		Msg("yt-dlp invocation completed")
	return out, nil
}

func resultLabel(err error) string {
	if err == nil {
		return resultSuccess
	}
	if errors.Is(err, ErrExtractorUnavailable) {
		return resultRejected
	}

	var spawnErr *SpawnError
	if errors.As(err, &spawnErr) {
		return resultSpawn
	}

	var toolErr *ExternalToolError
	if errors.As(err, &toolErr) {
		switch {
		case toolErr.TimedOut():
			return resultTimeout
		case errors.Is(toolErr.Err, context.Canceled):
			return resultCancelled
		}
	}
	return resultToolError
}

// IsPlaylistURL reports whether url names a playlist (contains "list=").
func IsPlaylistURL(url string) bool {
	return strings.Contains(url, playlistMarker)
}

// WatchURL returns the canonical watch URL for videoID.
func WatchURL(videoID string) string {
	return watchURLPrefix + videoID
}

// SearchArgs returns the arguments for a flat search.
func SearchArgs(query string, limit int) []string {
	return []string{
		"ytsearch" + strconv.Itoa(limit) + ":" + query,
		"--dump-json",
		"--flat-playlist",
		"--no-warnings",
	}
}

// AudioArgs returns the arguments for a best-audio metadata lookup.
func AudioArgs(videoID string) []string {
	return []string{
		WatchURL(videoID),
		"--dump-json",
		"-f", "bestaudio",
		"--no-warnings",
	}
}

// StreamArgs returns the arguments used to resolve a stream source.
func StreamArgs(videoID, format string) []string {
	return []string{
		WatchURL(videoID),
		"--dump-json",
		"-f", format,
		"--no-warnings",
	}
}

// PlaylistEntriesArgs returns the arguments for a flat playlist listing.
func PlaylistEntriesArgs(url string) []string {
	return []string{
		url,
		"--dump-json",
		"--flat-playlist",
		"--no-warnings",
	}
}

// PlaylistInfoArgs returns the arguments for playlist-level metadata.
func PlaylistInfoArgs(url string) []string {
	return []string{
		url,
		"--dump-single-json",
		"--flat-playlist",
		"--no-warnings",
	}
}

// VideoArgs returns the arguments for a single video lookup.
func VideoArgs(url string) []string {
	return []string{
		url,
		"--dump-json",
		"--no-warnings",
	}
}
