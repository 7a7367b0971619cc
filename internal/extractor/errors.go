// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package extractor

import (
	"context"
	"errors"
	"fmt"
)

// ErrExtractorUnavailable is returned while the circuit breaker is open.
var ErrExtractorUnavailable = errors.New("yt-dlp is temporarily unavailable")

// ExternalToolError reports a yt-dlp run that started but did not exit 0.
// Err is set when the run was ended by its context (timeout or client
// disconnect).
type ExternalToolError struct {
	ExitCode int
	Stderr   string
	Err      error
}

// Error returns the tool's diagnostic text when there is any.
func (e *ExternalToolError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	switch {
	case errors.Is(e.Err, context.DeadlineExceeded):
		return "yt-dlp timed out"
	case errors.Is(e.Err, context.Canceled):
		return "yt-dlp was cancelled"
	}
	return fmt.Sprintf("yt-dlp exited with code %d", e.ExitCode)
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}

// TimedOut reports whether the run was killed by its deadline.
func (e *ExternalToolError) TimedOut() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// SpawnError reports that the yt-dlp process could not be started.
type SpawnError struct {
	Binary string
	Err    error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Binary, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
