// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package extractor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// DefaultBinary is the yt-dlp executable looked up on PATH.
const DefaultBinary = "yt-dlp"

// waitDelay bounds how long Run waits for output pipes after the process is killed.
const waitDelay = 5 * time.Second

// Runner executes yt-dlp with the given arguments and returns its stdout.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecRunner runs yt-dlp as a child process, one process per call.
type ExecRunner struct {
	binary  string
	timeout time.Duration
}

// NewExecRunner creates a runner for binary. A zero timeout leaves runs
// bounded only by the caller's context.
func NewExecRunner(binary string, timeout time.Duration) *ExecRunner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &ExecRunner{binary: binary, timeout: timeout}
}

// Binary returns the configured executable.
func (r *ExecRunner) Binary() string {
	return r.binary
}

// Run starts the process, waits for it to exit and returns stdout on exit
// code 0. A non-zero exit yields *ExternalToolError with the trimmed
// stderr; a start failure yields *SpawnError. The process is killed when ctx
// is cancelled or the timeout elapses.
func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return "", &ExternalToolError{
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      ctx.Err(),
		}
	}

	// Start refuses to run once ctx is done.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", &ExternalToolError{ExitCode: -1, Err: ctxErr}
	}

	return "", &SpawnError{Binary: r.binary, Err: err}
}
