// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package extractor

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/ytgate/internal/logging"
	"github.com/tomtom215/ytgate/internal/metrics"
)

// ProbeStatus is the outcome of the most recent probe.
type ProbeStatus struct {
	Available bool
	Version   string
	LastError string
	CheckedAt time.Time
}

// Prober runs `yt-dlp --version` and remembers the result for readiness checks.
type Prober struct {
	client *Client

	mu     sync.RWMutex
	status ProbeStatus
}

// NewProber creates a prober. Status reports unavailable until the first
// Probe completes.
func NewProber(client *Client) *Prober {
	return &Prober{client: client}
}

// Probe runs the version check once and records the result.
func (p *Prober) Probe(ctx context.Context) error {
	version, err := p.client.Version(ctx)

	status := ProbeStatus{
		Available: err == nil && version != "",
		Version:   version,
		CheckedAt: time.Now(),
	}
	if err != nil {
		status.LastError = err.Error()
	}

	p.mu.Lock()
	changed := p.status.Available != status.Available || p.status.CheckedAt.IsZero()
	p.status = status
	p.mu.Unlock()

	metrics.SetExtractorAvailable(status.Available)

	if changed {
		if status.Available {
			logging.Info().Str("version", version).Msg("yt-dlp available")
		} else {
			logging.Error().Err(err).Msg("yt-dlp unavailable")
		}
	}

	return err
}

// Status returns the latest probe result.
func (p *Prober) Status() ProbeStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}
