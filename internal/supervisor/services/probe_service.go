// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package services

import (
	"context"
	"time"
)

// Prober checks extractor availability; see extractor.Prober.
type Prober interface {
	Probe(ctx context.Context) error
}

// DefaultProbeInterval is used for non-positive intervals.
const DefaultProbeInterval = 5 * time.Minute

// probeTimeout bounds a single probe run.
const probeTimeout = 30 * time.Second

// ProbeService probes once at start and then every interval. Probe
// failures are state, not service failures: the prober records them and
// Serve keeps running.
type ProbeService struct {
	prober   Prober
	interval time.Duration
	name     string
}

// NewProbeService creates a ProbeService.
func NewProbeService(prober Prober, interval time.Duration) *ProbeService {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	return &ProbeService{
		prober:   prober,
		interval: interval,
		name:     "extractor-probe",
	}
}

// Serve implements suture.Service.
func (p *ProbeService) Serve(ctx context.Context) error {
	p.runOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.runOnce(ctx)
		}
	}
}

func (p *ProbeService) runOnce(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	_ = p.prober.Probe(probeCtx)
}

// String implements fmt.Stringer for suture's logs.
func (p *ProbeService) String() string {
	return p.name
}
