// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/ytgate/internal/models"
)

// Health returns the static status payload.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}

// HealthLive reports that the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.LivenessResponse{
		Alive:  true,
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady returns 200 when the last yt-dlp probe succeeded and the
// breaker is not open, 503 otherwise. Without a prober the extractor is
// assumed available.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	resp := models.ReadinessResponse{
		ExtractorAvailable: true,
		BreakerState:       "closed",
		Uptime:             time.Since(h.startTime).Seconds(),
	}

	if h.prober != nil {
		st := h.prober.Status()
		resp.ExtractorAvailable = st.Available
		resp.ExtractorVersion = st.Version
		resp.LastProbeError = st.LastError
	}
	if h.breaker != nil {
		resp.BreakerState = h.breaker.State()
	}

	status := http.StatusOK
	resp.Status = "ready"
	if !resp.ExtractorAvailable || resp.BreakerState == "open" {
		status = http.StatusServiceUnavailable
		resp.Status = "not_ready"
	}

	respondJSON(w, status, &resp)
}
