// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/ytgate/internal/logging"
	"github.com/tomtom215/ytgate/internal/models"
)

// respondJSON writes v as a JSON body.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes the {"error": message} envelope.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, &models.ErrorResponse{Error: message})
}

// respondFailure maps err to a status and envelope and logs it.
func respondFailure(w http.ResponseWriter, r *http.Request, operation string, err error) {
	status, message := errorResponse(err)

	event := logging.Ctx(r.Context()).Error()
	if status < http.StatusInternalServerError {
		event = logging.Ctx(r.Context()).Warn()
	}
	event.Err(err).
		Str("operation", operation).
		Int("status", status).
		Msg("Request failed")

	respondError(w, status, message)
}

// parseIntParam parses a leading integer the way JavaScript's parseInt
// does ("25abc" is 25), returning defaultValue when there is none.
func parseIntParam(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	var result int
	if _, err := fmt.Sscanf(value, "%d", &result); err != nil {
		return defaultValue
	}
	return result
}

// videoIDParam returns the {videoId} route parameter.
func videoIDParam(r *http.Request) string {
	return chi.URLParam(r, "videoId")
}
