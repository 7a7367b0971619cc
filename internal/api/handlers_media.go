// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package api

import (
	"net/http"

	"github.com/tomtom215/ytgate/internal/mapper"
	"github.com/tomtom215/ytgate/internal/models"
	"github.com/tomtom215/ytgate/internal/validation"
)

// maxSearchLimit bounds how many entries one search asks yt-dlp for.
const maxSearchLimit = 100

// Search handles GET /search?q=&limit=.
//
// limit is parsed leniently; zero, negative or unparseable values fall
// back to the configured default and large values are clamped. At most
// mapper.MaxSearchResults items are returned whatever limit was used.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := parseIntParam(q.Get("limit"), h.searchLimit)
	if limit <= 0 {
		limit = h.searchLimit
	}
	limit = min(limit, maxSearchLimit)

	req := models.SearchRequest{Query: q.Get("q"), Limit: limit}
	if err := validation.ValidateStruct(&req); err != nil {
		respondFailure(w, r, "search", err)
		return
	}

	out, err := h.extractor.Search(r.Context(), req.Query, req.Limit)
	if err != nil {
		respondFailure(w, r, "search", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.SearchResponse{
		Results: mapper.SearchResults(mapper.ParseLines(out)),
		Source:  models.Source,
	})
}

// Audio handles GET /audio/{videoId}. The returned audioUrl is the raw,
// expiring upstream URL; /stream proxies the same media instead.
func (h *Handler) Audio(w http.ResponseWriter, r *http.Request) {
	req := models.VideoRequest{VideoID: videoIDParam(r)}
	if err := validation.ValidateStruct(&req); err != nil {
		respondFailure(w, r, "audio", err)
		return
	}

	out, err := h.extractor.Audio(r.Context(), req.VideoID)
	if err != nil {
		respondFailure(w, r, "audio", err)
		return
	}

	entry, err := mapper.ParseSingle(out)
	if err != nil {
		respondFailure(w, r, "audio", err)
		return
	}

	desc := mapper.Audio(entry, req.VideoID)
	respondJSON(w, http.StatusOK, &desc)
}
