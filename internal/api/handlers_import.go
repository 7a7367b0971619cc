// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/ytgate/internal/extractor"
	"github.com/tomtom215/ytgate/internal/mapper"
	"github.com/tomtom215/ytgate/internal/models"
	"github.com/tomtom215/ytgate/internal/validation"
)

// maxImportBodyBytes bounds the POST /import body.
const maxImportBodyBytes = 64 << 10

// Import handles POST /import with body {"url": "..."}.
//
// URLs containing "list=" are imported as playlists with two yt-dlp runs
// (flat entry listing, then playlist metadata). Anything else is treated as
// a single video and returned as a one-track playlist.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	var req models.ImportRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondFailure(w, r, "import", err)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		respondFailure(w, r, "import", err)
		return
	}

	var (
		result models.PlaylistResult
		err    error
	)
	if extractor.IsPlaylistURL(req.URL) {
		result, err = h.importPlaylist(r.Context(), req.URL)
	} else {
		result, err = h.importVideo(r.Context(), req.URL)
	}
	if err != nil {
		respondFailure(w, r, "import", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.ImportResponse{
		Data:   result,
		Source: models.Source,
	})
}

func (h *Handler) importPlaylist(ctx context.Context, url string) (models.PlaylistResult, error) {
	out, err := h.extractor.PlaylistEntries(ctx, url)
	if err != nil {
		return models.PlaylistResult{}, err
	}
	tracks := mapper.PlaylistTracks(mapper.ParseLines(out))

	infoOut, err := h.extractor.PlaylistInfo(ctx, url)
	if err != nil {
		return models.PlaylistResult{}, err
	}
	info, err := mapper.ParseSingle(infoOut)
	if err != nil {
		return models.PlaylistResult{}, err
	}

	return mapper.Playlist(info, tracks), nil
}

func (h *Handler) importVideo(ctx context.Context, url string) (models.PlaylistResult, error) {
	out, err := h.extractor.Video(ctx, url)
	if err != nil {
		return models.PlaylistResult{}, err
	}
	entry, err := mapper.ParseSingle(out)
	if err != nil {
		return models.PlaylistResult{}, err
	}
	return mapper.SingleVideoResult(entry), nil
}

// decodeJSONBody decodes a size-limited JSON object body into dst.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		// An empty body reads as an empty object.
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
}
