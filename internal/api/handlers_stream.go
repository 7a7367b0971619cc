// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/ytgate/internal/logging"
	"github.com/tomtom215/ytgate/internal/mapper"
	"github.com/tomtom215/ytgate/internal/models"
	"github.com/tomtom215/ytgate/internal/proxy"
	"github.com/tomtom215/ytgate/internal/validation"
)

// Stream handles GET /stream/{videoId}.
//
// The media URL is resolved with one yt-dlp lookup and then proxied, with
// the client's Range header forwarded. Failures before the upstream status
// is committed produce a JSON error; later failures abort the connection,
// which clients see as a truncated body.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := models.VideoRequest{VideoID: videoIDParam(r)}
	if err := validation.ValidateStruct(&req); err != nil {
		respondFailure(w, r, "stream", err)
		return
	}

	out, err := h.extractor.StreamSource(ctx, req.VideoID)
	if err != nil {
		respondFailure(w, r, "stream", err)
		return
	}

	entry, err := mapper.ParseSingle(out)
	if err != nil {
		respondFailure(w, r, "stream", err)
		return
	}

	target, err := mapper.StreamURL(entry, req.VideoID)
	if err != nil {
		respondFailure(w, r, "stream", err)
		return
	}

	rangeHeader := r.Header.Get("Range")
	written, err := h.streamer.Stream(ctx, w, target, rangeHeader)
	if err != nil {
		var interrupted *proxy.InterruptedError
		if errors.As(err, &interrupted) {
			logging.Ctx(ctx).Info().
				Err(err).
				Str("video_id", req.VideoID).
				Int64("bytes", written).
				Msg("Stream aborted after headers were sent")
			panic(http.ErrAbortHandler)
		}
		respondFailure(w, r, "stream", err)
		return
	}

	logging.Ctx(ctx).Debug().
		Str("video_id", req.VideoID).
		Str("range", logging.TruncateValue(rangeHeader)).
		Int64("bytes", written).
		Msg("Stream completed")
}
