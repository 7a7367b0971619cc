// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/ytgate/internal/extractor"
)

// fakeExtractor returns canned output per operation and records arguments.
type fakeExtractor struct {
	mu sync.Mutex

	searchOut, audioOut, streamOut string
	entriesOut, infoOut, videoOut  string
	err                            error
	lastQuery, lastTarget          string
	lastLimit                      int
	calls                          []string
}

func (f *fakeExtractor) record(op, target string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, op)
	f.lastTarget = target
}

func (f *fakeExtractor) Search(_ context.Context, query string, limit int) (string, error) {
	f.record("search", query)
	f.mu.Lock()
	f.lastQuery, f.lastLimit = query, limit
	f.mu.Unlock()
	return f.searchOut, f.err
}

func (f *fakeExtractor) Audio(_ context.Context, id string) (string, error) {
	f.record("audio", id)
	return f.audioOut, f.err
}

func (f *fakeExtractor) StreamSource(_ context.Context, id string) (string, error) {
	f.record("stream", id)
	return f.streamOut, f.err
}

func (f *fakeExtractor) PlaylistEntries(_ context.Context, url string) (string, error) {
	f.record("playlist", url)
	return f.entriesOut, f.err
}

func (f *fakeExtractor) PlaylistInfo(_ context.Context, url string) (string, error) {
	f.record("playlist_info", url)
	return f.infoOut, f.err
}

func (f *fakeExtractor) Video(_ context.Context, url string) (string, error) {
	f.record("video", url)
	return f.videoOut, f.err
}

func (f *fakeExtractor) callList() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// fakeStreamer records its inputs and runs fn, or writes body with 200.
type fakeStreamer struct {
	target, rangeHeader string
	fn                  func(w http.ResponseWriter) (int64, error)
}

func (f *fakeStreamer) Stream(_ context.Context, w http.ResponseWriter, target, rangeHeader string) (int64, error) {
	f.target, f.rangeHeader = target, rangeHeader
	if f.fn != nil {
		return f.fn(w)
	}
	w.WriteHeader(http.StatusOK)
	n, err := io.WriteString(w, "audio-bytes")
	return int64(n), err
}

type fakeProber struct{ status extractor.ProbeStatus }

func (f fakeProber) Status() extractor.ProbeStatus { return f.status }

type fakeBreaker string

func (f fakeBreaker) State() string { return string(f) }

// testRouter builds the full chi stack with rate limiting disabled.
func testRouter(ext Extractor, streamer MediaStreamer, opts ...HandlerOption) http.Handler {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(NewHandler(ext, streamer, opts...), NewChiMiddleware(cfg)).SetupChi()
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("response is not JSON: %v: %q", err, rec.Body.String())
	}
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantMsg string) {
	t.Helper()
	if rec.Code != wantStatus {
		t.Errorf("status = %d, want %d (body %q)", rec.Code, wantStatus, rec.Body.String())
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != wantMsg {
		t.Errorf("error = %q, want %q", body["error"], wantMsg)
	}
}
