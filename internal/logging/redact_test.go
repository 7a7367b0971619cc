// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package logging

import (
	"strings"
	"testing"
)

func TestRedactURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no query", "https://example.com/a/b", "https://example.com/a/b"},
		{"signed", "https://rr1---sn.googlevideo.com/videoplayback?expire=1&sig=abc", "https://rr1---sn.googlevideo.com/videoplayback?[redacted]"},
		{"relative", "/videoplayback?sig=1", "[invalid-url]"},
		{"garbage", "http://[::1", "[invalid-url]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RedactURL(tt.in); got != tt.want {
				t.Errorf("RedactURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncateValue(t *testing.T) {
	t.Parallel()

	if got := TruncateValue("a\nb\rc"); got != `a\nb\rc` {
		t.Errorf("TruncateValue escaped = %q", got)
	}

	long := strings.Repeat("x", 500)
	got := TruncateValue(long)
	if !strings.HasSuffix(got, "...[truncated]") {
		t.Errorf("expected truncated suffix, got %q", got[len(got)-20:])
	}
	if len(got) != maxLogValueLength+len("...[truncated]") {
		t.Errorf("unexpected truncated length %d", len(got))
	}
}
