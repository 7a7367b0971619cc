// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package mapper

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseLines_SkipsMalformed(t *testing.T) {
	t.Parallel()

	output := strings.Join([]string{
		`{"id":"aaaaaaaaaaa","title":"one"}`,
		`{"id":"bbbbbbbbbbb","title":"two"}`,
		`WARNING: [youtube] unable to extract something`,
		`{"id":"ccccccccccc","title":"three"}`,
		`{"id":"ddddddddddd","title":"four"}`,
	}, "\n")

	entries := ParseLines(output)
	if len(entries) != 4 {
		t.Fatalf("ParseLines() returned %d entries, want 4", len(entries))
	}

	want := []string{"one", "two", "three", "four"}
	for i, e := range entries {
		if e.Title != want[i] {
			t.Errorf("entries[%d].Title = %q, want %q", i, e.Title, want[i])
		}
	}
}

func TestParseLines_EdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		output string
		want   int
	}{
		{"empty", "", 0},
		{"whitespace", "  \n\n  ", 0},
		{"null lines", "null\n{\"id\":\"x\"}\nnull", 1},
		{"crlf and blank lines", "{\"id\":\"a\"}\r\n\r\n{\"id\":\"b\"}\r\n", 2},
		{"non-object json", "[1,2]\n\"text\"\n{\"id\":\"a\"}", 1},
		{"truncated object", "{\"id\":\"a\"}\n{\"id\":", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := len(ParseLines(tt.output)); got != tt.want {
				t.Errorf("len(ParseLines()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseSingle(t *testing.T) {
	t.Parallel()

	e, err := ParseSingle("\n{\"id\":\"dQw4w9WgXcQ\",\"title\":\"Song\",\"duration\":213.5,\"url\":\"https://media.example/a\"}\n")
	if err != nil {
		t.Fatalf("ParseSingle() error = %v", err)
	}
	if e.ID != "dQw4w9WgXcQ" || e.Duration == nil || *e.Duration != 213.5 || e.URL != "https://media.example/a" {
		t.Errorf("ParseSingle() = %+v", e)
	}

	for _, bad := range []string{"", "null", "not json"} {
		if _, err := ParseSingle(bad); err == nil {
			t.Errorf("ParseSingle(%q) = nil error", bad)
		}
	}
	if _, err := ParseSingle("  "); !errors.Is(err, ErrEmptyOutput) {
		t.Errorf("ParseSingle(blank) error = %v, want ErrEmptyOutput", err)
	}
}

func TestSearchResults_Filter(t *testing.T) {
	t.Parallel()

	entries := ParseLines(strings.Join([]string{
		`{"id":"dQw4w9WgXcQ","title":"video","uploader":"Rick","duration":213}`,
		`{"id":"UCuAXFkgsw1L7xaCfnd5JJOw","title":"channel"}`,
		`{"id":"PLFgquLnL59alCl_2TQvOiD5Vgm1hCaGSI","title":"playlist"}`,
		`{"id":"UCabcdefghi","title":"channel shaped like a video id"}`,
		`{"id":"short","title":"bad length"}`,
		`{"title":"missing id"}`,
		`{"id":"9bZkp7q19f0","title":"no uploader","channel":"officialpsy"}`,
		`{"id":"kJQP7kiw5Fk","title":"anonymous"}`,
	}, "\n"))

	results := SearchResults(entries)
	if len(results) != 3 {
		t.Fatalf("SearchResults() returned %d items, want 3: %+v", len(results), results)
	}

	for _, r := range results {
		if len(r.ID) != VideoIDLength || strings.HasPrefix(r.ID, "UC") || strings.HasPrefix(r.ID, "PL") {
			t.Errorf("unplayable ID %q in search results", r.ID)
		}
		if r.VideoID != r.ID {
			t.Errorf("VideoID = %q, want %q", r.VideoID, r.ID)
		}
		if r.Artist != "" {
			t.Errorf("search item has artist %q, want none", r.Artist)
		}
	}

	if results[0].Uploader != "Rick" || results[0].Duration == nil || *results[0].Duration != 213 {
		t.Errorf("results[0] = %+v", results[0])
	}
	if results[1].Uploader != "officialpsy" {
		t.Errorf("results[1].Uploader = %q, want channel fallback", results[1].Uploader)
	}
	if results[2].Uploader != "" || results[2].Duration != nil {
		t.Errorf("results[2] = %+v, want no uploader and no duration", results[2])
	}
}

func TestSearchResults_Cap(t *testing.T) {
	t.Parallel()

	var lines []string
	for i := 0; i < 40; i++ {
		lines = append(lines, fmt.Sprintf(`{"id":"video%06d","title":"t%d"}`, i, i))
	}

	results := SearchResults(ParseLines(strings.Join(lines, "\n")))
	if len(results) != MaxSearchResults {
		t.Fatalf("len = %d, want %d", len(results), MaxSearchResults)
	}
	if results[14].ID != "video000014" {
		t.Errorf("last result = %q, want the 15th upstream entry", results[14].ID)
	}
}

func TestThumbnailResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "thumbnails list first",
			entry: Entry{ID: "dQw4w9WgXcQ", Thumbnail: "https://t/direct.jpg", Thumbnails: []Thumbnail{{URL: "https://t/0.jpg"}, {URL: "https://t/1.jpg"}}},
			want:  "https://t/0.jpg",
		},
		{
			name:  "direct field",
			entry: Entry{ID: "dQw4w9WgXcQ", Thumbnail: "https://t/direct.jpg"},
			want:  "https://t/direct.jpg",
		},
		{
			name:  "empty list entry",
			entry: Entry{ID: "dQw4w9WgXcQ", Thumbnails: []Thumbnail{{URL: ""}}},
			want:  "https://i.ytimg.com/vi/dQw4w9WgXcQ/mqdefault.jpg",
		},
		{
			name:  "template",
			entry: Entry{ID: "dQw4w9WgXcQ"},
			want:  "https://i.ytimg.com/vi/dQw4w9WgXcQ/mqdefault.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SearchResults([]Entry{tt.entry})[0].Thumbnail; got != tt.want {
				t.Errorf("search thumbnail = %q, want %q", got, tt.want)
			}
			if got := PlaylistTracks([]Entry{tt.entry})[0].Thumbnail; got != tt.want {
				t.Errorf("track thumbnail = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlaylistTracks(t *testing.T) {
	t.Parallel()

	output := strings.Join([]string{
		`{"id":"ccccccccccc","title":"third-listed-first","uploader":"A","duration":10}`,
		`null`,
		`{"id":"UCnotfiltered","title":"kept","channel":"B"}`,
		`garbage`,
		`{"id":"aaaaaaaaaaa","title":"last"}`,
	}, "\n")

	tracks := PlaylistTracks(ParseLines(output))
	if len(tracks) != 3 {
		t.Fatalf("len(tracks) = %d, want 3", len(tracks))
	}

	wantIDs := []string{"ccccccccccc", "UCnotfiltered", "aaaaaaaaaaa"}
	wantArtists := []string{"A", "B", UnknownArtist}
	wantDurations := []float64{10, 0, 0}
	for i, tr := range tracks {
		if tr.ID != wantIDs[i] {
			t.Errorf("tracks[%d].ID = %q, want %q", i, tr.ID, wantIDs[i])
		}
		if tr.Artist != wantArtists[i] {
			t.Errorf("tracks[%d].Artist = %q, want %q", i, tr.Artist, wantArtists[i])
		}
		if tr.Duration == nil || *tr.Duration != wantDurations[i] {
			t.Errorf("tracks[%d].Duration = %v, want %v", i, tr.Duration, wantDurations[i])
		}
		if tr.Uploader != "" {
			t.Errorf("tracks[%d].Uploader = %q, want empty", i, tr.Uploader)
		}
	}
}

func TestPlaylist(t *testing.T) {
	t.Parallel()

	tracks := PlaylistTracks([]Entry{{ID: "aaaaaaaaaaa", Thumbnail: "https://t/a.jpg"}})

	p := Playlist(Entry{ID: "PL1", Title: "Mix", Channel: "Someone"}, tracks)
	if p.ID != "PL1" || p.Title != "Mix" || p.Author != "Someone" {
		t.Errorf("Playlist() = %+v", p)
	}
	if p.Thumbnail != "https://t/a.jpg" {
		t.Errorf("Thumbnail = %q, want first track's", p.Thumbnail)
	}

	p = Playlist(Entry{ID: "PL1", Thumbnails: []Thumbnail{{URL: "https://t/pl.jpg"}}}, tracks)
	if p.Thumbnail != "https://t/pl.jpg" {
		t.Errorf("Thumbnail = %q, want playlist's own", p.Thumbnail)
	}

	empty := Playlist(Entry{ID: "PL2"}, nil)
	if empty.Tracks == nil || len(empty.Tracks) != 0 || empty.Thumbnail != "" {
		t.Errorf("empty Playlist() = %+v", empty)
	}
}

func TestSingleVideoResult(t *testing.T) {
	t.Parallel()

	d := 212.0
	p := SingleVideoResult(Entry{ID: "dQw4w9WgXcQ", Title: "Song", Uploader: "Rick", Duration: &d})

	if p.ID != "dQw4w9WgXcQ" || p.Author != "Rick" || len(p.Tracks) != 1 {
		t.Fatalf("SingleVideoResult() = %+v", p)
	}
	if p.Thumbnail != ThumbnailURL("dQw4w9WgXcQ") || p.Tracks[0].Thumbnail != p.Thumbnail {
		t.Errorf("thumbnail = %q / %q", p.Thumbnail, p.Tracks[0].Thumbnail)
	}
	if p.Tracks[0].Artist != "Rick" || *p.Tracks[0].Duration != 212 {
		t.Errorf("track = %+v", p.Tracks[0])
	}
}

func TestSingleVideoResult_KeepsMissingDuration(t *testing.T) {
	t.Parallel()

	p := SingleVideoResult(Entry{ID: "dQw4w9WgXcQ", Title: "Live stream"})
	if len(p.Tracks) != 1 {
		t.Fatalf("tracks = %d, want 1", len(p.Tracks))
	}
	if p.Tracks[0].Duration != nil {
		t.Errorf("Duration = %v, want nil for a video without duration", *p.Tracks[0].Duration)
	}
}

func TestAudio(t *testing.T) {
	t.Parallel()

	a := Audio(Entry{URL: "https://media.example/x", Title: "Song", Channel: "Chan"}, "dQw4w9WgXcQ")
	if a.AudioURL != "https://media.example/x" || a.Artist != "Chan" || a.Source != "yt-dlp" {
		t.Errorf("Audio() = %+v", a)
	}
	if a.Thumbnail != "https://i.ytimg.com/vi/dQw4w9WgXcQ/mqdefault.jpg" {
		t.Errorf("Thumbnail = %q, want template for requested ID", a.Thumbnail)
	}
	if a.Duration != nil {
		t.Errorf("Duration = %v, want nil", *a.Duration)
	}
}

func TestStreamURL(t *testing.T) {
	t.Parallel()

	if got, err := StreamURL(Entry{URL: "https://rr1.googlevideo.com/videoplayback?x=1"}, "id"); err != nil || got == "" {
		t.Errorf("StreamURL() = %q, %v", got, err)
	}

	for _, u := range []string{"", "file:///etc/passwd", "/relative", "https://"} {
		_, err := StreamURL(Entry{URL: u}, "dQw4w9WgXcQ")
		var resErr *ResolutionError
		if !errors.As(err, &resErr) || !errors.Is(err, ErrNoPlayableURL) {
			t.Errorf("StreamURL(%q) error = %v, want ResolutionError", u, err)
			continue
		}
		if resErr.VideoID != "dQw4w9WgXcQ" {
			t.Errorf("VideoID = %q", resErr.VideoID)
		}
	}
}
