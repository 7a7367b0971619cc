// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package logging

import (
	"net/url"
	"strings"
)

const maxLogValueLength = 200

// RedactURL returns scheme, host and path of raw with the query and fragment
// removed. Signed media URLs expose their signature in the query string.
// Unparseable input is reduced to "[invalid-url]".
func RedactURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "[invalid-url]"
	}
	redacted := u.Scheme + "://" + u.Host + u.EscapedPath()
	if u.RawQuery != "" {
		redacted += "?[redacted]"
	}
	return redacted
}

// TruncateValue shortens s to a loggable length and strips line breaks so a
// client-controlled value cannot forge additional log lines.
func TruncateValue(s string) string {
	s = strings.NewReplacer("\n", "\\n", "\r", "\\r").Replace(s)
	if len(s) > maxLogValueLength {
		return s[:maxLogValueLength] + "...[truncated]"
	}
	return s
}
