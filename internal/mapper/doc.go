// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

// Package mapper turns yt-dlp JSON output into API payloads.
//
// Parsing is tolerant: ParseLines drops lines that are not JSON objects
// instead of failing the batch, since yt-dlp can interleave diagnostics with
// data. Field rules shared by every payload:
//
//	author/artist: uploader, then channel
//	thumbnail:     thumbnails[0].url, then thumbnail, then
//	               https://i.ytimg.com/vi/<id>/mqdefault.jpg
//
// Search results additionally drop channels (UC...), playlists (PL...) and
// any ID that is not 11 characters, and stop at 15 items. Playlist tracks are
// never filtered and keep upstream order.
package mapper
