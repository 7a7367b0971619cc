// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

/*
Package proxy streams remote media to API clients.

yt-dlp hands out short-lived, token-bearing googlevideo URLs that usually
redirect at least once and cannot be fetched cross-origin from a browser.
Streamer absorbs that chain server-side:

	attempt 0: GET url           (Range forwarded if present)
	3xx + Location -> drain body, resolve Location, attempt+1
	attempt > MaxRedirects      -> ErrTooManyRedirects, no request made
	4xx/5xx        -> *UpstreamError{StatusCode}, nothing written
	2xx            -> status + allow-listed headers, body copied in chunks

Only Content-Type, Content-Length, Accept-Ranges, Content-Range,
Cache-Control and Last-Modified are copied from the upstream response. Cookies
and any upstream auth headers never reach the client.

Errors before the status line is written (*ConnectionError, *UpstreamError,
ErrTooManyRedirects, ErrBadRedirect) leave the ResponseWriter untouched, so
the caller can still send a JSON error. After that point failures are
reported as *InterruptedError and the caller must abort the connection.

The outbound request is bound to the inbound request context: a client that
disconnects cancels the upstream fetch.
*/
package proxy
