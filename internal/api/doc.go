// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

/*
Package api provides the HTTP surface of the gateway.

Routes (chi):

	GET  /health             {"status":"ok","version":"1.0.0"}
	GET  /health/live        liveness, always 200
	GET  /health/ready       200 or 503 from the yt-dlp probe and breaker state
	GET  /search?q=&limit=   {"results":[...],"source":"yt-dlp"}
	GET  /audio/{videoId}    {"audioUrl",...,"source":"yt-dlp"}
	GET  /stream/{videoId}   raw audio bytes via the streaming proxy
	POST /import {"url"}     {"data":{id,title,author,thumbnail,tracks},"source"}
	GET  /metrics            Prometheus exposition

Every failure before a response is committed is written as {"error": "..."}.
errorResponse holds the full mapping of error types to status codes. A
/stream failure after the upstream status was forwarded cannot be reported
that way; the handler aborts the connection with http.ErrAbortHandler.

Middleware order: request ID, real IP, access log, panic recovery, CORS,
security headers, Prometheus metrics, then per-IP rate limiting for the
media routes.
*/
package api
