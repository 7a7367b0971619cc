// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

/*
Package main is the entry point for the YTGate server.

YTGate exposes yt-dlp over HTTP for audio players: search, audio metadata,
playlist import, and a byte-for-byte streaming proxy that supports Range
requests so clients can seek.

# Application Architecture

The server runs under a Suture v4 supervision tree:

	RootSupervisor ("ytgate")
	├── ProbeSupervisor ("probe-layer")
	│   └── extractor-probe (periodic `yt-dlp --version`)
	└── APISupervisor ("api-layer")
	    └── http-server

Component initialization order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, level and format from configuration
 3. Extractor: exec runner, optional circuit breaker, command client, prober
 4. Streaming proxy: outbound HTTP client that follows redirects itself
 5. HTTP: chi router with CORS, rate limiting and Prometheus metrics
 6. Supervisor tree: probe and API layers

# Endpoints

	GET  /health              liveness and version
	GET  /health/live         liveness probe
	GET  /health/ready        readiness (yt-dlp reachable, breaker not open)
	GET  /metrics             Prometheus metrics
	GET  /search?q=&limit=    search results
	GET  /audio/{videoId}     direct audio URL and metadata
	GET  /stream/{videoId}    proxied audio bytes, Range supported
	POST /import              playlist or single video import

# Configuration

Common environment variables:

	PORT=3001                 listen port
	HTTP_HOST=0.0.0.0         listen host
	YTDLP_PATH=yt-dlp         yt-dlp binary
	YTDLP_TIMEOUT=60s         per-invocation timeout
	LOG_LEVEL=info            trace, debug, info, warn, error
	LOG_FORMAT=json           json or console
	CORS_ORIGINS=*            comma separated origins
	CONFIG_PATH=config.yaml   optional YAML configuration file

When a configuration file is in use, changes to logging.level are applied
without a restart.

# Signal Handling

SIGINT and SIGTERM stop accepting connections and wait up to
server.shutdown_timeout for in-flight requests. Open streams are cut when
the timeout expires.
*/
package main
