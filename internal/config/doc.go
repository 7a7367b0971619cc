// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

/*
Package config loads and validates YTGate configuration.

# Configuration Sources

Settings are layered with Koanf v2, later layers winning:

 1. Struct defaults (defaultConfig)
 2. Optional YAML file: $CONFIG_PATH, ./config.yaml, /etc/ytgate/config.yaml
 3. Environment variables, mapped explicitly in envMappings

# Environment Variables

	PORT / HTTP_PORT               listen port (default 3001)
	HTTP_HOST                      listen host (default 0.0.0.0)
	SHUTDOWN_TIMEOUT               graceful shutdown bound (default 30s)
	YTDLP_PATH                     yt-dlp binary (default yt-dlp)
	YTDLP_TIMEOUT                  per-invocation bound, 0 disables (default 60s)
	YTDLP_SEARCH_LIMIT             results requested from yt-dlp (default 20)
	YTDLP_STREAM_FORMAT            format selector for /stream
	YTDLP_PROBE_INTERVAL           readiness probe period (default 5m)
	PROXY_MAX_REDIRECTS            redirect bound (default 5)
	PROXY_DIAL_TIMEOUT             outbound dial timeout (default 10s)
	PROXY_RESPONSE_HEADER_TIMEOUT  outbound header timeout (default 15s)
	CORS_ORIGINS                   comma-separated list (default *)
	RATE_LIMIT_REQUESTS            requests per window per IP (default 120)
	RATE_LIMIT_WINDOW              window (default 1m)
	DISABLE_RATE_LIMIT             disable rate limiting
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example YAML

	server:
	  port: 3001
	extractor:
	  binary: /usr/local/bin/yt-dlp
	  timeout: 45s
	proxy:
	  dial_timeout: 5s
	security:
	  cors_origins: [https://app.example.com]
*/
package config
