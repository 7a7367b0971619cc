// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables (see LoadWithKoanf).
//
// Configuration Categories:
//
//  1. Server: HTTP listener and graceful shutdown
//  2. Extractor: yt-dlp binary, invocation timeout, circuit breaker, probe
//  3. Proxy: outbound streaming client (redirect bound, timeouts, user agent)
//  4. Security: CORS and per-IP rate limiting
//  5. Logging: level, format, caller
//
// Example:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//	srv := &http.Server{Addr: cfg.Server.Addr()}
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Extractor ExtractorConfig `koanf:"extractor"`
	Proxy     ProxyConfig     `koanf:"proxy"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port              int           `koanf:"port"`
	Host              string        `koanf:"host"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	// WriteTimeout bounds the whole response. Zero disables it, which is
	// required for long audio streams.
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ExtractorConfig holds yt-dlp invocation settings.
type ExtractorConfig struct {
	// Binary is the yt-dlp executable name or path.
	Binary string `koanf:"binary"`

	// Timeout bounds a single invocation. Zero disables the bound.
	Timeout time.Duration `koanf:"timeout"`

	// SearchLimit is the number of results requested from yt-dlp when the
	// client does not pass a usable limit.
	SearchLimit int `koanf:"search_limit"`

	// StreamFormat is the -f selector used to resolve /stream sources.
	StreamFormat string `koanf:"stream_format"`

	// ProbeInterval is how often the readiness probe runs `yt-dlp --version`.
	ProbeInterval time.Duration `koanf:"probe_interval"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig configures the circuit breaker around yt-dlp invocations.
type BreakerConfig struct {
	Enabled bool `koanf:"enabled"`

	// MaxRequests allowed through while half-open.
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval is the cyclic period in the closed state after which counts reset.
	Interval time.Duration `koanf:"interval"`

	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration `koanf:"timeout"`

	// MinRequests and FailureRatio decide when the breaker trips.
	MinRequests  uint32  `koanf:"min_requests"`
	FailureRatio float64 `koanf:"failure_ratio"`
}

// ProxyConfig holds the outbound streaming client settings.
type ProxyConfig struct {
	// MaxRedirects is the redirect bound for one stream fetch.
	MaxRedirects          int           `koanf:"max_redirects"`
	DialTimeout           time.Duration `koanf:"dial_timeout"`
	ResponseHeaderTimeout time.Duration `koanf:"response_header_timeout"`
	UserAgent             string        `koanf:"user_agent"`
	// BufferSize is the chunk size used when copying upstream bodies.
	BufferSize int `koanf:"buffer_size"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the server runs with ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
