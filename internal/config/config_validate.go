// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/ytgate/internal/logging"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateExtractor(); err != nil {
		return err
	}

	if err := c.validateProxy(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Server.Environment != "" && !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

// Extractor bounds
const (
	maxSearchLimit   = 100
	minProbeInterval = 10 * time.Second
)

func (c *Config) validateExtractor() error {
	if strings.TrimSpace(c.Extractor.Binary) == "" {
		return fmt.Errorf("YTDLP_PATH must not be empty")
	}
	if c.Extractor.Timeout < 0 {
		return fmt.Errorf("YTDLP_TIMEOUT must not be negative")
	}
	if c.Extractor.SearchLimit < 1 || c.Extractor.SearchLimit > maxSearchLimit {
		return fmt.Errorf("YTDLP_SEARCH_LIMIT must be between 1 and %d", maxSearchLimit)
	}
	if strings.TrimSpace(c.Extractor.StreamFormat) == "" {
		return fmt.Errorf("YTDLP_STREAM_FORMAT must not be empty")
	}
	if c.Extractor.ProbeInterval < minProbeInterval {
		return fmt.Errorf("YTDLP_PROBE_INTERVAL must be at least %v", minProbeInterval)
	}
	return c.validateBreaker()
}

func (c *Config) validateBreaker() error {
	b := c.Extractor.Breaker
	if !b.Enabled {
		return nil
	}
	if b.MaxRequests == 0 {
		return fmt.Errorf("YTDLP_BREAKER_MAX_REQUESTS must be at least 1")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("YTDLP_BREAKER_TIMEOUT must be positive")
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("YTDLP_BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	return nil
}

// Proxy bounds
const (
	maxRedirectBound = 20
	minBufferSize    = 1024
	maxBufferSize    = 1 << 20
)

func (c *Config) validateProxy() error {
	if c.Proxy.MaxRedirects < 0 || c.Proxy.MaxRedirects > maxRedirectBound {
		return fmt.Errorf("PROXY_MAX_REDIRECTS must be between 0 and %d", maxRedirectBound)
	}
	if c.Proxy.DialTimeout <= 0 {
		return fmt.Errorf("PROXY_DIAL_TIMEOUT must be positive")
	}
	if c.Proxy.ResponseHeaderTimeout <= 0 {
		return fmt.Errorf("PROXY_RESPONSE_HEADER_TIMEOUT must be positive")
	}
	if c.Proxy.BufferSize < minBufferSize || c.Proxy.BufferSize > maxBufferSize {
		return fmt.Errorf("PROXY_BUFFER_SIZE must be between %d and %d", minBufferSize, maxBufferSize)
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = 1 * time.Second
	maxRateLimitWindow   = 1 * time.Hour
)

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin (use * to allow all)")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS reports whether any configured origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
