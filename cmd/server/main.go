// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/ytgate/internal/api"
	"github.com/tomtom215/ytgate/internal/config"
	"github.com/tomtom215/ytgate/internal/extractor"
	"github.com/tomtom215/ytgate/internal/logging"
	"github.com/tomtom215/ytgate/internal/proxy"
	"github.com/tomtom215/ytgate/internal/supervisor"
	"github.com/tomtom215/ytgate/internal/supervisor/services"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", api.Version).
		Str("addr", cfg.Server.Addr()).
		Str("yt_dlp", cfg.Extractor.Binary).
		Dur("yt_dlp_timeout", cfg.Extractor.Timeout).
		Bool("breaker_enabled", cfg.Extractor.Breaker.Enabled).
		Msg("Starting YTGate with supervisor tree")

	if cfg.HasWildcardCORS() && cfg.IsProduction() {
		logging.Warn().Msg("CORS allows any origin in production")
	}

	client, breaker := buildExtractor(cfg)
	prober := extractor.NewProber(client)

	streamer := proxy.NewStreamer(proxy.Config{
		MaxRedirects:          cfg.Proxy.MaxRedirects,
		DialTimeout:           cfg.Proxy.DialTimeout,
		ResponseHeaderTimeout: cfg.Proxy.ResponseHeaderTimeout,
		UserAgent:             cfg.Proxy.UserAgent,
		BufferSize:            cfg.Proxy.BufferSize,
	})

	handlerOpts := []api.HandlerOption{
		api.WithProber(prober),
		api.WithSearchLimit(cfg.Extractor.SearchLimit),
	}
	if breaker != nil {
		handlerOpts = append(handlerOpts, api.WithBreaker(breaker))
	}
	handler := api.NewHandler(client, streamer, handlerOpts...)

	mwConfig := api.DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled

	router := api.NewRouter(handler, api.NewChiMiddleware(mwConfig))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeConfig)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddProbeService(services.NewProbeService(prober, cfg.Extractor.ProbeInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	watchConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// buildExtractor assembles the yt-dlp client. The returned breaker is nil
// when the circuit breaker is disabled.
func buildExtractor(cfg *config.Config) (*extractor.Client, *extractor.BreakerRunner) {
	var runner extractor.Runner = extractor.NewExecRunner(cfg.Extractor.Binary, cfg.Extractor.Timeout)

	var breaker *extractor.BreakerRunner
	if b := cfg.Extractor.Breaker; b.Enabled {
		breaker = extractor.NewBreakerRunner(runner, extractor.BreakerSettings{
			MaxRequests:  b.MaxRequests,
			Interval:     b.Interval,
			Timeout:      b.Timeout,
			MinRequests:  b.MinRequests,
			FailureRatio: b.FailureRatio,
		})
		runner = breaker
	}

	client := extractor.NewClient(runner,
		extractor.WithSearchLimit(cfg.Extractor.SearchLimit),
		extractor.WithStreamFormat(cfg.Extractor.StreamFormat),
	)
	return client, breaker
}

// watchConfig re-applies the log level when the configuration file changes.
// Other settings need a restart.
func watchConfig() {
	path := config.ConfigFilePath()
	if path == "" {
		return
	}

	err := config.WatchConfigFile(path, func() {
		reloaded, err := config.LoadWithKoanf()
		if err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("Ignoring invalid configuration change")
			return
		}
		logging.Init(logging.Config{
			Level:     reloaded.Logging.Level,
			Format:    reloaded.Logging.Format,
			Caller:    reloaded.Logging.Caller,
			Timestamp: true,
		})
		logging.Info().Str("level", reloaded.Logging.Level).Msg("Logging configuration reloaded")
	})
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Configuration file watch unavailable")
	}
}
