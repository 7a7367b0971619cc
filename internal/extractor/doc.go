// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

/*
Package extractor invokes yt-dlp.

ExecRunner starts one process per call with exec.CommandContext, captures
stdout and stderr, and classifies failures:

  - *ExternalToolError: the process ran and exited non-zero, or was killed by
    its deadline or by the caller's context
  - *SpawnError: the binary could not be started

No call is retried. BreakerRunner wraps any Runner in a sony/gobreaker
circuit breaker that opens only on spawn failures and timeouts; while open,
calls fail fast with ErrExtractorUnavailable.

Client holds the argument lists for each gateway operation (search, audio,
stream source, playlist listing and metadata, single video, version) and
records extractor metrics. Prober feeds /health/ready.

Wiring:

	runner := extractor.NewBreakerRunner(
	    extractor.NewExecRunner(cfg.Extractor.Binary, cfg.Extractor.Timeout),
	    extractor.DefaultBreakerSettings(),
	)
	client := extractor.NewClient(runner, extractor.WithSearchLimit(20))
	out, err := client.Search(ctx, "lofi beats", 0)
*/
package extractor
