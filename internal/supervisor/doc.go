// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

/*
Package supervisor runs the gateway's long-lived services under suture v4.

	ytgate
	├── probe-layer
	│   └── ProbeService (yt-dlp --version on an interval)
	└── api-layer
	    └── HTTPServerService

Crashed services restart with suture's backoff; each layer counts failures
on its own. Supervisor events are logged through sutureslog, which main
points at logging.NewSlogLogger so they share the zerolog stream.

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddProbeService(services.NewProbeService(prober, cfg.Extractor.ProbeInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)
*/
package supervisor
