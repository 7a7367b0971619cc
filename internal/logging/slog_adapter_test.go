// YTGate - yt-dlp HTTP Gateway for Audio Search and Streaming
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ytgate

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Levels(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer Init(DefaultConfig())

	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{"debug", slog.LevelDebug, `"level":"debug"`},
		{"info", slog.LevelInfo, `"level":"info"`},
		{"warn", slog.LevelWarn, `"level":"warn"`},
		{"error", slog.LevelError, `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf)))
			logger.Log(context.Background(), tt.level, "supervisor event")

			output := buf.String()
			if !strings.Contains(output, tt.want) {
				t.Errorf("expected %s in output: %s", tt.want, output)
			}
			if !strings.Contains(output, "supervisor event") {
				t.Errorf("expected message in output: %s", output)
			}
		})
	}
}

func TestSlogHandler_Attrs(t *testing.T) {
	var buf bytes.Buffer
	handler := NewSlogHandlerWithLogger(zerolog.New(&buf))

	logger := slog.New(handler).With("service", "http-server").WithGroup("restart")
	logger.Info("service restarted",
		"count", 3,
		"backoff", 2*time.Second,
		"failed", true,
	)

	output := buf.String()
	for _, want := range []string{
		`"service":"http-server"`,
		`"restart.count":3`,
		`"restart.failed":true`,
		`"restart.backoff"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
}

func TestSlogHandler_AttrsKeepTheirGroup(t *testing.T) {
	var buf bytes.Buffer
	handler := NewSlogHandlerWithLogger(zerolog.New(&buf))

	logger := slog.New(handler).
		With("supervisor", "ytgate").
		WithGroup("service").
		With("name", "http-server").
		WithGroup("backoff")
	logger.Info("backing off", "attempt", 2)

	output := buf.String()
	for _, want := range []string{
		`"supervisor":"ytgate"`,
		`"service.name":"http-server"`,
		`"service.backoff.attempt":2`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
	if strings.Contains(output, `"service.supervisor"`) || strings.Contains(output, `"service.backoff.name"`) {
		t.Errorf("attribute picked up a group opened after it: %s", output)
	}
}

func TestSlogHandler_WithGroupEmpty(t *testing.T) {
	t.Parallel()

	h := NewSlogHandlerWithLogger(zerolog.Nop())
	if got := h.WithGroup(""); got != h {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	h := NewSlogHandlerWithLogger(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info to be disabled for warn-level logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("expected error to be enabled for warn-level logger")
	}
}
