// SPDX-License-Identifier: MIT

package health

import (
	"io"
	"log/slog"
)

// NewLogger returns a JSON logger writing to w.
// Debug level is enabled by ConsoleDebug. In production without ConsoleDebug
// all output is discarded.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	if cfg.Env == EnvProduction && !cfg.ConsoleDebug {
		w = io.Discard
	}
	level := slog.LevelInfo
	if cfg.ConsoleDebug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
