// SPDX-License-Identifier: MIT

// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/spherelab/internal/config"
)

// New builds a logger writing to w (os.Stderr when nil). Format "console"
// selects the human-readable writer; anything else emits JSON lines.
func New(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logging: level %q: %w", cfg.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if w == nil {
		w = os.Stderr
	}
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Setup installs the logger from New as log.Logger.
func Setup(cfg config.LogConfig, w io.Writer) error {
	l, err := New(cfg, w)
	if err != nil {
		return err
	}
	log.Logger = l

	return nil
}
