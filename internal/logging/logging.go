// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config selects level and destination.
type Config struct {
	Level string
	// File, when set, receives JSON logs instead of the console.
	File string
	// Console switches stderr output to zerolog's human-friendly writer.
	Console bool
}

// Setup installs the global logger and returns a cleanup func that closes
// any opened file.
func Setup(cfg Config) (func() error, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var w io.Writer = os.Stderr
	cleanup := func() error { return nil }

	switch {
	case cfg.File != "":
		if dir := filepath.Dir(cfg.File); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Logger = zerolog.New(io.Discard)
				return cleanup, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			log.Logger = zerolog.New(io.Discard)
			return cleanup, fmt.Errorf("open log file: %w", err)
		}
		w = f
		cleanup = f.Close
	case cfg.Console:
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	log.Debug().Str("level", lvl.String()).Str("file", cfg.File).Msg("logger initialized")
	return cleanup, nil
}
