// SPDX-License-Identifier: MIT
// Package: createfake/logging
//
// logging.go — slog construction for the engines.
//
// Defaults:
//   - Engines receive a Discard logger unless one is injected, so library
//     use stays silent.
//   - Level "info", writer os.Stderr, format "auto": text on a terminal,
//     JSON otherwise (go-isatty decides).

// Package logging builds the *slog.Logger instances the engines log through.
//
// The engines never construct loggers themselves; they accept one through
// their WithLogger options. This package offers the two constructions the
// rest of the module needs:
//
//	logger := logging.New(logging.Config{Level: "debug"})
//	quiet  := logging.Discard()
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrBadLevel indicates an unrecognised level name.
var ErrBadLevel = errors.New("logging: unknown level")

// Output formats accepted by Config.Format.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// Config describes a logger. The zero value logs Info+ to stderr.
type Config struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// Format is auto, text or json. Empty means auto.
	Format string
	// Writer receives the records. Nil means os.Stderr.
	Writer io.Writer
	// Component, when set, is attached to every record as "component".
	Component string
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("ParseLevel(%q): %w", name, ErrBadLevel)
	}
}

// New builds a logger from cfg. An unknown level falls back to info; use
// ParseLevel beforehand to reject it instead.
func New(cfg Config) *slog.Logger {
	level, _ := ParseLevel(cfg.Level)

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if useJSON(cfg.Format, w) {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(h)
	if cfg.Component != "" {
		logger = logger.With("component", cfg.Component)
	}
	return logger
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// useJSON resolves the auto format: terminals get text, pipes and files get JSON.
func useJSON(format string, w io.Writer) bool {
	switch strings.ToLower(format) {
	case FormatJSON:
		return true
	case FormatText:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
