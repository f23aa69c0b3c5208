// SPDX-License-Identifier: MIT
// Package: createfake/config
//
// config.go — YAML settings for the engines.
//
// Contract:
//   • Parse starts from Defaults and overlays the document; unknown keys
//     are rejected so typos do not pass silently.
//   • Every returned Settings has passed Validate.
//   • Settings only describe; the *Options methods turn them into engine
//     options.

// Package config loads engine settings from YAML and turns them into
// randomizer and valuer options.
//
//	seed: 42            # 0 means time-based
//	secure: false       # crypto/rand source, not reproducible
//	limiter: 3
//	collection: {min: 1, max: 4}
//	strings: {min: 4, max: 12}
//	validate: true
//	max_compare_depth: 4096
//	log_level: info
//	log_format: auto
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/createfake/logging"
	"github.com/katalvlaran/createfake/random"
	"github.com/katalvlaran/createfake/randomizer"
	"github.com/katalvlaran/createfake/valuer"
)

// ErrInvalidSettings indicates a settings document that cannot be used.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Range is an inclusive [Min,Max] bound.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Settings is the decoded settings document.
type Settings struct {
	Seed       int64 `yaml:"seed"`
	Secure     bool  `yaml:"secure"`
	Limiter    int   `yaml:"limiter"`
	Collection Range `yaml:"collection"`
	Strings    Range `yaml:"strings"`

	// ValidateInstances re-checks generated structs against their
	// `validate` tags.
	ValidateInstances bool   `yaml:"validate"`
	MaxCompareDepth   int    `yaml:"max_compare_depth"`
	LogLevel          string `yaml:"log_level"`
	LogFormat         string `yaml:"log_format"`
}

// Defaults mirrors the engines' own defaults.
func Defaults() Settings {
	return Settings{
		Limiter:         randomizer.LimiterFew.MaxDepth,
		Collection:      Range{Min: 1, Max: 4},
		Strings:         Range{Min: 4, Max: 12},
		MaxCompareDepth: valuer.DefaultMaxDepth,
		LogLevel:        "info",
		LogFormat:       logging.FormatAuto,
	}
}

// Load reads and parses the file at path.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("Load(%s): %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("Load(%s): %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML document over Defaults. An empty document yields
// Defaults.
func Parse(data []byte) (Settings, error) {
	s := Defaults()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("Parse: %w: %w", ErrInvalidSettings, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports every problem at once.
func (s Settings) Validate() error {
	var errs []error
	if s.Limiter < 1 {
		errs = append(errs, fmt.Errorf("limiter %d < 1", s.Limiter))
	}
	if s.Collection.Min < 0 || s.Collection.Max < s.Collection.Min {
		errs = append(errs, fmt.Errorf("collection needs 0 <= min <= max, got %d..%d", s.Collection.Min, s.Collection.Max))
	}
	if s.Strings.Min < 0 || s.Strings.Max < s.Strings.Min {
		errs = append(errs, fmt.Errorf("strings needs 0 <= min <= max, got %d..%d", s.Strings.Min, s.Strings.Max))
	}
	if s.MaxCompareDepth < 1 {
		errs = append(errs, fmt.Errorf("max_compare_depth %d < 1", s.MaxCompareDepth))
	}
	if s.Secure && s.Seed != 0 {
		errs = append(errs, errors.New("seed and secure are mutually exclusive"))
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch s.LogFormat {
	case "", logging.FormatAuto, logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log_format %q", s.LogFormat))
	}
	if len(errs) > 0 {
		return fmt.Errorf("Validate: %w: %w", ErrInvalidSettings, errors.Join(errs...))
	}
	return nil
}

// Source builds the value-random source the settings describe.
func (s Settings) Source() random.Source {
	switch {
	case s.Secure:
		return random.NewSecure()
	case s.Seed != 0:
		return random.NewSeeded(random.WithSeed(s.Seed))
	default:
		return random.NewSeeded()
	}
}

// Logger builds a logger writing to w (os.Stderr when nil).
func (s Settings) Logger(w io.Writer) *slog.Logger {
	return logging.New(logging.Config{
		Level:     s.LogLevel,
		Format:    s.LogFormat,
		Writer:    w,
		Component: "createfake",
	})
}

// RandomizerOptions translates the settings, drawing from src and logging
// to logger.
func (s Settings) RandomizerOptions(src random.Source, logger *slog.Logger) []randomizer.Option {
	opts := []randomizer.Option{
		randomizer.WithSource(src),
		randomizer.WithLimiter(randomizer.Limiter{MaxDepth: s.Limiter}),
		randomizer.WithCollectionSize(s.Collection.Min, s.Collection.Max),
		randomizer.WithStringLength(s.Strings.Min, s.Strings.Max),
		randomizer.WithLogger(logger),
	}
	if s.ValidateInstances {
		opts = append(opts, randomizer.WithValidation())
	}
	return opts
}

// ValuerOptions translates the settings for the comparison engine.
func (s Settings) ValuerOptions(logger *slog.Logger) []valuer.Option {
	return []valuer.Option{
		valuer.WithMaxDepth(s.MaxCompareDepth),
		valuer.WithLogger(logger),
	}
}
