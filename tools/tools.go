// SPDX-License-Identifier: MIT
// Package: createfake/tools

// Package tools wires the engines together from one Settings value.
//
// Default returns a process-wide instance built from config.Defaults; use
// New or FromFile when tests need a reproducible seed or other knobs.
package tools

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/createfake/config"
	"github.com/katalvlaran/createfake/duplicator"
	"github.com/katalvlaran/createfake/faker"
	"github.com/katalvlaran/createfake/random"
	"github.com/katalvlaran/createfake/randomizer"
	"github.com/katalvlaran/createfake/valuer"
)

// Tools bundles the engines built from one Settings. Every field is safe
// for concurrent use.
type Tools struct {
	Settings   config.Settings
	Logger     *slog.Logger
	Source     random.Source
	Randomizer *randomizer.Randomizer
	Valuer     *valuer.Valuer
	Duplicator *duplicator.Duplicator
	Matcher    *faker.Matcher
}

// New validates s and builds every engine from it. Logs go to stderr.
func New(s config.Settings) (*Tools, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("tools.New: %w", err)
	}
	logger := s.Logger(nil)
	src := s.Source()
	v := valuer.New(s.ValuerOptions(logger)...)

	t := &Tools{
		Settings:   s,
		Logger:     logger,
		Source:     src,
		Randomizer: randomizer.New(s.RandomizerOptions(src, logger)...),
		Valuer:     v,
		Duplicator: duplicator.New(),
		Matcher:    faker.NewMatcher(v),
	}
	logger.Debug("tools ready", "limiter", s.Limiter, "secure", s.Secure, "seed", s.Seed)
	return t, nil
}

// FromFile loads settings from a YAML file and builds the Tools.
func FromFile(path string) (*Tools, error) {
	s, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return New(s)
}

var defaultTools = sync.OnceValue(func() *Tools {
	t, err := New(config.Defaults())
	if err != nil {
		panic(err)
	}
	return t
})

// Default returns the shared instance built from config.Defaults.
func Default() *Tools { return defaultTools() }

// NewRecorder returns a Recorder that snapshots recorded arguments with
// the shared Duplicator and verifies with the shared Matcher.
func (t *Tools) NewRecorder() *faker.Recorder {
	return faker.NewRecorder(t.Matcher,
		faker.WithSnapshots(t.Duplicator),
		faker.WithRecorderLogger(t.Logger),
	)
}

// Copy deep-copies v with the shared Duplicator.
func Copy[T any](t *Tools, v T) T { return duplicator.Copy(t.Duplicator, v) }

// Create generates a T with the shared Randomizer.
func Create[T any](t *Tools) (T, error) { return randomizer.Create[T](t.Randomizer) }
