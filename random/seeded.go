// SPDX-License-Identifier: MIT
// Package: createfake/random
//
// seeded.go — fast reproducible Source over math/rand.
//
// Determinism:
//   - Same seed and same call order ⇒ identical stream.
//   - Concurrent callers interleave non-deterministically; reproducibility
//     across goroutines is not promised, only safety.

package random

import (
	"math/rand"
	"sync"
	"time"
)

// Seeded is a mutex-guarded *rand.Rand.
type Seeded struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed int64
}

// Option customizes a Seeded source before first use.
type Option func(*seededConfig)

type seededConfig struct {
	seed    int64
	hasSeed bool
}

// WithSeed fixes the seed so the stream is reproducible.
func WithSeed(seed int64) Option {
	return func(c *seededConfig) {
		c.seed, c.hasSeed = seed, true
	}
}

// NewSeeded returns a Seeded source. Without WithSeed the seed is derived
// from the wall clock; Seed reports it so failures can be replayed.
func NewSeeded(opts ...Option) *Seeded {
	var cfg seededConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasSeed {
		cfg.seed = time.Now().UnixNano()
	}
	return &Seeded{rng: rand.New(rand.NewSource(cfg.seed)), seed: cfg.seed}
}

// Seed returns the seed the stream was started with.
func (s *Seeded) Seed() int64 { return s.seed }

func (s *Seeded) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int63()
}

func (s *Seeded) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint64()
}

func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *Seeded) Int63n(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int63n(n)
}

func (s *Seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *Seeded) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Read(p)
}
