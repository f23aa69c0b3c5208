// SPDX-License-Identifier: MIT
// Package: createfake/valuer
//
// options.go — functional options resolved into an immutable config.
// Option constructors panic on meaningless input.

package valuer

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/createfake/logging"
)

// Option customizes a Valuer.
type Option func(*config)

type config struct {
	prepend  []CompareHint
	extra    []CompareHint
	defaults bool
	maxDepth int
	logger   *slog.Logger
}

// DefaultMaxDepth bounds nesting for one comparison or hash.
const DefaultMaxDepth = 4096

func newConfig(opts ...Option) config {
	cfg := config{defaults: true, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.Discard()
	}
	return cfg
}

// WithHints places hints in front of the built-in chain; the first
// supporter wins, so they override built-ins. Panics on a nil hint.
// Complexity: O(len(hints)) time and space.
func WithHints(hints ...CompareHint) Option {
	mustHints("WithHints", hints)
	return func(c *config) { c.prepend = append(c.prepend, hints...) }
}

// WithExtraHints appends hints after the built-in chain.
// Complexity: O(len(hints)) time and space.
func WithExtraHints(hints ...CompareHint) Option {
	mustHints("WithExtraHints", hints)
	return func(c *config) { c.extra = append(c.extra, hints...) }
}

func mustHints(method string, hints []CompareHint) {
	for i, h := range hints {
		if h == nil {
			panic(fmt.Sprintf("valuer: %s: nil hint at index %d", method, i))
		}
	}
}

// WithoutDefaults drops the built-in chain; only registered hints remain.
// The engine rules (identity, nil, type, cycles, depth) still apply.
func WithoutDefaults() Option {
	return func(c *config) { c.defaults = false }
}

// WithMaxDepth sets the nesting bound. Panics if n < 1.
// Complexity: O(1) time, O(1) space.
func WithMaxDepth(n int) Option {
	if n < 1 {
		// Zero would reject even scalars.
		panic("valuer: WithMaxDepth(n<1)")
	}
	return func(c *config) { c.maxDepth = n }
}

// WithLogger routes debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("valuer: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
