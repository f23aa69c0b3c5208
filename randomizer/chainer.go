// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// chainer.go — per-request traversal context handed to every hint.
//
// A Chainer is created for one top-level Create and dropped when it returns.
// It is not safe for concurrent use; hints must not retain it.

package randomizer

import (
	"log/slog"
	"reflect"

	"github.com/katalvlaran/createfake/ancestry"
	"github.com/katalvlaran/createfake/random"
)

// Chainer threads the type ancestry, the limiter and the engine itself
// through nested hint calls.
type Chainer struct {
	engine *Randomizer
	path   *ancestry.Path[reflect.Type]
}

func newChainer(r *Randomizer) *Chainer {
	return &Chainer{engine: r, path: ancestry.New[reflect.Type]()}
}

// Create requests a nested value of type t through the full hint chain.
func (c *Chainer) Create(t reflect.Type) (reflect.Value, error) {
	return c.engine.create(t, c)
}

// Exhausted reports whether t has already reached the limiter bound on the
// current path. Hints that can represent "nothing" (nil pointer, empty
// collection) check it before descending.
func (c *Chainer) Exhausted(t reflect.Type) bool {
	return !c.engine.cfg.limiter.Allows(c.path.Count(t))
}

// Depth is the number of types currently being built.
func (c *Chainer) Depth() int { return c.path.Depth() }

// Trail lists the types being built, outermost first.
func (c *Chainer) Trail() []reflect.Type { return c.path.Trail() }

// Source is the injected value-random source.
func (c *Chainer) Source() random.Source { return c.engine.cfg.source }

// Limiter is the engine's recursion bound.
func (c *Chainer) Limiter() Limiter { return c.engine.cfg.limiter }

// Logger is the engine's debug logger.
func (c *Chainer) Logger() *slog.Logger { return c.engine.cfg.logger }

// CollectionSize draws a length within the configured collection bounds.
func (c *Chainer) CollectionSize() int {
	n, err := random.Between(c.Source(), c.engine.cfg.collMin, c.engine.cfg.collMax)
	if err != nil {
		// Bounds are validated by WithCollectionSize.
		return c.engine.cfg.collMin
	}
	return n
}

// Text draws an alphanumeric string within the configured length bounds.
func (c *Chainer) Text() (string, error) {
	return random.Text(c.Source(), c.engine.cfg.strMin, c.engine.cfg.strMax)
}

func (c *Chainer) cfg() *config { return &c.engine.cfg }
