// SPDX-License-Identifier: MIT
// Package: createfake/duplicator

package duplicator

import "reflect"

// Option customizes a Duplicator.
type Option func(*config)

type config struct {
	shallow map[reflect.Type]bool
}

// WithShallow copies values of the given types by assignment. Panics on a
// nil type.
func WithShallow(types ...reflect.Type) Option {
	for _, t := range types {
		if t == nil {
			panic("duplicator: WithShallow(nil)")
		}
	}
	return func(c *config) {
		for _, t := range types {
			c.shallow[t] = true
		}
	}
}
