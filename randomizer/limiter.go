// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// limiter.go — bound on same-type recursion along one ancestry path.

package randomizer

import "fmt"

// Limiter caps how many times one type may appear on a single ancestry
// path. It is a plain value; copies are independent and immutable in use.
type Limiter struct {
	// MaxDepth is the maximum number of simultaneous occurrences of a type
	// on the path. Must be at least 1.
	MaxDepth int
}

// Preset limiters.
var (
	// LimiterOnce allows a type exactly once per path: self references stay nil.
	LimiterOnce = Limiter{MaxDepth: 1}
	// LimiterFew is the default: shallow but non-trivial recursive graphs.
	LimiterFew = Limiter{MaxDepth: 3}
	// LimiterDozen allows deep recursive graphs; keep collections small with it.
	LimiterDozen = Limiter{MaxDepth: 12}
)

// Allows reports whether one more occurrence is permitted given the
// current count on the path.
func (l Limiter) Allows(count int) bool {
	return count < l.MaxDepth
}

func (l Limiter) String() string {
	return fmt.Sprintf("Limiter(max=%d)", l.MaxDepth)
}
