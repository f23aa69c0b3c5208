// SPDX-License-Identifier: MIT
// Package: createfake/random
//
// errors.go — sentinel errors for the random package.
//
// Callers branch with errors.Is; helpers attach context with %w.

package random

import "errors"

// ErrBadRange indicates that a bounded draw was requested with lo > hi or
// with an empty candidate set.
var ErrBadRange = errors.New("random: invalid range")
