// SPDX-License-Identifier: MIT
// Package: createfake/valuer
//
// errors.go — sentinel errors for the valuer package.
//
// Error policy:
//   • Branch with errors.Is; the wrapping message names the method and type.
//   • Comparison never returns partial results together with an error.

package valuer

import "errors"

// ErrUnsupportedType indicates that no hint supports the compared shape.
var ErrUnsupportedType = errors.New("valuer: unsupported type")

// ErrRecursionExhausted indicates nesting deeper than the configured
// maximum depth.
var ErrRecursionExhausted = errors.New("valuer: recursion exhausted")

// ErrHintPanic indicates a hint or a user capability panicked during
// traversal. The panic value is part of the message.
var ErrHintPanic = errors.New("valuer: hint panicked")
