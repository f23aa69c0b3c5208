// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// errors.go — sentinel errors for the randomizer package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Context (method, offending type) is attached with %w at the failure site.
//   • Option constructors panic on programmer error; Create never panics
//     for a supported type.

package randomizer

import "errors"

// ErrNilType indicates Create was called without a type descriptor.
var ErrNilType = errors.New("randomizer: nil type")

// ErrUnsupportedType indicates that no hint in the chain supports the
// requested type. The wrapping message names the type.
var ErrUnsupportedType = errors.New("randomizer: unsupported type")

// ErrConstructorFailed indicates a registered constructor returned an error.
var ErrConstructorFailed = errors.New("randomizer: constructor failed")

// ErrInvalidInstance indicates a generated struct failed validation
// (WithValidation only).
var ErrInvalidInstance = errors.New("randomizer: generated instance is invalid")

// ErrForeignChainer indicates CreateWith received a Chainer owned by a
// different Randomizer.
var ErrForeignChainer = errors.New("randomizer: chainer belongs to another randomizer")
