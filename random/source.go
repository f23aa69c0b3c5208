// SPDX-License-Identifier: MIT
// Package: createfake/random
//
// source.go — Source contract plus bounded helpers shared by all sources.

package random

import (
	"fmt"
)

// Source is a thread-safe stream of random primitives.
//
// Read fills p completely and never fails for the built-in sources, which
// lets a Source stand in wherever an io.Reader of random bytes is expected
// (uuid generation, for example).
type Source interface {
	// Int63 returns a non-negative pseudo-random 63-bit integer.
	Int63() int64
	// Uint64 returns a pseudo-random 64-bit value.
	Uint64() uint64
	// Intn returns a value in [0,n). It panics if n <= 0.
	Intn(n int) int
	// Int63n returns a value in [0,n). It panics if n <= 0.
	Int63n(n int64) int64
	// Float64 returns a value in [0.0,1.0).
	Float64() float64
	// Read fills p with random bytes.
	Read(p []byte) (int, error)
}

// Between returns a value in the closed interval [lo,hi].
func Between(src Source, lo, hi int) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("Between(%d,%d): %w", lo, hi, ErrBadRange)
	}
	return lo + src.Intn(hi-lo+1), nil
}

// Chance reports true with probability p (clamped to [0,1]).
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Bool returns a fair coin flip.
func Bool(src Source) bool {
	return src.Int63()&1 == 1
}

// Item picks one element of items uniformly.
func Item[T any](src Source, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("Item: empty candidate set: %w", ErrBadRange)
	}
	return items[src.Intn(len(items))], nil
}

// Bytes returns n random bytes.
func Bytes(src Source, n int) []byte {
	buf := make([]byte, n)
	_, _ = src.Read(buf)
	return buf
}

// alphabet used by Text; printable and safe in identifiers, paths and logs.
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Text returns an alphanumeric string whose length lies in [minLen,maxLen].
func Text(src Source, minLen, maxLen int) (string, error) {
	n, err := Between(src, minLen, maxLen)
	if err != nil {
		return "", fmt.Errorf("Text: %w", err)
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[src.Intn(len(alphabet))]
	}
	return string(buf), nil
}

// Lower returns a lowercase ASCII word of length [minLen,maxLen].
func Lower(src Source, minLen, maxLen int) (string, error) {
	n, err := Between(src, minLen, maxLen)
	if err != nil {
		return "", fmt.Errorf("Lower: %w", err)
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[src.Intn(26)]
	}
	return string(buf), nil
}
