// SPDX-License-Identifier: MIT
// Package: createfake/random
//
// secure.go — crypto/rand backed Source: secure but slow.

package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
)

// Secure draws every value from crypto/rand. The zero value is ready to use.
type Secure struct{}

// NewSecure returns a crypto/rand backed Source.
func NewSecure() *Secure { return &Secure{} }

func (Secure) Uint64() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic("random: crypto/rand unavailable: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}

func (s Secure) Int63() int64 {
	return int64(s.Uint64() & math.MaxInt64)
}

func (s Secure) Int63n(n int64) int64 {
	if n <= 0 {
		panic("random: Int63n(n<=0)")
	}
	// Rejection sampling keeps the draw unbiased.
	limit := math.MaxInt64 - (math.MaxInt64 % n) - 1
	v := s.Int63()
	for v > limit {
		v = s.Int63()
	}
	return v % n
}

func (s Secure) Intn(n int) int {
	if n <= 0 {
		panic("random: Intn(n<=0)")
	}
	return int(s.Int63n(int64(n)))
}

func (s Secure) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

func (Secure) Read(p []byte) (int, error) {
	return crand.Read(p)
}
