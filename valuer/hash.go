// SPDX-License-Identifier: MIT
// Package: createfake/valuer
//
// hash.go — hash primitives over xxhash.

package valuer

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Seeds for hashes that carry no payload of their own.
const (
	nilHash   uint64 = 0x9e3779b97f4a7c15
	cycleHash uint64 = 0xc2b2ae3d27d4eb4f
	mapSeed   uint64 = 0x165667b19e3779f9
)

// Combine folds hashes into one, order-sensitively.
func Combine(hashes ...uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, h := range hashes {
		binary.LittleEndian.PutUint64(buf[:], h)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// combineUnordered folds hashes independently of their order.
func combineUnordered(hashes []uint64) uint64 {
	var sum uint64
	for _, h := range hashes {
		sum += h
	}
	return Combine(mapSeed, uint64(len(hashes)), sum)
}

func hashBits(u uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	return xxhash.Sum64(buf[:])
}

func hashString(s string) uint64 { return xxhash.Sum64String(s) }

// hashFloat normalises -0 to +0 and every NaN to one payload.
func hashFloat(f float64) uint64 {
	switch {
	case f == 0:
		return hashBits(0)
	case math.IsNaN(f):
		return hashBits(0x7ff8000000000001)
	default:
		return hashBits(math.Float64bits(f))
	}
}
