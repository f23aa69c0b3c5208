// SPDX-License-Identifier: MIT
// Package: createfake/valuer
//
// comparer.go — error-free adapters for APIs that take plain comparison
// funcs (slices.SortFunc, slices.EqualFunc, custom hash sets).

package valuer

import "fmt"

// Comparer exposes a Valuer through panicking, error-free methods. Use it
// only for values the Valuer is known to support.
type Comparer struct {
	v *Valuer
}

// Comparer returns the adapter for v.
func (v *Valuer) Comparer() Comparer { return Comparer{v: v} }

// Equal reports Equals(a, b); it panics on error.
func (c Comparer) Equal(a, b any) bool {
	ok, err := c.v.Equals(a, b)
	if err != nil {
		panic(fmt.Sprintf("valuer: Comparer.Equal: %v", err))
	}
	return ok
}

// Cmp reports Order(a, b); it panics on error.
func (c Comparer) Cmp(a, b any) int {
	n, err := c.v.Order(a, b)
	if err != nil {
		panic(fmt.Sprintf("valuer: Comparer.Cmp: %v", err))
	}
	return n
}

// Hash reports Hash(a); it panics on error.
func (c Comparer) Hash(a any) uint64 {
	h, err := c.v.Hash(a)
	if err != nil {
		panic(fmt.Sprintf("valuer: Comparer.Hash: %v", err))
	}
	return h
}
