// SPDX-License-Identifier: MIT
// Package: createfake/valuer
//
// hint.go — the CompareHint contract and the self-comparison capability.

package valuer

import (
	"reflect"
)

// CompareHint is one link of the comparison chain.
//
// The engine only offers a hint pairs that are non-nil and of identical
// type; Supports may therefore inspect a alone. Compare and Hash must
// agree: values Compare reports as equal must hash alike. Hints are shared
// by concurrent requests and must not keep mutable state.
type CompareHint interface {
	Supports(a, b reflect.Value, ch *Chainer) bool
	Compare(a, b reflect.Value, ch *Chainer) ([]Difference, error)
	Hash(v reflect.Value, ch *Chainer) (uint64, error)
}

// ValueEquatable is implemented by types that know how to compare and hash
// themselves. When the left operand implements it, the engine delegates to
// it exclusively. ValuesEqual receives a value of the same type.
type ValueEquatable interface {
	ValuesEqual(other any) bool
	ValueHash() uint64
}

var equatableType = reflect.TypeFor[ValueEquatable]()
