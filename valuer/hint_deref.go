// SPDX-License-Identifier: MIT
// Package: createfake/valuer
//
// hint_deref.go — pointers and interfaces compare their targets; the path
// does not change.

package valuer

import "reflect"

type derefHint struct{}

func (derefHint) Supports(a, _ reflect.Value, _ *Chainer) bool {
	return a.Kind() == reflect.Pointer || a.Kind() == reflect.Interface
}

func (derefHint) Compare(a, b reflect.Value, ch *Chainer) ([]Difference, error) {
	return ch.Compare(a.Elem(), b.Elem())
}

func (derefHint) Hash(v reflect.Value, ch *Chainer) (uint64, error) {
	return ch.Hash(v.Elem())
}

func (derefHint) String() string { return "deref" }
