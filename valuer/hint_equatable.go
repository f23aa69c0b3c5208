// SPDX-License-Identifier: MIT
// Package: createfake/valuer
//
// hint_equatable.go — delegate to the ValueEquatable capability of the left
// operand. Values read through unexported fields cannot be handed to user
// code and fall through to the structural hints.

package valuer

import "reflect"

type equatableHint struct{}

func (equatableHint) Supports(a, _ reflect.Value, _ *Chainer) bool {
	return a.CanInterface() && a.Type().Implements(equatableType)
}

func (equatableHint) Compare(a, b reflect.Value, _ *Chainer) ([]Difference, error) {
	if a.Interface().(ValueEquatable).ValuesEqual(b.Interface()) {
		return nil, nil
	}
	return []Difference{{Message: a.Type().String() + " values differ (ValuesEqual)"}}, nil
}

func (equatableHint) Hash(v reflect.Value, _ *Chainer) (uint64, error) {
	return v.Interface().(ValueEquatable).ValueHash(), nil
}

func (equatableHint) String() string { return "equatable" }
