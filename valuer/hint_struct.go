// SPDX-License-Identifier: MIT
// Package: createfake/valuer
//
// hint_struct.go — structural fallback: every field, exported or not,
// compared by name in declaration order.

package valuer

import "reflect"

type structHint struct{}

func (structHint) Supports(a, _ reflect.Value, _ *Chainer) bool {
	return a.Kind() == reflect.Struct
}

func (structHint) Compare(a, b reflect.Value, ch *Chainer) ([]Difference, error) {
	var diffs []Difference
	t := a.Type()
	for i := 0; i < t.NumField(); i++ {
		d, err := ch.CompareAt(t.Field(i).Name, a.Field(i), b.Field(i))
		if err != nil {
			return nil, err
		}
		diffs = append(diffs, d...)
	}
	return diffs, nil
}

func (structHint) Hash(v reflect.Value, ch *Chainer) (uint64, error) {
	hs := make([]uint64, v.NumField())
	for i := range hs {
		h, err := ch.Hash(v.Field(i))
		if err != nil {
			return 0, err
		}
		hs[i] = h
	}
	return Combine(hs...), nil
}

func (structHint) String() string { return "struct" }
