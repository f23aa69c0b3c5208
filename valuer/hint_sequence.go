// SPDX-License-Identifier: MIT
// Package: createfake/valuer
//
// hint_sequence.go — slices and arrays, element-wise and order-sensitive.
// A length mismatch is reported once, then the common prefix is compared.

package valuer

import (
	"fmt"
	"reflect"
)

type sequenceHint struct{}

func (sequenceHint) Supports(a, _ reflect.Value, _ *Chainer) bool {
	return a.Kind() == reflect.Slice || a.Kind() == reflect.Array
}

func (sequenceHint) Compare(a, b reflect.Value, ch *Chainer) ([]Difference, error) {
	var diffs []Difference
	n := a.Len()
	if a.Len() != b.Len() {
		diffs = append(diffs, Difference{Message: fmt.Sprintf("length %d != %d", a.Len(), b.Len())})
		n = min(a.Len(), b.Len())
	}
	for i := 0; i < n; i++ {
		d, err := ch.CompareAt(fmt.Sprintf("[%d]", i), a.Index(i), b.Index(i))
		if err != nil {
			return nil, err
		}
		diffs = append(diffs, d...)
	}
	return diffs, nil
}

func (sequenceHint) Hash(v reflect.Value, ch *Chainer) (uint64, error) {
	hs := make([]uint64, v.Len())
	for i := range hs {
		h, err := ch.Hash(v.Index(i))
		if err != nil {
			return 0, err
		}
		hs[i] = h
	}
	return Combine(hs...), nil
}

func (sequenceHint) String() string { return "sequence" }
