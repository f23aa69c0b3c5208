// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// hint_pointer.go — pointers to generated elements; nil once the element
// type is exhausted on the path.

package randomizer

import "reflect"

type pointerHint struct{}

func (pointerHint) Supports(t reflect.Type, _ *Chainer) bool {
	return t.Kind() == reflect.Pointer
}

func (pointerHint) Create(t reflect.Type, ch *Chainer) (reflect.Value, error) {
	if ch.Exhausted(t.Elem()) {
		return reflect.Zero(t), nil
	}
	v, err := ch.Create(t.Elem())
	if err != nil {
		return reflect.Value{}, err
	}
	p := reflect.New(t.Elem())
	p.Elem().Set(v)
	if p.Type() != t {
		return p.Convert(t), nil
	}
	return p, nil
}

func (pointerHint) String() string { return "pointer" }
