// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// hint_func.go — plain function types become stubs with fixed results.
//
// Results are generated once, when the function value is created, so every
// call returns the same values and the stub is safe for concurrent calls.
// A trailing error result is always nil.

package randomizer

import "reflect"

type funcHint struct{}

func (funcHint) Supports(t reflect.Type, _ *Chainer) bool {
	return t.Kind() == reflect.Func
}

func (funcHint) Create(t reflect.Type, ch *Chainer) (reflect.Value, error) {
	results := make([]reflect.Value, t.NumOut())
	for i := range results {
		out := t.Out(i)
		if out == errorType {
			results[i] = reflect.Zero(out)
			continue
		}
		v, err := ch.Create(out)
		if err != nil {
			return reflect.Value{}, err
		}
		results[i] = v
	}
	return reflect.MakeFunc(t, func([]reflect.Value) []reflect.Value {
		return results
	}), nil
}

func (funcHint) String() string { return "func" }
