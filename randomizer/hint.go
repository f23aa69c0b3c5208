// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// hint.go — the CreateHint contract and a func adapter for custom hints.

package randomizer

import "reflect"

// CreateHint is one link of the generation chain.
//
// Supports and Create must agree: when Supports reports true for t, Create
// must not reject t for being the wrong shape. Create may recurse through
// ch for nested types and must return a value assignable to t.
// Hints are shared by concurrent requests and must not keep mutable state.
type CreateHint interface {
	Supports(t reflect.Type, ch *Chainer) bool
	Create(t reflect.Type, ch *Chainer) (reflect.Value, error)
}

// HintFunc adapts two plain functions into a CreateHint.
type HintFunc struct {
	// Name labels the hint in debug logs.
	Name     string
	Match    func(t reflect.Type) bool
	Generate func(t reflect.Type, ch *Chainer) (reflect.Value, error)
}

func (h HintFunc) Supports(t reflect.Type, _ *Chainer) bool { return h.Match(t) }

func (h HintFunc) Create(t reflect.Type, ch *Chainer) (reflect.Value, error) {
	return h.Generate(t, ch)
}

func (h HintFunc) String() string { return h.Name }

// For builds a HintFunc that serves exactly type T with gen.
func For[T any](gen func(ch *Chainer) (T, error)) HintFunc {
	target := reflect.TypeFor[T]()
	return HintFunc{
		Name:  "for(" + target.String() + ")",
		Match: func(t reflect.Type) bool { return t == target },
		Generate: func(_ reflect.Type, ch *Chainer) (reflect.Value, error) {
			v, err := gen(ch)
			if err != nil {
				return reflect.Value{}, err
			}
			out := reflect.New(target).Elem()
			out.Set(reflect.ValueOf(&v).Elem())
			return out, nil
		},
	}
}
