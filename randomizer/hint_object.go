// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// hint_object.go — general struct construction.
//
// Steps for a struct type T:
//  1. If constructors are registered for T (or *T), call the richest one
//     (most parameters; first registered wins ties) with generated arguments.
//  2. Populate every exported field that is still zero, honouring
//     `validate` tags (see constraints.go). Fields tagged `fake:"-"` stay zero.
// Unexported fields are never written; they keep whatever the constructor
// put there, or their zero value.

package randomizer

import (
	"fmt"
	"reflect"
)

// skipTag is the struct tag that opts a field out of population.
const skipTag = "fake"

type objectHint struct{}

func (objectHint) Supports(t reflect.Type, _ *Chainer) bool {
	return t.Kind() == reflect.Struct
}

func (objectHint) Create(t reflect.Type, ch *Chainer) (reflect.Value, error) {
	out := reflect.New(t).Elem()

	if ctor, ok := richest(ch.cfg().ctors[t]); ok {
		built, err := construct(ctor, t, ch)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Set(built)
	}

	if err := populate(out, ch); err != nil {
		return reflect.Value{}, err
	}
	return out, nil
}

func (objectHint) String() string { return "object" }

// richest picks the constructor with the most parameters.
func richest(ctors []reflect.Value) (reflect.Value, bool) {
	if len(ctors) == 0 {
		return reflect.Value{}, false
	}
	best := ctors[0]
	for _, c := range ctors[1:] {
		if c.Type().NumIn() > best.Type().NumIn() {
			best = c
		}
	}
	return best, true
}

// construct calls ctor with generated arguments and returns the built
// struct by value.
func construct(ctor reflect.Value, t reflect.Type, ch *Chainer) (reflect.Value, error) {
	ft := ctor.Type()
	args := make([]reflect.Value, ft.NumIn())
	for i := range args {
		v, err := ch.Create(ft.In(i))
		if err != nil {
			return reflect.Value{}, err
		}
		args[i] = v
	}

	results := ctor.Call(args)
	if len(results) == 2 && !results[1].IsNil() {
		return reflect.Value{}, fmt.Errorf("Create(%s): constructor %s: %w: %w",
			t, ft, ErrConstructorFailed, results[1].Interface().(error))
	}

	built := results[0]
	if built.Kind() == reflect.Pointer {
		if built.IsNil() {
			return reflect.Value{}, fmt.Errorf("Create(%s): constructor %s returned nil: %w",
				t, ft, ErrConstructorFailed)
		}
		built = built.Elem()
	}
	return built, nil
}

// populate fills exported zero-valued fields of the addressable struct out.
func populate(out reflect.Value, ch *Chainer) error {
	t := out.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get(skipTag) == "-" {
			continue
		}
		fv := out.Field(i)
		if !fv.IsZero() {
			continue
		}

		v, handled, err := constrained(f.Type, f.Tag.Get(validateTag), ch)
		if err != nil {
			return fmt.Errorf("Create(%s).%s: %w", t, f.Name, err)
		}
		if !handled {
			if v, err = ch.Create(f.Type); err != nil {
				return err
			}
		}
		fv.Set(v)
	}
	return nil
}
