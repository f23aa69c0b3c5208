// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// hint_interface.go — abstract shapes resolved to a concrete type.
//
// Resolution order for an interface type I:
//  1. concrete types registered with WithImplementation / Implement (random pick);
//  2. error → errors.New with a random message;
//  3. empty interface → scalar placeholder (an int).
// Any other interface is unsupported until an implementation is registered.

package randomizer

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/katalvlaran/createfake/random"
)

type interfaceHint struct{}

func (interfaceHint) Supports(t reflect.Type, ch *Chainer) bool {
	if t.Kind() != reflect.Interface {
		return false
	}
	return len(ch.cfg().impls[t]) > 0 || t == errorType || t.NumMethod() == 0
}

func (interfaceHint) Create(t reflect.Type, ch *Chainer) (reflect.Value, error) {
	out := reflect.New(t).Elem()

	if impls := ch.cfg().impls[t]; len(impls) > 0 {
		concrete, err := random.Item(ch.Source(), impls)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("Create(%s): %w", t, err)
		}
		v, err := ch.Create(concrete)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Set(v)
		return out, nil
	}

	if t == errorType {
		msg, err := ch.Text()
		if err != nil {
			return reflect.Value{}, fmt.Errorf("Create(%s): %w", t, err)
		}
		out.Set(reflect.ValueOf(errors.New(msg)))
		return out, nil
	}

	v, err := ch.Create(intType)
	if err != nil {
		return reflect.Value{}, err
	}
	out.Set(v)
	return out, nil
}

func (interfaceHint) String() string { return "interface" }
