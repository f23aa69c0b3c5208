// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// hint_enum.go — pick a defined member for enumerated types.
//
// Go has no enum kind, so membership comes from Enum registrations or from
// the Enumerable capability. Either source must come before the value hint,
// which would otherwise draw an arbitrary integer.

package randomizer

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/createfake/random"
)

type enumHint struct{}

func (enumHint) Supports(t reflect.Type, ch *Chainer) bool {
	if _, ok := ch.cfg().enums[t]; ok {
		return true
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		// EnumMembers on a nil receiver is not safe to call.
		return false
	}
	return t.Implements(enumerableType)
}

func (enumHint) Create(t reflect.Type, ch *Chainer) (reflect.Value, error) {
	if members, ok := ch.cfg().enums[t]; ok {
		m, err := random.Item(ch.Source(), members)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("Create(%s): %w", t, err)
		}
		return m, nil
	}

	members := reflect.Zero(t).Interface().(Enumerable).EnumMembers()
	m, err := random.Item(ch.Source(), members)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("Create(%s): no enum members: %w", t, ErrUnsupportedType)
	}
	v := reflect.ValueOf(m)
	if !v.IsValid() || !v.Type().ConvertibleTo(t) {
		return reflect.Value{}, fmt.Errorf("Create(%s): enum member %v has type %T: %w", t, m, m, ErrUnsupportedType)
	}
	return v.Convert(t), nil
}

func (enumHint) String() string { return "enum" }
