// SPDX-License-Identifier: MIT
// Package: createfake/valuer
//
// hint_identity.go — channels, functions and unsafe pointers have no
// structure to inspect; they are equal only when they are the same value.
// For functions "the same" means the same closure object: every func made
// by reflect.MakeFunc shares one code pointer.

package valuer

import (
	"reflect"
	"unsafe"
)

type identityHint struct{}

func (identityHint) Supports(a, _ reflect.Value, _ *Chainer) bool {
	switch a.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func (identityHint) Compare(a, b reflect.Value, _ *Chainer) ([]Difference, error) {
	if refID(a) == refID(b) {
		return nil, nil
	}
	return []Difference{{Message: "distinct " + a.Type().String() + " values"}}, nil
}

func (identityHint) Hash(v reflect.Value, _ *Chainer) (uint64, error) {
	return hashBits(uint64(refID(v))), nil
}

func (identityHint) String() string { return "identity" }

// refID is the identity of a reference value. A func value is a pointer to
// its closure object; refID reads that pointer from the variable holding
// the func. A func reached through an unexported field of a value that is
// not addressable cannot be read that way and falls back to its code
// pointer.
func refID(v reflect.Value) uintptr {
	if v.Kind() != reflect.Func || v.IsNil() {
		return v.Pointer()
	}
	switch {
	case v.CanAddr():
		return uintptr(*(*unsafe.Pointer)(v.Addr().UnsafePointer()))
	case v.CanInterface():
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		return uintptr(*(*unsafe.Pointer)(p.UnsafePointer()))
	default:
		return v.Pointer()
	}
}
