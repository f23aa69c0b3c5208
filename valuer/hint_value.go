// SPDX-License-Identifier: MIT
// Package: createfake/valuer
//
// hint_value.go — scalar kinds by value.
//
// Floats: NaN equals NaN and -0 equals +0 so that equality stays reflexive
// and agrees with Hash.

package valuer

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

type valueHint struct{}

func isScalar(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

func (valueHint) Supports(a, _ reflect.Value, _ *Chainer) bool {
	return isScalar(a.Kind())
}

func (valueHint) Compare(a, b reflect.Value, _ *Chainer) ([]Difference, error) {
	if scalarEqual(a, b) {
		return nil, nil
	}
	return []Difference{{Message: fmt.Sprintf("%s != %s", render(a), render(b))}}, nil
}

func (valueHint) Hash(v reflect.Value, _ *Chainer) (uint64, error) {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return hashBits(1), nil
		}
		return hashBits(0), nil
	case reflect.String:
		return hashString(v.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return hashBits(uint64(v.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return hashBits(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return hashFloat(v.Float()), nil
	default:
		c := v.Complex()
		return Combine(hashFloat(real(c)), hashFloat(imag(c))), nil
	}
}

func (valueHint) String() string { return "value" }

func scalarEqual(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.String:
		return a.String() == b.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return floatEqual(a.Float(), b.Float())
	default:
		ca, cb := a.Complex(), b.Complex()
		return floatEqual(real(ca), real(cb)) && floatEqual(imag(ca), imag(cb))
	}
}

func floatEqual(x, y float64) bool {
	return x == y || (math.IsNaN(x) && math.IsNaN(y))
}

// render formats a scalar without calling Interface, which is not allowed
// on values read through unexported fields.
func render(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.String:
		return strconv.Quote(v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 128)
	}
	if v.IsValid() && v.CanInterface() {
		return fmt.Sprintf("%v", v.Interface())
	}
	return typeName(v)
}
