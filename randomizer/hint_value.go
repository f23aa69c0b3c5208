// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// hint_value.go — scalar kinds drawn straight from the random source.
//
// Ranges:
//   • integers: full range of the kind's bit size.
//   • floats: finite, |x| < 1e6 for float32 and < 1e9 for float64; never NaN/Inf.
//   • strings: alphanumeric, length within WithStringLength bounds.
//   • uintptr is deliberately unsupported.

package randomizer

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/createfake/random"
)

const (
	float32Scale = 1e6
	float64Scale = 1e9
)

type valueHint struct{}

func (valueHint) Supports(t reflect.Type, _ *Chainer) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

func (valueHint) Create(t reflect.Type, ch *Chainer) (reflect.Value, error) {
	src := ch.Source()
	out := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Bool:
		out.SetBool(random.Bool(src))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// Arithmetic shift keeps the sign while narrowing to the kind's width.
		out.SetInt(int64(src.Uint64()) >> (64 - t.Bits()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		out.SetUint(src.Uint64() >> (64 - t.Bits()))
	case reflect.Float32:
		out.SetFloat(signedUnit(src) * float32Scale)
	case reflect.Float64:
		out.SetFloat(signedUnit(src) * float64Scale)
	case reflect.Complex64:
		out.SetComplex(complex(signedUnit(src)*float32Scale, signedUnit(src)*float32Scale))
	case reflect.Complex128:
		out.SetComplex(complex(signedUnit(src)*float64Scale, signedUnit(src)*float64Scale))
	case reflect.String:
		s, err := ch.Text()
		if err != nil {
			return reflect.Value{}, fmt.Errorf("Create(%s): %w", t, err)
		}
		out.SetString(s)
	}
	return out, nil
}

func (valueHint) String() string { return "value" }

// signedUnit returns a value in (-1,1).
func signedUnit(src random.Source) float64 {
	return src.Float64()*2 - 1
}
