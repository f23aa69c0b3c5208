// SPDX-License-Identifier: MIT
// Package: createfake/faker
//
// args.go — argument matchers usable in place of expected argument values.

package faker

import (
	"fmt"
	"reflect"
)

// ArgMatcher decides whether an actual argument is acceptable. An expected
// Call argument implementing ArgMatcher is consulted instead of deep
// equality.
type ArgMatcher interface {
	MatchArg(actual any) bool
}

type anyArg[T any] struct{}

// Any accepts every argument of type T, including nil when T is nillable.
func Any[T any]() ArgMatcher { return anyArg[T]{} }

func (anyArg[T]) MatchArg(actual any) bool {
	_, ok := asType[T](actual)
	return ok
}

func (anyArg[T]) String() string { return fmt.Sprintf("Any[%s]", reflect.TypeFor[T]()) }

type whereArg[T any] struct {
	pred func(T) bool
}

// Where accepts arguments of type T for which pred returns true. Panics
// on a nil pred.
func Where[T any](pred func(T) bool) ArgMatcher {
	if pred == nil {
		panic("faker: Where(nil)")
	}
	return whereArg[T]{pred: pred}
}

func (w whereArg[T]) MatchArg(actual any) bool {
	v, ok := asType[T](actual)
	return ok && w.pred(v)
}

func (whereArg[T]) String() string { return fmt.Sprintf("Where[%s]", reflect.TypeFor[T]()) }

// asType converts actual to T, treating a nil actual as T's zero value
// when T can hold nil.
func asType[T any](actual any) (T, bool) {
	if v, ok := actual.(T); ok {
		return v, true
	}
	var zero T
	if actual != nil {
		return zero, false
	}
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return zero, true
	default:
		return zero, false
	}
}
