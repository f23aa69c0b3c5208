// SPDX-License-Identifier: MIT
// Package: createfake/faker
//
// generic.go — generic type arguments as a tagged variant, so the wildcard
// can never be mistaken for a real type.

package faker

import "reflect"

type genericKind uint8

const (
	genericInvalid genericKind = iota
	genericConcrete
	genericWildcard
)

// GenericArg is one generic type argument of a Call: either a concrete
// type or the AnyGeneric wildcard. The zero value is invalid.
type GenericArg struct {
	kind genericKind
	typ  reflect.Type
}

// AnyGeneric matches any concrete type argument in an expected Call.
var AnyGeneric = GenericArg{kind: genericWildcard}

// Of wraps a concrete type. Panics on nil.
func Of(t reflect.Type) GenericArg {
	if t == nil {
		panic("faker: Of(nil)")
	}
	return GenericArg{kind: genericConcrete, typ: t}
}

// TypeOf is Of(reflect.TypeFor[T]()).
func TypeOf[T any]() GenericArg { return Of(reflect.TypeFor[T]()) }

// IsWildcard reports whether g is AnyGeneric.
func (g GenericArg) IsWildcard() bool { return g.kind == genericWildcard }

// Type returns the concrete type, or nil for the wildcard.
func (g GenericArg) Type() reflect.Type { return g.typ }

func (g GenericArg) String() string {
	switch g.kind {
	case genericWildcard:
		return "AnyGeneric"
	case genericConcrete:
		return g.typ.String()
	default:
		return "<invalid>"
	}
}

// accepts reports whether the expected argument g admits actual.
func (g GenericArg) accepts(actual GenericArg) bool {
	if g.kind == genericWildcard {
		return true
	}
	return g.kind == actual.kind && g.typ == actual.typ
}
