// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// hint_collection.go — slices, arrays, maps and sets.
//
// Canonical shapes:
//   • ordered sequence  → []T
//   • fixed sequence    → [N]T (every slot filled)
//   • associative       → map[K]V
//   • set               → map[K]struct{} (the empty struct comes from the object hint)
//
// Sizes are drawn from WithCollectionSize. When the element (or key/value)
// type is exhausted on the current path the collection is left nil, which
// is what bounds recursive shapes such as `type Tree struct{ Kids []Tree }`.

package randomizer

import (
	"fmt"
	"reflect"
)

// keyAttemptsPerSlot bounds how many key draws a map may spend per wanted
// entry; small key domains (bool, int8) cannot always reach the wanted size.
const keyAttemptsPerSlot = 8

type collectionHint struct{}

func (collectionHint) Supports(t reflect.Type, _ *Chainer) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}

func (collectionHint) Create(t reflect.Type, ch *Chainer) (reflect.Value, error) {
	switch t.Kind() {
	case reflect.Slice:
		if ch.Exhausted(t.Elem()) {
			return reflect.Zero(t), nil
		}
		return makeSlice(t, ch.CollectionSize(), ch)
	case reflect.Array:
		out := reflect.New(t).Elem()
		for i := 0; i < t.Len(); i++ {
			v, err := ch.Create(t.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(v)
		}
		return out, nil
	default:
		if ch.Exhausted(t.Key()) || ch.Exhausted(t.Elem()) {
			return reflect.Zero(t), nil
		}
		return makeMap(t, ch.CollectionSize(), ch)
	}
}

func (collectionHint) String() string { return "collection" }

// makeSlice builds a slice of t with exactly n generated elements.
func makeSlice(t reflect.Type, n int, ch *Chainer) (reflect.Value, error) {
	out := reflect.MakeSlice(t, n, n)
	for i := 0; i < n; i++ {
		v, err := ch.Create(t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		out.Index(i).Set(v)
	}
	return out, nil
}

// makeMap builds a map of t with up to n distinct generated keys.
func makeMap(t reflect.Type, n int, ch *Chainer) (reflect.Value, error) {
	out := reflect.MakeMapWithSize(t, n)
	for attempts := 0; out.Len() < n && attempts < n*keyAttemptsPerSlot; attempts++ {
		k, err := ch.Create(t.Key())
		if err != nil {
			return reflect.Value{}, err
		}
		if !k.Comparable() {
			return reflect.Value{}, fmt.Errorf("Create(%s): generated key of type %s is not comparable: %w",
				t, k.Type(), ErrUnsupportedType)
		}
		if out.MapIndex(k).IsValid() {
			continue
		}
		v, err := ch.Create(t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetMapIndex(k, v)
	}
	return out, nil
}
