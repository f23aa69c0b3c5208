// SPDX-License-Identifier: MIT
// Package: createfake/valuer
//
// hint_map.go — associative containers.
//
// Plain keys (integers, strings, and aggregates of them) are matched with
// Go map lookup. Keys holding pointers, interfaces or floats are matched
// structurally, so a map equals its deep copy. Key-set differences are
// reported first, then value differences per matched key; each group is
// sorted by path, so the result never depends on map iteration order.

package valuer

import (
	"fmt"
	"reflect"
	"sort"
)

type mapHint struct{}

func (mapHint) Supports(a, _ reflect.Value, _ *Chainer) bool {
	return a.Kind() == reflect.Map
}

func (mapHint) Compare(a, b reflect.Value, ch *Chainer) ([]Difference, error) {
	pairs, onlyA, onlyB, err := pairKeys(a, b, ch)
	if err != nil {
		return nil, err
	}

	var keyDiffs, valueDiffs []Difference
	for _, k := range onlyA {
		keyDiffs = append(keyDiffs, Difference{Path: keySegment(k), Message: "key only on the left"})
	}
	for _, k := range onlyB {
		keyDiffs = append(keyDiffs, Difference{Path: keySegment(k), Message: "key only on the right"})
	}
	for _, p := range pairs {
		diffs, err := ch.CompareAt(keySegment(p.key), p.left, p.right)
		if err != nil {
			return nil, err
		}
		valueDiffs = append(valueDiffs, diffs...)
	}

	sortByPath(keyDiffs)
	sortByPath(valueDiffs)
	return append(keyDiffs, valueDiffs...), nil
}

// entryPair is one left key with the values both maps hold for it.
type entryPair struct {
	key         reflect.Value
	left, right reflect.Value
}

// pairKeys matches every left key with an equal right key. Plain keys use
// map lookup; other keys are bucketed by structural hash and matched with
// Compare inside the bucket. Values are read while ranging, so keys that
// lookup cannot find again (NaN) still pair.
func pairKeys(a, b reflect.Value, ch *Chainer) (pairs []entryPair, onlyA, onlyB []reflect.Value, err error) {
	if plainKey(a.Type().Key()) {
		for _, k := range a.MapKeys() {
			if bv := b.MapIndex(k); bv.IsValid() {
				pairs = append(pairs, entryPair{key: k, left: a.MapIndex(k), right: bv})
			} else {
				onlyA = append(onlyA, k)
			}
		}
		for _, k := range b.MapKeys() {
			if !a.MapIndex(k).IsValid() {
				onlyB = append(onlyB, k)
			}
		}
		return pairs, onlyA, onlyB, nil
	}

	var rightKeys, rightVals []reflect.Value
	buckets := make(map[uint64][]int, b.Len())
	for iter := b.MapRange(); iter.Next(); {
		h, err := ch.Hash(iter.Key())
		if err != nil {
			return nil, nil, nil, err
		}
		buckets[h] = append(buckets[h], len(rightKeys))
		rightKeys = append(rightKeys, iter.Key())
		rightVals = append(rightVals, iter.Value())
	}
	used := make([]bool, len(rightKeys))

	for iter := a.MapRange(); iter.Next(); {
		k := iter.Key()
		h, err := ch.Hash(k)
		if err != nil {
			return nil, nil, nil, err
		}
		match := -1
		for _, i := range buckets[h] {
			if used[i] {
				continue
			}
			diffs, err := ch.Compare(k, rightKeys[i])
			if err != nil {
				return nil, nil, nil, err
			}
			if len(diffs) == 0 {
				match = i
				break
			}
		}
		if match < 0 {
			onlyA = append(onlyA, k)
			continue
		}
		used[match] = true
		pairs = append(pairs, entryPair{key: k, left: iter.Value(), right: rightVals[match]})
	}
	for i, k := range rightKeys {
		if !used[i] {
			onlyB = append(onlyB, k)
		}
	}
	return pairs, onlyA, onlyB, nil
}

// plainKey reports whether Go == on t agrees with structural equality:
// booleans, integers and strings, and arrays or structs made only of them.
func plainKey(t reflect.Type) bool {
	if t.Implements(equatableType) {
		return false
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Array:
		return plainKey(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !plainKey(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (mapHint) Hash(v reflect.Value, ch *Chainer) (uint64, error) {
	entries := make([]uint64, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		hk, err := ch.Hash(iter.Key())
		if err != nil {
			return 0, err
		}
		hv, err := ch.Hash(iter.Value())
		if err != nil {
			return 0, err
		}
		entries = append(entries, Combine(hk, hv))
	}
	return combineUnordered(entries), nil
}

func (mapHint) String() string { return "map" }

func keySegment(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return fmt.Sprintf("[%q]", k.String())
	}
	return "[" + render(k) + "]"
}

func sortByPath(diffs []Difference) {
	sort.SliceStable(diffs, func(i, j int) bool { return diffs[i].Path < diffs[j].Path })
}
