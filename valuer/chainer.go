// SPDX-License-Identifier: MIT
// Package: createfake/valuer
//
// chainer.go — per-request traversal context handed to every hint.
//
// The Chainer runs the generic engine rules (identity, nil, type, cycle,
// depth) before every hint call, so hints only see non-nil pairs of one
// type. Cycles are detected on (left, right) reference pairs for Compare.
// Hash unfolds at most hashRefDepth reference hops along any path and
// memoizes each (reference, remaining hops) state, so shared and cyclic
// graphs hash in time proportional to references × hashRefDepth.

package valuer

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/katalvlaran/createfake/ancestry"
)

// hashRefDepth bounds the number of pointer, map and slice hops one hash
// path unfolds.
const hashRefDepth = 12

// pairKey identifies a (left, right) pair of references of one type.
type pairKey struct {
	typ    reflect.Type
	pa, pb uintptr
	la, lb int
}

// hashKey identifies one reference at one unfolding budget.
type hashKey struct {
	typ  reflect.Type
	ptr  uintptr
	n    int
	refs int
}

// Chainer is created for one top-level request. It is not safe for
// concurrent use; hints must not retain it.
type Chainer struct {
	engine *Valuer
	pairs  *ancestry.Path[pairKey]
	depth  int
	refs   int
	memo   map[hashKey]uint64
}

func newChainer(v *Valuer) *Chainer {
	return &Chainer{engine: v, pairs: ancestry.New[pairKey]()}
}

// Depth is the current nesting of Compare or Hash calls.
func (c *Chainer) Depth() int { return c.depth }

// Logger is the engine's debug logger.
func (c *Chainer) Logger() *slog.Logger { return c.engine.cfg.logger }

// CompareAt compares a nested pair and prefixes every resulting path
// with seg (a field name or an index such as "[3]").
func (c *Chainer) CompareAt(seg string, a, b reflect.Value) ([]Difference, error) {
	diffs, err := c.Compare(a, b)
	if err != nil {
		return nil, err
	}
	for i := range diffs {
		diffs[i].Path = joinPath(seg, diffs[i].Path)
	}
	return diffs, nil
}

// Compare runs the full engine on a nested pair.
func (c *Chainer) Compare(a, b reflect.Value) ([]Difference, error) {
	if identical(a, b) {
		return nil, nil
	}

	aNil, bNil := isNil(a), isNil(b)
	switch {
	case aNil && bNil:
		return nil, nil
	case aNil:
		return []Difference{{Message: "nil != " + typeName(b)}}, nil
	case bNil:
		return []Difference{{Message: typeName(a) + " != nil"}}, nil
	}

	if a.Type() != b.Type() {
		return []Difference{{Message: fmt.Sprintf("type %s != %s", a.Type(), b.Type())}}, nil
	}

	if key, ok := referencePair(a, b); ok {
		if c.pairs.Contains(key) {
			c.Logger().Debug("cycle treated as equal", "type", a.Type().String(), "depth", c.depth)
			return nil, nil
		}
		defer c.pairs.Enter(key)()
	}

	if c.depth >= c.engine.cfg.maxDepth {
		return nil, fmt.Errorf("Compare(%s): depth %d: %w", a.Type(), c.depth, ErrRecursionExhausted)
	}
	c.depth++
	defer func() { c.depth-- }()

	h, err := c.engine.hintFor(a, b, c)
	if err != nil {
		return nil, err
	}
	return h.Compare(a, b, c)
}

// Hash runs the full engine on a nested value.
func (c *Chainer) Hash(v reflect.Value) (uint64, error) {
	if isNil(v) {
		return nilHash, nil
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if c.refs >= hashRefDepth {
			return cycleHash, nil
		}
		key := hashKey{typ: v.Type(), ptr: v.Pointer(), refs: c.refs}
		if v.Kind() == reflect.Slice {
			key.n = v.Len()
		}
		if h, ok := c.memo[key]; ok {
			return h, nil
		}
		c.refs++
		h, err := c.hash(v)
		c.refs--
		if err != nil {
			return 0, err
		}
		if c.memo == nil {
			c.memo = make(map[hashKey]uint64)
		}
		c.memo[key] = h
		return h, nil
	}
	return c.hash(v)
}

func (c *Chainer) hash(v reflect.Value) (uint64, error) {
	if c.depth >= c.engine.cfg.maxDepth {
		return 0, fmt.Errorf("Hash(%s): depth %d: %w", v.Type(), c.depth, ErrRecursionExhausted)
	}
	c.depth++
	defer func() { c.depth-- }()

	h, err := c.engine.hintFor(v, v, c)
	if err != nil {
		return 0, err
	}
	return h.Hash(v, c)
}

// identical reports whether a and b are the same reference.
func identical(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() || a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Func:
		return refID(a) == refID(b)
	case reflect.Slice:
		return a.Pointer() == b.Pointer() && a.Len() == b.Len() && a.IsNil() == b.IsNil()
	default:
		return false
	}
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

func referencePair(a, b reflect.Value) (pairKey, bool) {
	switch a.Kind() {
	case reflect.Pointer, reflect.Map:
		return pairKey{typ: a.Type(), pa: a.Pointer(), pb: b.Pointer()}, true
	case reflect.Slice:
		return pairKey{typ: a.Type(), pa: a.Pointer(), pb: b.Pointer(), la: a.Len(), lb: b.Len()}, true
	default:
		return pairKey{}, false
	}
}

func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}
