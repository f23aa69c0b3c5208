// SPDX-License-Identifier: MIT
// Package: createfake/valuer
//
// valuer.go — the comparison engine: chain assembly and public operations.
//
// Design contract:
//   • Compare, Equals, Hash and Order share one dispatcher (Chainer).
//   • The chain is built once in New: WithHints…, built-ins, WithExtraHints….
//   • A panic inside a hint is recovered at the top level and reported as
//     ErrHintPanic; traversal state is per request, so nothing leaks.

package valuer

import (
	"fmt"
	"reflect"
	"strings"
)

// Valuer compares, hashes and orders values. It is immutable after New and
// safe for concurrent use.
type Valuer struct {
	cfg   config
	hints []CompareHint
}

// New builds a Valuer from opts. The chain is WithHints…, the built-ins
// (unless WithoutDefaults), then WithExtraHints….
// Complexity: O(len(hints)) time and space.
func New(opts ...Option) *Valuer {
	cfg := newConfig(opts...)
	var builtins []CompareHint
	if cfg.defaults {
		builtins = defaultHints()
	}

	hints := make([]CompareHint, 0, len(cfg.prepend)+len(builtins)+len(cfg.extra))
	hints = append(hints, cfg.prepend...)
	hints = append(hints, builtins...)
	hints = append(hints, cfg.extra...)
	return &Valuer{cfg: cfg, hints: hints}
}

// defaultHints is the built-in catalog; order matters.
func defaultHints() []CompareHint {
	return []CompareHint{
		equatableHint{},
		valueHint{},
		timeHint{},
		derefHint{},
		mapHint{},
		sequenceHint{},
		structHint{},
		identityHint{},
	}
}

// Hints returns a copy of the ordered chain.
func (v *Valuer) Hints() []CompareHint {
	out := make([]CompareHint, len(v.hints))
	copy(out, v.hints)
	return out
}

// Compare lists the structural differences between a and b. An empty
// result means the values are equal. Errors are ErrUnsupportedType,
// ErrRecursionExhausted or ErrHintPanic, each naming the type.
// Complexity: O(N) hint calls for N reachable nodes; maps with reference
// keys add one Hash per key and a Compare per same-hash candidate.
func (v *Valuer) Compare(a, b any) (diffs []Difference, err error) {
	defer recoverHint("Compare", a, &err)
	diffs, err = newChainer(v).Compare(addressable(a), addressable(b))
	if err != nil {
		return nil, err
	}
	return diffs, nil
}

// Equals reports whether Compare finds no difference.
// Complexity: same as Compare.
func (v *Valuer) Equals(a, b any) (bool, error) {
	diffs, err := v.Compare(a, b)
	if err != nil {
		return false, err
	}
	return len(diffs) == 0, nil
}

// Hash returns a structural hash consistent with Equals. A single argument
// is hashed as itself; any other number of arguments is hashed as the
// ordered sequence []any{values...}, so Hash(x, y, z) == Hash([]any{x, y, z}).
// Complexity: O(R·12 + N) for R references and N scalar nodes; each
// reference is hashed once per remaining unfolding budget.
func (v *Valuer) Hash(values ...any) (h uint64, err error) {
	var target any = values
	if len(values) == 1 {
		target = values[0]
	}
	defer recoverHint("Hash", target, &err)
	return newChainer(v).Hash(addressable(target))
}

// Order is a three-way comparison: 0 when a and b are equal, otherwise -1
// or +1, stable for a given pair of values and antisymmetric:
// Order(a, b) == -Order(b, a). The ordering follows the structural hash.
// Equal hashes are broken by the values' rendering, then by the rendered
// differences seen from each side. Values that differ but agree on all
// three yield 0.
//
// Complexity: two Hash calls plus one Compare; one more Compare
// call on a hash and rendering collision.
func (v *Valuer) Order(a, b any) (int, error) {
	diffs, err := v.Compare(a, b)
	if err != nil {
		return 0, err
	}
	if len(diffs) == 0 {
		return 0, nil
	}
	ha, err := v.Hash(a)
	if err != nil {
		return 0, err
	}
	hb, err := v.Hash(b)
	if err != nil {
		return 0, err
	}
	switch {
	case ha < hb:
		return -1, nil
	case ha > hb:
		return 1, nil
	}
	if c := strings.Compare(fmt.Sprint(a), fmt.Sprint(b)); c != 0 {
		return c, nil
	}
	ba, err := v.Compare(b, a)
	if err != nil {
		return 0, err
	}
	return strings.Compare(Render(diffs), Render(ba)), nil
}

// addressable copies x into a fresh variable so nested fields, unexported
// ones included, are addressable.
func addressable(x any) reflect.Value {
	v := reflect.ValueOf(x)
	if !v.IsValid() {
		return v
	}
	p := reflect.New(v.Type()).Elem()
	p.Set(v)
	return p
}

// hintFor returns the first hint supporting the pair.
func (v *Valuer) hintFor(a, b reflect.Value, ch *Chainer) (CompareHint, error) {
	for _, h := range v.hints {
		if h.Supports(a, b, ch) {
			v.cfg.logger.Debug("hint selected", "type", a.Type().String(), "hint", hintName(h), "depth", ch.Depth())
			return h, nil
		}
	}
	v.cfg.logger.Debug("unsupported type", "type", a.Type().String())
	return nil, fmt.Errorf("Compare(%s): %w", a.Type(), ErrUnsupportedType)
}

// recoverHint turns a panic raised during traversal into ErrHintPanic.
func recoverHint(method string, subject any, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s(%T): %w: %v", method, subject, ErrHintPanic, r)
	}
}

func hintName(h CompareHint) string {
	if s, ok := h.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", h)
}
