// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// randomizer.go — the generation engine: chain assembly and dispatch.
//
// Design contract:
//   • One dispatcher: create(t, ch). Limiter check, ancestry push, ordered
//     hint trial, ErrUnsupportedType when nothing claims t.
//   • The chain is built once in New: WithHints…, built-ins, WithExtraHints….
//   • Hint errors propagate unchanged; the engine never retries.

package randomizer

import (
	"context"
	"fmt"
	"reflect"
	"runtime"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/createfake/random"
)

// Randomizer creates random instances of arbitrary types. It is immutable
// after New and safe for concurrent use.
type Randomizer struct {
	cfg   config
	hints []CreateHint
	check *validator.Validate
}

// New builds a Randomizer from opts. The chain is WithHints…, the built-ins,
// then WithExtraHints…; it never changes afterwards.
// Complexity: O(len(hints)) time and space.
func New(opts ...Option) *Randomizer {
	cfg := newConfig(opts...)
	builtins := defaultHints()

	hints := make([]CreateHint, 0, len(cfg.prepend)+len(builtins)+len(cfg.extra))
	hints = append(hints, cfg.prepend...)
	hints = append(hints, builtins...)
	hints = append(hints, cfg.extra...)

	r := &Randomizer{cfg: cfg, hints: hints}
	if cfg.validate {
		r.check = validator.New(validator.WithRequiredStructEnabled())
	}
	return r
}

// defaultHints is the built-in catalog; order matters.
func defaultHints() []CreateHint {
	return []CreateHint{
		knownHint{},
		enumHint{},
		valueHint{},
		collectionHint{},
		sequenceHint{},
		funcHint{},
		asyncHint{},
		interfaceHint{},
		pointerHint{},
		objectHint{},
	}
}

// Hints returns a copy of the ordered chain.
func (r *Randomizer) Hints() []CreateHint {
	out := make([]CreateHint, len(r.hints))
	copy(out, r.hints)
	return out
}

// Source returns the injected value-random source.
func (r *Randomizer) Source() random.Source { return r.cfg.source }

// Limiter returns the configured recursion bound.
func (r *Randomizer) Limiter() Limiter { return r.cfg.limiter }

// Create returns a random instance of t as an any.
// Errors: ErrNilType, ErrUnsupportedType naming the type,
// ErrConstructorFailed, ErrInvalidInstance (WithValidation only).
func (r *Randomizer) Create(t reflect.Type) (any, error) {
	v, err := r.CreateWith(t, nil)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// CreateWith returns a random instance of t, continuing the ancestry of
// parent when it is non-nil. A nil parent starts a fresh request.
// A parent must come from r: nested calls run on the parent's engine, so
// a Chainer of another Randomizer is rejected with ErrForeignChainer.
// Complexity: one dispatch per generated node, bounded by the Limiter.
func (r *Randomizer) CreateWith(t reflect.Type, parent *Chainer) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, fmt.Errorf("CreateWith: %w", ErrNilType)
	}
	if parent != nil && parent.engine != r {
		return reflect.Value{}, fmt.Errorf("CreateWith(%s): %w", t, ErrForeignChainer)
	}
	ch := parent
	if ch == nil {
		ch = newChainer(r)
	}
	v, err := r.create(t, ch)
	if err != nil {
		return reflect.Value{}, err
	}
	if parent == nil && r.check != nil {
		if err = r.validate(v); err != nil {
			return reflect.Value{}, err
		}
	}
	return v, nil
}

// CreateMany runs n independent requests for t concurrently. Each request
// has its own Chainer; the first failure cancels the remaining ones.
// Concurrency is capped at GOMAXPROCS. n <= 0 yields an empty slice.
// Complexity: n × Create, spread over the worker limit.
func (r *Randomizer) CreateMany(ctx context.Context, t reflect.Type, n int) ([]any, error) {
	if t == nil {
		return nil, fmt.Errorf("CreateMany: %w", ErrNilType)
	}
	if n <= 0 {
		return []any{}, nil
	}

	out := make([]any, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := r.Create(t)
			if err != nil {
				return fmt.Errorf("CreateMany[%d]: %w", i, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// create is the single dispatcher used by top-level and nested requests.
func (r *Randomizer) create(t reflect.Type, ch *Chainer) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, fmt.Errorf("Create: %w", ErrNilType)
	}
	if ch.Exhausted(t) {
		r.cfg.logger.Debug("limiter reached", "type", t.String(), "depth", ch.Depth())
		return reflect.Zero(t), nil
	}
	defer ch.path.Enter(t)()

	for _, h := range r.hints {
		if !h.Supports(t, ch) {
			continue
		}
		r.cfg.logger.Debug("hint selected", "type", t.String(), "hint", hintName(h), "depth", ch.Depth())
		v, err := h.Create(t, ch)
		if err != nil {
			return reflect.Value{}, err
		}
		return fit(v, t, h)
	}

	r.cfg.logger.Debug("unsupported type", "type", t.String())
	return reflect.Value{}, fmt.Errorf("Create(%s): %w", t, ErrUnsupportedType)
}

// fit makes v carry exactly type t, boxing into interfaces and converting
// between identical underlying types.
func fit(v reflect.Value, t reflect.Type, h CreateHint) (reflect.Value, error) {
	switch {
	case !v.IsValid():
		return reflect.Zero(t), nil
	case v.Type() == t:
		return v, nil
	case v.Type().AssignableTo(t):
		out := reflect.New(t).Elem()
		out.Set(v)
		return out, nil
	case v.Type().ConvertibleTo(t):
		return v.Convert(t), nil
	default:
		return reflect.Value{}, fmt.Errorf("Create(%s): hint %s produced %s: %w",
			t, hintName(h), v.Type(), ErrUnsupportedType)
	}
}

func (r *Randomizer) validate(v reflect.Value) error {
	target := v
	for target.Kind() == reflect.Pointer || target.Kind() == reflect.Interface {
		if target.IsNil() {
			return nil
		}
		target = target.Elem()
	}
	if target.Kind() != reflect.Struct {
		return nil
	}
	if err := r.check.Struct(target.Interface()); err != nil {
		return fmt.Errorf("Create(%s): %w: %w", v.Type(), ErrInvalidInstance, err)
	}
	return nil
}

func hintName(h CreateHint) string {
	if s, ok := h.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", h)
}

// Create is the generic form of Randomizer.Create.
func Create[T any](r *Randomizer) (T, error) {
	var zero T
	v, err := r.CreateWith(reflect.TypeFor[T](), nil)
	if err != nil {
		return zero, err
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return *p.Interface().(*T), nil
}

// MustCreate is Create for tests and fixtures; it panics on error.
func MustCreate[T any](r *Randomizer) T {
	v, err := Create[T](r)
	if err != nil {
		panic(err)
	}
	return v
}
