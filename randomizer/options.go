// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// options.go — functional options resolved into an immutable config.
//
// Contract:
//   • Options mutate a config before New returns; the Randomizer never
//     changes afterwards.
//   • Option constructors VALIDATE and PANIC on meaningless input (nil
//     hints, negative bounds, constructors of the wrong shape).
//   • Later options override earlier ones for scalar knobs; registrations
//     (hints, implementations, constructors, enums) accumulate.

package randomizer

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/katalvlaran/createfake/logging"
	"github.com/katalvlaran/createfake/random"
)

// Option customizes a Randomizer.
type Option func(*config)

// config aggregates all knobs used by the engine and its hints.
type config struct {
	source  random.Source
	limiter Limiter

	prepend []CreateHint // consulted before the built-in chain
	extra   []CreateHint // consulted after the built-in chain

	impls map[reflect.Type][]reflect.Type  // interface → concrete candidates
	ctors map[reflect.Type][]reflect.Value // struct type → constructor funcs
	enums map[reflect.Type][]reflect.Value // type → members

	collMin, collMax int
	strMin, strMax   int

	validate bool
	logger   *slog.Logger
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultCollectionMin = 1
	defaultCollectionMax = 4
	defaultStringMin     = 4
	defaultStringMax     = 12
)

// newConfig starts from defaults and applies opts in order.
func newConfig(opts ...Option) config {
	cfg := config{
		limiter: LimiterFew,
		impls:   make(map[reflect.Type][]reflect.Type),
		ctors:   make(map[reflect.Type][]reflect.Value),
		enums:   make(map[reflect.Type][]reflect.Value),
		collMin: defaultCollectionMin,
		collMax: defaultCollectionMax,
		strMin:  defaultStringMin,
		strMax:  defaultStringMax,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.source == nil {
		cfg.source = random.NewSeeded()
	}
	if cfg.logger == nil {
		cfg.logger = logging.Discard()
	}
	return cfg
}

// WithSource injects the value-random source. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithSource(src random.Source) Option {
	if src == nil {
		// Fail fast: a nil source would only surface on the first draw.
		panic("randomizer: WithSource(nil)")
	}
	return func(c *config) { c.source = src }
}

// WithSeed uses a reproducible random.Seeded source.
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *config) {
		// Seeded source → identical draws for identical seeds.
		c.source = random.NewSeeded(random.WithSeed(seed))
	}
}

// WithLimiter sets the same-type recursion bound. Panics if MaxDepth < 1.
// Complexity: O(1) time, O(1) space.
func WithLimiter(l Limiter) Option {
	if l.MaxDepth < 1 {
		panic("randomizer: WithLimiter(MaxDepth<1)")
	}
	return func(c *config) { c.limiter = l }
}

// WithHints places hints in front of the built-in chain so they override
// built-ins for the shapes they support. Repeated calls accumulate in call
// order. Panics on a nil hint.
// Complexity: O(len(hints)) time and space.
func WithHints(hints ...CreateHint) Option {
	mustHints("WithHints", hints)
	return func(c *config) { c.prepend = append(c.prepend, hints...) }
}

// WithExtraHints appends hints after the built-in chain, as fallbacks for
// shapes nothing else supports. Panics on a nil hint.
// Complexity: O(len(hints)) time and space.
func WithExtraHints(hints ...CreateHint) Option {
	mustHints("WithExtraHints", hints)
	return func(c *config) { c.extra = append(c.extra, hints...) }
}

func mustHints(method string, hints []CreateHint) {
	for i, h := range hints {
		if h == nil {
			panic(fmt.Sprintf("randomizer: %s: nil hint at index %d", method, i))
		}
	}
}

// WithImplementation registers concrete as a candidate for the interface
// type iface. Several candidates for one interface are picked at random.
// Panics unless iface is an interface type implemented by concrete.
// Complexity: O(1) time, O(1) space per registration.
func WithImplementation(iface, concrete reflect.Type) Option {
	if iface == nil || concrete == nil || iface.Kind() != reflect.Interface {
		panic("randomizer: WithImplementation needs an interface type and a concrete type")
	}
	if !concrete.Implements(iface) {
		panic(fmt.Sprintf("randomizer: WithImplementation: %s does not implement %s", concrete, iface))
	}
	return func(c *config) {
		// Accumulate: the interface hint draws among all candidates.
		c.impls[iface] = append(c.impls[iface], concrete)
	}
}

// Implement is the generic form of WithImplementation.
func Implement[I, C any]() Option {
	return WithImplementation(reflect.TypeFor[I](), reflect.TypeFor[C]())
}

// WithConstructor registers fn as a way to build its result type. fn must
// be a func returning T or *T, optionally followed by an error, where T is
// a struct. Among several constructors for T the one with the most
// parameters is used.
// Panics on any other shape, variadic funcs included.
// Complexity: O(1) time, O(1) space per registration.
func WithConstructor(fn any) Option {
	v := reflect.ValueOf(fn)
	if fn == nil || v.Kind() != reflect.Func || v.IsNil() {
		panic("randomizer: WithConstructor needs a non-nil func")
	}
	ft := v.Type()
	if ft.IsVariadic() {
		panic("randomizer: WithConstructor: variadic constructors are not supported")
	}
	switch {
	case ft.NumOut() == 1:
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
	default:
		panic(fmt.Sprintf("randomizer: WithConstructor: %s must return T or (T, error)", ft))
	}
	target := ft.Out(0)
	if target.Kind() == reflect.Pointer {
		// func(...) *T registers for T; the object hint takes the address back.
		target = target.Elem()
	}
	if target.Kind() != reflect.Struct {
		panic(fmt.Sprintf("randomizer: WithConstructor: %s does not build a struct", ft))
	}
	return func(c *config) { c.ctors[target] = append(c.ctors[target], v) }
}

// Enum registers the complete member set of T; generation then picks one
// member uniformly. A later Enum for the same T replaces the earlier set.
// Panics on an empty set.
// Complexity: O(len(members)) time and space.
func Enum[T any](members ...T) Option {
	if len(members) == 0 {
		panic("randomizer: Enum with no members")
	}
	t := reflect.TypeFor[T]()
	vals := make([]reflect.Value, len(members))
	for i := range members {
		// Addressable element keeps T exact even when T is an interface.
		vals[i] = reflect.ValueOf(&members[i]).Elem()
	}
	return func(c *config) { c.enums[t] = vals }
}

// WithCollectionSize bounds generated slice and map lengths to [lo,hi].
// Panics unless 0 <= lo <= hi.
// Complexity: O(1) time, O(1) space.
func WithCollectionSize(lo, hi int) Option {
	if lo < 0 || hi < lo {
		panic("randomizer: WithCollectionSize needs 0 <= lo <= hi")
	}
	return func(c *config) { c.collMin, c.collMax = lo, hi }
}

// WithStringLength bounds generated string lengths to [lo,hi].
// Panics unless 0 <= lo <= hi. `validate` tags on a field take precedence.
// Complexity: O(1) time, O(1) space.
func WithStringLength(lo, hi int) Option {
	if lo < 0 || hi < lo {
		panic("randomizer: WithStringLength needs 0 <= lo <= hi")
	}
	return func(c *config) { c.strMin, c.strMax = lo, hi }
}

// WithValidation re-validates every generated struct (or pointer to
// struct) with go-playground/validator before returning it.
// Complexity: O(1) here; one validator pass per top-level Create.
func WithValidation() Option {
	return func(c *config) { c.validate = true }
}

// WithLogger routes debug records (hint selection, limiter cut-offs,
// unsupported types) to l. Panics on nil; omit the option to discard.
// Complexity: O(1) time, O(1) space.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("randomizer: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
