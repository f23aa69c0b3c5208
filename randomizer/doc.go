// Package randomizer generates structurally valid random instances of
// arbitrary Go types.
//
// A Randomizer holds an ordered chain of CreateHint values. For every
// requested reflect.Type the chain is consulted front to back and the first
// hint that supports the type builds the value, recursing through the
// request's Chainer for nested types (slice elements, map keys and values,
// channel payloads, struct fields, constructor parameters).
//
// Built-in chain, in order (earlier entries pre-empt later, more general ones):
//
//   - known:      time.Time, time.Duration, uuid.UUID, strfmt.{DateTime,Date,Email,UUID,Hostname}
//   - enum:       registered member sets (Enum) and Enumerable types
//   - value:      bool, integers, floats, complex numbers, strings
//   - collection: slices, arrays, maps and sets (map[K]struct{})
//   - sequence:   iterator shapes iter.Seq[V] / iter.Seq2[K,V] over canonical slices
//   - func:       other function types, as stubs returning fixed generated results
//   - async:      channels, delivered already completed with one payload
//   - interface:  registered implementations, scalar placeholder for any, error
//   - pointer:    address of a generated element
//   - object:     structs via the richest registered constructor, then fields
//
// Termination:
//
// Each request carries an ancestry path of the types being built. Once a
// type occurs Limiter.MaxDepth times on that path, pointers, collections
// and the engine itself stop descending and yield the zero value, so
// self-referential types always produce a finite graph.
//
// Errors:
//
//	ErrNilType          - Create called with a nil reflect.Type.
//	ErrUnsupportedType  - no hint claims the type; never retried.
//	ErrConstructorFailed - a registered constructor returned an error.
//	ErrInvalidInstance  - WithValidation is on and the result fails validation.
//
// Concurrency:
//
// A Randomizer is immutable after New and safe for concurrent use; every
// top-level request builds its own Chainer. The injected random.Source is
// the only shared mutable resource and must be thread-safe.
package randomizer
