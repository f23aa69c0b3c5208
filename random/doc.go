// Package random provides the value-random sources consumed by the
// generation engine.
//
// A Source emits primitive scalars and byte sequences. Two implementations
// are offered:
//
//   - Seeded: math/rand stream guarded by a mutex; reproducible with WithSeed.
//   - Secure: crypto/rand backed; slower, never reproducible.
//
// Both are safe for concurrent use, which is the only shared mutable
// resource crossing independent Create requests. Helpers (Between, Item,
// Chance, Text) derive bounded values from any Source.
package random
