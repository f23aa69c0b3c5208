// Package createfake is a reflection-driven toolkit for tests: it builds
// random instances of arbitrary Go types, compares any two values
// structurally and matches recorded calls of hand-written test doubles
// against expectations.
//
// 🚀 What is in the box?
//
//	• randomizer – Create(t) for scalars, enums, slices, maps, sets, channels,
//	  funcs, interfaces, pointers, self-referential structs and constructors
//	• valuer     – Compare / Equals / Hash / Order with path-labelled Differences
//	• faker      – Call records, AnyGeneric wildcard, Matcher and Recorder
//	• duplicator – deep copy preserving sharing and cycles
//	• config     – YAML settings feeding every engine above
//	• tools      – one pre-wired bundle for a test suite
//
// ✨ Why createfake?
//
//   - Terminates on cyclic types and cyclic values
//   - Open hint chains – prepend your own CreateHint or CompareHint
//   - Deterministic when seeded, crypto-backed when asked
//   - Honours `validate:"..."` tags when generating structs
//
// Layout:
//
//	ancestry/   — LIFO path of types or value pairs under traversal
//	random/     — seeded and secure value sources
//	randomizer/ — generation engine + create hints
//	valuer/     — comparison engine + compare hints
//	faker/      — call records and expectation matching
//	duplicator/ — structural deep copy
//	logging/    — slog construction
//	config/     — YAML settings
//	tools/      — bundle wiring all of the above
//
// Quick example:
//
//	t := tools.Default()
//	a, _ := tools.Create[Order](t)
//	b := tools.Copy(t, a)
//	ok, _ := t.Valuer.Equals(a, b) // true
//
//	go get github.com/katalvlaran/createfake
package createfake
