// Package valuer compares, hashes and orders arbitrary Go values
// structurally.
//
// A Valuer holds an ordered chain of CompareHint values. For every pair of
// values the engine first applies the generic rules below, then hands the
// pair to the first hint that supports it. Hints recurse through the
// request's Chainer for nested members, which labels every Difference with
// the path where it was found (for example `Items[2].Name`).
//
// Engine rules, in order:
//
//  1. identity: the same pointer, map, slice header, channel or function on
//     both sides is equal without consulting any hint;
//  2. nil: both nil is equal, exactly one nil is a difference;
//  3. type: different dynamic types are a difference;
//  4. cycles: re-entering a (left, right) reference pair that is already
//     being compared counts as equal;
//  5. depth: nesting beyond WithMaxDepth fails with ErrRecursionExhausted;
//  6. hints, first supporter wins; none fails with ErrUnsupportedType.
//
// Built-in chain:
//
//   - equatable: types implementing ValueEquatable decide for themselves
//   - value:     bool, integers, floats (NaN equals NaN, -0 equals +0), complex, strings
//   - time:      time.Time via Equal
//   - deref:     pointers and interfaces compare what they point to
//   - map:       key sets first, then values per matched key; order-insensitive;
//                keys holding pointers are matched structurally, not by address
//   - sequence:  slices and arrays element-wise; length mismatch is a difference
//   - struct:    every field, exported or not, by name
//   - identity:  channels and unsafe pointers by address, functions by closure
//
// Hash is consistent with Equals: equal values always hash alike. Hashes of
// reference graphs unfold at most a fixed number of reference hops and each
// reference is hashed once per remaining budget, so cyclic and shared
// structures hash in time linear in their references.
//
// A Valuer is immutable after New and safe for concurrent use.
package valuer
