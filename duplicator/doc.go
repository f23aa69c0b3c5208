// Package duplicator makes deep copies of arbitrary Go values.
//
// The copy shares no mutable memory reachable through exported fields,
// pointers, maps, slices, arrays or interfaces with the original. Cycles
// and shared references are preserved: two paths that reach the same
// pointer or map in the original reach the same copy.
//
// Limits:
//
//   - unexported struct fields are copied by assignment (shallow);
//   - channels, functions and unsafe pointers are copied by assignment;
//   - types implementing DeepCloner copy themselves;
//   - types registered with WithShallow are copied by assignment.
//
// A Duplicator is immutable after New and safe for concurrent use.
package duplicator
