// Package faker matches recorded method invocations against expectations.
//
// A Call is an immutable record of one invocation: the member name, the
// generic type arguments and the argument values. A Matcher decides whether
// an actual Call satisfies an expected one:
//
//   - names are identical;
//   - generic argument lists have equal length and each position is equal,
//     or the expected position is AnyGeneric;
//   - argument lists have equal length and each position is deep-equal
//     under a valuer.Valuer, or the expected argument is an ArgMatcher
//     (Any, Where) that accepts the actual one.
//
// Argument comparison is delegated entirely to the Valuer, including its
// cycle handling; the matcher adds no recursion guard of its own.
//
// A Recorder collects Calls made against a test double and verifies how
// many of them match an expectation.
package faker
