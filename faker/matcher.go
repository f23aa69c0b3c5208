// SPDX-License-Identifier: MIT
// Package: createfake/faker

package faker

import (
	"fmt"

	"github.com/katalvlaran/createfake/valuer"
)

// Matcher matches Calls using a Valuer for argument equality. It is safe
// for concurrent use.
type Matcher struct {
	v *valuer.Valuer
}

// NewMatcher returns a Matcher comparing arguments with v. Panics on nil.
func NewMatcher(v *valuer.Valuer) *Matcher {
	if v == nil {
		panic("faker: NewMatcher(nil)")
	}
	return &Matcher{v: v}
}

// Matches reports whether actual satisfies expected. Either record being
// nil is ErrNilCall; errors from argument comparison are returned as is.
func (m *Matcher) Matches(expected, actual *Call) (bool, error) {
	reason, err := m.mismatch(expected, actual)
	if err != nil {
		return false, err
	}
	return reason == "", nil
}

// Explain returns why actual does not satisfy expected, or "" on a match.
func (m *Matcher) Explain(expected, actual *Call) (string, error) {
	return m.mismatch(expected, actual)
}

func (m *Matcher) mismatch(expected, actual *Call) (string, error) {
	if expected == nil || actual == nil {
		return "", fmt.Errorf("Matches: %w", ErrNilCall)
	}
	if expected.name != actual.name {
		return fmt.Sprintf("name %q != %q", expected.name, actual.name), nil
	}

	if len(expected.generics) != len(actual.generics) {
		return fmt.Sprintf("generic count %d != %d", len(expected.generics), len(actual.generics)), nil
	}
	for i, g := range expected.generics {
		if !g.accepts(actual.generics[i]) {
			return fmt.Sprintf("generic[%d] %s != %s", i, g, actual.generics[i]), nil
		}
	}

	if len(expected.args) != len(actual.args) {
		return fmt.Sprintf("argument count %d != %d", len(expected.args), len(actual.args)), nil
	}
	for i, want := range expected.args {
		got := actual.args[i]
		if am, ok := want.(ArgMatcher); ok {
			if !am.MatchArg(got) {
				return fmt.Sprintf("arg[%d] %v rejected by %v", i, got, am), nil
			}
			continue
		}
		eq, err := m.v.Equals(want, got)
		if err != nil {
			return "", fmt.Errorf("Matches(%s): arg[%d]: %w", expected.name, i, err)
		}
		if !eq {
			return fmt.Sprintf("arg[%d] %v != %v", i, want, got), nil
		}
	}
	return "", nil
}
