// SPDX-License-Identifier: MIT
// Package: createfake/faker

package faker

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/createfake/duplicator"
)

// Call is an immutable invocation record.
type Call struct {
	name     string
	generics []GenericArg
	args     []any
}

// NewCall records an invocation of name. Nil slices are treated as empty.
// Panics on an empty name or an invalid (zero) GenericArg.
func NewCall(name string, generics []GenericArg, args ...any) *Call {
	if name == "" {
		panic("faker: NewCall with empty name")
	}
	for i, g := range generics {
		if g.kind == genericInvalid {
			panic(fmt.Sprintf("faker: NewCall(%s): invalid generic argument at index %d", name, i))
		}
	}
	return &Call{
		name:     name,
		generics: append([]GenericArg{}, generics...),
		args:     append([]any{}, args...),
	}
}

// Name is the invoked member.
func (c *Call) Name() string { return c.name }

// Generics returns a copy of the generic type arguments.
func (c *Call) Generics() []GenericArg { return append([]GenericArg{}, c.generics...) }

// Args returns a copy of the argument list. The values themselves are not
// copied; use Clone for a detached record.
func (c *Call) Args() []any { return append([]any{}, c.args...) }

// Clone returns a record whose arguments are deep copies made by d.
// Panics on a nil duplicator.
func (c *Call) Clone(d *duplicator.Duplicator) *Call {
	if d == nil {
		panic("faker: Clone(nil)")
	}
	args := make([]any, len(c.args))
	for i, a := range c.args {
		args[i] = d.Copy(a)
	}
	return &Call{name: c.name, generics: c.Generics(), args: args}
}

// String renders the call as Name[T1, T2](a1, a2).
func (c *Call) String() string {
	var sb strings.Builder
	sb.WriteString(c.name)
	if len(c.generics) > 0 {
		sb.WriteByte('[')
		for i, g := range c.generics {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(g.String())
		}
		sb.WriteByte(']')
	}
	sb.WriteByte('(')
	for i, a := range c.args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", a)
	}
	sb.WriteByte(')')
	return sb.String()
}
