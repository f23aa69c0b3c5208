// SPDX-License-Identifier: MIT
// Package: createfake/valuer

package valuer

import "strings"

// Difference is one structural mismatch. Path is empty for the compared
// values themselves.
type Difference struct {
	Path    string
	Message string
}

func (d Difference) String() string {
	if d.Path == "" {
		return "(root): " + d.Message
	}
	return d.Path + ": " + d.Message
}

// Render joins differences one per line.
func Render(diffs []Difference) string {
	var sb strings.Builder
	for i, d := range diffs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(d.String())
	}
	return sb.String()
}

// joinPath prefixes a nested path with the segment that led to it.
func joinPath(seg, child string) string {
	switch {
	case seg == "":
		return child
	case child == "":
		return seg
	case child[0] == '[':
		return seg + child
	default:
		return seg + "." + child
	}
}
