// SPDX-License-Identifier: MIT
// Package: createfake/ancestry
//
// ancestry.go — the recursion path shared by both traversal contexts.
//
// Contract:
//   - A Path belongs to exactly one top-level request; it is not safe for
//     concurrent use and must never be shared across requests.
//   - Every Enter is paired with its release, including on error paths:
//     callers write `defer p.Enter(k)()`.
//   - Releases are LIFO. Releasing out of order is a programming error and panics.

// Package ancestry tracks the chain of markers (types, value identities)
// currently being processed by a recursive traversal so that handlers can
// detect repetition before descending instead of relying on stack exhaustion.
package ancestry

// Path is an ordered stack of markers with occurrence counts.
type Path[K comparable] struct {
	stack  []K
	counts map[K]int
}

// New returns an empty Path.
func New[K comparable]() *Path[K] {
	return &Path[K]{counts: make(map[K]int)}
}

// Enter pushes k and returns the func that pops it again. The returned
// func is idempotent.
func (p *Path[K]) Enter(k K) (release func()) {
	p.stack = append(p.stack, k)
	p.counts[k]++
	depth := len(p.stack)
	released := false
	return func() {
		if released {
			return
		}
		released = true
		if len(p.stack) != depth || p.stack[depth-1] != k {
			panic("ancestry: release out of order")
		}
		p.stack = p.stack[:depth-1]
		if p.counts[k]--; p.counts[k] == 0 {
			delete(p.counts, k)
		}
	}
}

// Count reports how many times k currently appears on the path.
func (p *Path[K]) Count(k K) int { return p.counts[k] }

// Contains reports whether k is on the path.
func (p *Path[K]) Contains(k K) bool { return p.counts[k] > 0 }

// Depth is the current path length.
func (p *Path[K]) Depth() int { return len(p.stack) }

// Trail returns a copy of the path, outermost marker first.
func (p *Path[K]) Trail() []K {
	out := make([]K, len(p.stack))
	copy(out, p.stack)
	return out
}
