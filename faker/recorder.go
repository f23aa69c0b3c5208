// SPDX-License-Identifier: MIT
// Package: createfake/faker
//
// recorder.go — thread-safe log of the calls made against a test double.

package faker

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/createfake/duplicator"
	"github.com/katalvlaran/createfake/logging"
)

// Times is an inclusive bound on a number of calls.
type Times struct {
	min, max int // max < 0 means unbounded
}

// Exactly expects n calls.
func Exactly(n int) Times {
	if n < 0 {
		panic("faker: Exactly(n<0)")
	}
	return Times{min: n, max: n}
}

// Once expects a single call.
func Once() Times { return Exactly(1) }

// Never expects no call.
func Never() Times { return Exactly(0) }

// AtLeast expects n or more calls.
func AtLeast(n int) Times {
	if n < 0 {
		panic("faker: AtLeast(n<0)")
	}
	return Times{min: n, max: -1}
}

// Between expects lo to hi calls inclusive.
func Between(lo, hi int) Times {
	if lo < 0 || hi < lo {
		panic("faker: Between needs 0 <= lo <= hi")
	}
	return Times{min: lo, max: hi}
}

// Allows reports whether n calls satisfy t.
func (t Times) Allows(n int) bool {
	return n >= t.min && (t.max < 0 || n <= t.max)
}

func (t Times) String() string {
	switch {
	case t.max < 0:
		return fmt.Sprintf("at least %d", t.min)
	case t.min == t.max:
		return fmt.Sprintf("exactly %d", t.min)
	default:
		return fmt.Sprintf("between %d and %d", t.min, t.max)
	}
}

// RecorderOption customizes a Recorder.
type RecorderOption func(*Recorder)

// WithSnapshots deep-copies every recorded call with d, so later mutation
// of the arguments by the caller does not change the record.
func WithSnapshots(d *duplicator.Duplicator) RecorderOption {
	if d == nil {
		panic("faker: WithSnapshots(nil)")
	}
	return func(r *Recorder) { r.dup = d }
}

// WithRecorderLogger logs every recorded call at debug level.
func WithRecorderLogger(l *slog.Logger) RecorderOption {
	if l == nil {
		panic("faker: WithRecorderLogger(nil)")
	}
	return func(r *Recorder) { r.logger = l }
}

// Recorder stores calls in arrival order. It is safe for concurrent use.
type Recorder struct {
	matcher *Matcher
	dup     *duplicator.Duplicator
	logger  *slog.Logger

	mu    sync.Mutex
	calls []*Call
}

// NewRecorder returns an empty Recorder verifying with m. Panics on nil.
func NewRecorder(m *Matcher, opts ...RecorderOption) *Recorder {
	if m == nil {
		panic("faker: NewRecorder(nil)")
	}
	r := &Recorder{matcher: m, logger: logging.Discard()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record appends c.
func (r *Recorder) Record(c *Call) error {
	if c == nil {
		return fmt.Errorf("Record: %w", ErrNilCall)
	}
	if r.dup != nil {
		c = c.Clone(r.dup)
	}
	r.logger.Debug("call recorded", "call", c.String())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
	return nil
}

// Calls returns the recorded calls in arrival order.
func (r *Recorder) Calls() []*Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Call(nil), r.calls...)
}

// Count returns how many recorded calls match expected.
func (r *Recorder) Count(expected *Call) (int, error) {
	if expected == nil {
		return 0, fmt.Errorf("Count: %w", ErrNilCall)
	}
	n := 0
	for _, c := range r.Calls() {
		ok, err := r.matcher.Matches(expected, c)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}

// Verify checks that the number of calls matching expected satisfies times.
func (r *Recorder) Verify(expected *Call, times Times) error {
	n, err := r.Count(expected)
	if err != nil {
		return err
	}
	if !times.Allows(n) {
		return fmt.Errorf("Verify(%s): want %s, got %d: %w", expected, times, n, ErrCallCountMismatch)
	}
	return nil
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
