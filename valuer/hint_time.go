// SPDX-License-Identifier: MIT
// Package: createfake/valuer

package valuer

import (
	"reflect"
	"time"
)

var timeType = reflect.TypeFor[time.Time]()

// timeHint compares instants with time.Time.Equal, ignoring location and
// monotonic readings.
type timeHint struct{}

func (timeHint) Supports(a, _ reflect.Value, _ *Chainer) bool {
	return a.Type() == timeType && a.CanInterface()
}

func (timeHint) Compare(a, b reflect.Value, _ *Chainer) ([]Difference, error) {
	ta, tb := a.Interface().(time.Time), b.Interface().(time.Time)
	if ta.Equal(tb) {
		return nil, nil
	}
	return []Difference{{Message: ta.Format(time.RFC3339Nano) + " != " + tb.Format(time.RFC3339Nano)}}, nil
}

func (timeHint) Hash(v reflect.Value, _ *Chainer) (uint64, error) {
	t := v.Interface().(time.Time)
	return Combine(hashBits(uint64(t.Unix())), hashBits(uint64(t.Nanosecond()))), nil
}

func (timeHint) String() string { return "time" }
