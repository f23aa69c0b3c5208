// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// hint_sequence.go — open iterator shapes resolved to a concrete backing slice.
//
// Any func(yield func(V) bool) or func(yield func(K, V) bool), which covers
// iter.Seq[V] and iter.Seq2[K,V], is served by generating a slice of rows
// up front and returning an iterator that replays it. The iterator is
// restartable and stops as soon as yield returns false.

package randomizer

import "reflect"

type sequenceHint struct{}

// seqYield returns the yield func type of an iterator shape.
func seqYield(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return nil, false
	}
	y := t.In(0)
	if y.Kind() != reflect.Func || y.IsVariadic() || y.NumOut() != 1 || y.Out(0).Kind() != reflect.Bool {
		return nil, false
	}
	if n := y.NumIn(); n != 1 && n != 2 {
		return nil, false
	}
	return y, true
}

func (sequenceHint) Supports(t reflect.Type, _ *Chainer) bool {
	_, ok := seqYield(t)
	return ok
}

func (sequenceHint) Create(t reflect.Type, ch *Chainer) (reflect.Value, error) {
	y, _ := seqYield(t)

	n := ch.CollectionSize()
	for i := 0; i < y.NumIn(); i++ {
		if ch.Exhausted(y.In(i)) {
			n = 0
		}
	}

	rows := make([][]reflect.Value, n)
	for r := range rows {
		row := make([]reflect.Value, y.NumIn())
		for i := range row {
			v, err := ch.Create(y.In(i))
			if err != nil {
				return reflect.Value{}, err
			}
			row[i] = v
		}
		rows[r] = row
	}

	return reflect.MakeFunc(t, func(args []reflect.Value) []reflect.Value {
		yield := args[0]
		for _, row := range rows {
			if !yield.Call(row)[0].Bool() {
				break
			}
		}
		return nil
	}), nil
}

func (sequenceHint) String() string { return "sequence" }
