// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// hint_async.go — channels as async-result wrappers.
//
// A generated channel is already completed: it is buffered, holds exactly
// one generated payload and is closed, so a receive never blocks and a
// range loop sees one value. Payload rules:
//   • interface{} / any payload → scalar placeholder (an int).
//   • payload type exhausted on the path → zero payload.
// Send-only channels cannot be completed and are not supported.

package randomizer

import "reflect"

type asyncHint struct{}

func (asyncHint) Supports(t reflect.Type, _ *Chainer) bool {
	return t.Kind() == reflect.Chan && t.ChanDir()&reflect.RecvDir != 0
}

func (asyncHint) Create(t reflect.Type, ch *Chainer) (reflect.Value, error) {
	payload, err := asyncPayload(t.Elem(), ch)
	if err != nil {
		return reflect.Value{}, err
	}

	both := reflect.ChanOf(reflect.BothDir, t.Elem())
	c := reflect.MakeChan(both, 1)
	c.Send(payload)
	c.Close()

	if both != t {
		return c.Convert(t), nil
	}
	return c, nil
}

func (asyncHint) String() string { return "async" }

func asyncPayload(elem reflect.Type, ch *Chainer) (reflect.Value, error) {
	switch {
	case elem.Kind() == reflect.Interface && elem.NumMethod() == 0:
		v, err := ch.Create(intType)
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(elem).Elem()
		out.Set(v)
		return out, nil
	case ch.Exhausted(elem):
		return reflect.Zero(elem), nil
	default:
		return ch.Create(elem)
	}
}
