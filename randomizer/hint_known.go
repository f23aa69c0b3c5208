// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// hint_known.go — well-known library types whose raw shape would generate
// meaningless values (a random [16]byte is not a valid UUID, a random
// string is not an email).

package randomizer

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"github.com/katalvlaran/createfake/random"
)

// Time window for generated instants: whole seconds in [2000-01-01, 2050-01-01).
var (
	timeFloor = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	timeSpan  = time.Date(2050, time.January, 1, 0, 0, 0, 0, time.UTC).Unix() - timeFloor
)

type knownHint struct{}

var knownGenerators = map[reflect.Type]func(ch *Chainer) (any, error){
	timeType: func(ch *Chainer) (any, error) { return randomTime(ch), nil },
	durationType: func(ch *Chainer) (any, error) {
		return time.Duration(ch.Source().Int63n(int64(24 * time.Hour))), nil
	},
	uuidType: func(ch *Chainer) (any, error) { return randomUUID(ch) },
	dateTimeType: func(ch *Chainer) (any, error) {
		return strfmt.DateTime(randomTime(ch)), nil
	},
	dateType: func(ch *Chainer) (any, error) {
		y, m, d := randomTime(ch).Date()
		return strfmt.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)), nil
	},
	emailType: func(ch *Chainer) (any, error) {
		s, err := randomEmail(ch)
		return strfmt.Email(s), err
	},
	strfmtUUIDType: func(ch *Chainer) (any, error) {
		u, err := randomUUID(ch)
		return strfmt.UUID(u.String()), err
	},
	hostnameType: func(ch *Chainer) (any, error) {
		s, err := randomHost(ch)
		return strfmt.Hostname(s), err
	},
}

func (knownHint) Supports(t reflect.Type, _ *Chainer) bool {
	_, ok := knownGenerators[t]
	return ok
}

func (knownHint) Create(t reflect.Type, ch *Chainer) (reflect.Value, error) {
	v, err := knownGenerators[t](ch)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("Create(%s): %w", t, err)
	}
	return reflect.ValueOf(v), nil
}

func (knownHint) String() string { return "known" }

func randomTime(ch *Chainer) time.Time {
	return time.Unix(timeFloor+ch.Source().Int63n(timeSpan), 0).UTC()
}

func randomUUID(ch *Chainer) (uuid.UUID, error) {
	return uuid.NewRandomFromReader(ch.Source())
}

func randomHost(ch *Chainer) (string, error) {
	label, err := random.Lower(ch.Source(), 3, 10)
	if err != nil {
		return "", err
	}
	return label + ".example.com", nil
}

func randomEmail(ch *Chainer) (string, error) {
	local, err := random.Lower(ch.Source(), 3, 10)
	if err != nil {
		return "", err
	}
	host, err := randomHost(ch)
	if err != nil {
		return "", err
	}
	return local + "@" + host, nil
}
