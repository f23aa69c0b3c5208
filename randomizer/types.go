// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// types.go — reflect.Type descriptors resolved once and shared by hints.

package randomizer

import (
	"reflect"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
)

var (
	errorType      = reflect.TypeFor[error]()
	intType        = reflect.TypeFor[int]()
	timeType       = reflect.TypeFor[time.Time]()
	durationType   = reflect.TypeFor[time.Duration]()
	uuidType       = reflect.TypeFor[uuid.UUID]()
	dateTimeType   = reflect.TypeFor[strfmt.DateTime]()
	dateType       = reflect.TypeFor[strfmt.Date]()
	emailType      = reflect.TypeFor[strfmt.Email]()
	strfmtUUIDType = reflect.TypeFor[strfmt.UUID]()
	hostnameType   = reflect.TypeFor[strfmt.Hostname]()
	enumerableType = reflect.TypeFor[Enumerable]()
)

// Enumerable is implemented by types that can list their own members.
// EnumMembers is called on the zero value, so implement it on a value
// receiver; every member must have the implementing type.
type Enumerable interface {
	EnumMembers() []any
}
