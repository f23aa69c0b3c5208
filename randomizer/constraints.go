// SPDX-License-Identifier: MIT
// Package: createfake/randomizer
//
// constraints.go — honour go-playground/validator tags while generating.
//
// Supported rules (first element of a `dive` chain only):
//   oneof=a b c          pick a member (strings, integers, floats)
//   len=N                exact length (strings, slices, maps) or exact value (numbers)
//   min/gte, max/lte     inclusive bounds
//   gt, lt               exclusive bounds
//   email, uuid          formatted strings
// Everything else (required, omitempty, unknown rules, `|` alternatives) is
// ignored here; WithValidation reports what generation could not satisfy.

package randomizer

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/createfake/random"
)

const (
	validateTag = "validate"
	// openSpan widens a one-sided bound into a concrete range.
	openSpan = 1000
)

// rules is the subset of a validate tag that generation understands.
type rules struct {
	oneof        []string
	lo, hi       float64
	hasLo, hasHi bool
	exLo, exHi   bool
	email, uuid  bool
}

func (r rules) bounded() bool { return r.hasLo || r.hasHi }

func (r rules) empty() bool {
	return len(r.oneof) == 0 && !r.bounded() && !r.email && !r.uuid
}

// parseRules extracts generation rules from a validate tag.
func parseRules(tag string) rules {
	var r rules
	for _, part := range strings.Split(tag, ",") {
		name, arg, _ := strings.Cut(strings.TrimSpace(part), "=")
		if name == "dive" {
			break
		}
		if strings.Contains(part, "|") {
			continue
		}
		num, numErr := strconv.ParseFloat(arg, 64)
		switch name {
		case "oneof":
			r.oneof = strings.Fields(arg)
		case "email":
			r.email = true
		case "uuid", "uuid4", "uuid_rfc4122", "uuid4_rfc4122":
			r.uuid = true
		case "len":
			if numErr == nil {
				r.lo, r.hi, r.hasLo, r.hasHi = num, num, true, true
			}
		case "min", "gte":
			if numErr == nil {
				r.lo, r.hasLo = num, true
			}
		case "max", "lte":
			if numErr == nil {
				r.hi, r.hasHi = num, true
			}
		case "gt":
			if numErr == nil {
				r.lo, r.hasLo, r.exLo = num, true, true
			}
		case "lt":
			if numErr == nil {
				r.hi, r.hasHi, r.exHi = num, true, true
			}
		}
	}
	return r
}

// constrained generates a value of t satisfying the tag's rules. handled is
// false when the tag carries nothing generation can act on for t.
func constrained(t reflect.Type, tag string, ch *Chainer) (v reflect.Value, handled bool, err error) {
	if tag == "" {
		return reflect.Value{}, false, nil
	}
	r := parseRules(tag)
	if r.empty() {
		return reflect.Value{}, false, nil
	}
	src := ch.Source()
	out := reflect.New(t).Elem()

	switch {
	case len(r.oneof) > 0:
		pick, err := random.Item(src, r.oneof)
		if err != nil {
			return reflect.Value{}, false, err
		}
		return setParsed(out, pick)

	case t.Kind() == reflect.String && r.email:
		s, err := randomEmail(ch)
		if err != nil {
			return reflect.Value{}, false, err
		}
		out.SetString(s)
		return out, true, nil

	case t.Kind() == reflect.String && r.uuid:
		u, err := randomUUID(ch)
		if err != nil {
			return reflect.Value{}, false, err
		}
		out.SetString(u.String())
		return out, true, nil

	case !r.bounded():
		return reflect.Value{}, false, nil
	}

	cfg := ch.cfg()
	switch t.Kind() {
	case reflect.String:
		lo, hi := sizeRange(r, cfg.strMin, cfg.strMax)
		s, err := random.Text(src, lo, hi)
		if err != nil {
			return reflect.Value{}, false, err
		}
		out.SetString(s)
		return out, true, nil

	case reflect.Slice, reflect.Map:
		lo, hi := sizeRange(r, cfg.collMin, cfg.collMax)
		n, err := random.Between(src, lo, hi)
		if err != nil {
			return reflect.Value{}, false, err
		}
		if t.Kind() == reflect.Slice {
			v, err = makeSlice(t, n, ch)
		} else {
			v, err = makeMap(t, n, ch)
		}
		return v, err == nil, err

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		lo, hi, ok := intRange(r, t)
		if !ok {
			return reflect.Value{}, false, nil
		}
		out.SetInt(lo + src.Int63n(hi-lo+1))
		return out, true, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		lo, hi, ok := intRange(r, t)
		if !ok || lo < 0 {
			return reflect.Value{}, false, nil
		}
		out.SetUint(uint64(lo + src.Int63n(hi-lo+1)))
		return out, true, nil

	case reflect.Float32, reflect.Float64:
		lo, hi := floatRange(r)
		out.SetFloat(lo + src.Float64()*(hi-lo))
		return out, true, nil
	}
	return reflect.Value{}, false, nil
}

// setParsed stores the textual oneof member into out according to its kind.
func setParsed(out reflect.Value, s string) (reflect.Value, bool, error) {
	switch out.Kind() {
	case reflect.String:
		out.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, out.Type().Bits())
		if err != nil {
			return reflect.Value{}, false, nil
		}
		out.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, out.Type().Bits())
		if err != nil {
			return reflect.Value{}, false, nil
		}
		out.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, out.Type().Bits())
		if err != nil {
			return reflect.Value{}, false, nil
		}
		out.SetFloat(f)
	default:
		return reflect.Value{}, false, nil
	}
	return out, true, nil
}

// sizeRange resolves length bounds against the configured defaults.
func sizeRange(r rules, defLo, defHi int) (int, int) {
	lo, hi := defLo, defHi
	if r.hasLo {
		lo = int(r.lo)
		if r.exLo {
			lo++
		}
	}
	if r.hasHi {
		hi = int(r.hi)
		if r.exHi {
			hi--
		}
	}
	switch {
	case r.hasLo && !r.hasHi && hi < lo:
		hi = lo + (defHi - defLo)
	case r.hasHi && !r.hasLo && lo > hi:
		lo = 0
	}
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// intRange resolves numeric bounds clamped to t's representable range.
// ok is false when the range is empty or too wide to sample with Int63n.
func intRange(r rules, t reflect.Type) (lo, hi int64, ok bool) {
	kmin, kmax := kindLimits(t)
	lo, hi = kmin, kmax
	if r.hasLo {
		lo = int64(math.Ceil(r.lo))
		if r.exLo && float64(lo) == r.lo {
			lo++
		}
	}
	if r.hasHi {
		hi = int64(math.Floor(r.hi))
		if r.exHi && float64(hi) == r.hi {
			hi--
		}
	}
	if r.hasLo && !r.hasHi {
		hi = lo + openSpan
	}
	if r.hasHi && !r.hasLo {
		lo = hi - openSpan
	}
	lo, hi = max(lo, kmin), min(hi, kmax)
	if hi < lo || hi-lo < 0 || hi-lo == math.MaxInt64 {
		return 0, 0, false
	}
	return lo, hi, true
}

// kindLimits returns the signed range usable for t's kind. Unsigned kinds
// are capped at MaxInt64 so a single Int63n draw can cover them.
func kindLimits(t reflect.Type) (int64, int64) {
	bits := uint(t.Bits())
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if bits >= 63 {
			return 0, math.MaxInt64
		}
		return 0, int64(1)<<bits - 1
	default:
		return -(int64(1) << (bits - 1)), int64(1)<<(bits-1) - 1
	}
}

func floatRange(r rules) (float64, float64) {
	lo, hi := -float64(openSpan), float64(openSpan)
	switch {
	case r.hasLo && r.hasHi:
		lo, hi = r.lo, r.hi
	case r.hasLo:
		lo, hi = r.lo, r.lo+openSpan
	case r.hasHi:
		lo, hi = r.hi-openSpan, r.hi
	}
	if r.exLo {
		lo = math.Nextafter(lo, math.Inf(1))
	}
	if r.exHi {
		hi = math.Nextafter(hi, math.Inf(-1))
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
