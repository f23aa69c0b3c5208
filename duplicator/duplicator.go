// SPDX-License-Identifier: MIT
// Package: createfake/duplicator
//
// duplicator.go — reflection deep copy with a per-call visited table.

package duplicator

import "reflect"

// DeepCloner is implemented by types that copy themselves. DeepClone must
// return a value assignable to the implementing type.
type DeepCloner interface {
	DeepClone() any
}

var clonerType = reflect.TypeFor[DeepCloner]()

// Duplicator deep-copies values.
type Duplicator struct {
	cfg config
}

// New builds a Duplicator from opts.
func New(opts ...Option) *Duplicator {
	cfg := config{shallow: make(map[reflect.Type]bool)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Duplicator{cfg: cfg}
}

// refKey identifies a reference already copied during one call.
type refKey struct {
	typ reflect.Type
	ptr uintptr
	n   int
}

// Copy returns a deep copy of v. Copy(nil) is nil.
func (d *Duplicator) Copy(v any) any {
	if v == nil {
		return nil
	}
	return d.CopyValue(reflect.ValueOf(v)).Interface()
}

// CopyValue is Copy over reflect values. The result is never read-only.
func (d *Duplicator) CopyValue(v reflect.Value) reflect.Value {
	if !v.IsValid() {
		return v
	}
	return d.copy(v, make(map[refKey]reflect.Value))
}

func (d *Duplicator) copy(v reflect.Value, seen map[refKey]reflect.Value) reflect.Value {
	t := v.Type()
	if d.cfg.shallow[t] {
		return v
	}
	if c, ok := d.cloned(v); ok {
		return c
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return reflect.Zero(t)
		}
		key := refKey{typ: t, ptr: v.Pointer()}
		if c, ok := seen[key]; ok {
			return c
		}
		out := reflect.New(t.Elem())
		if out.Type() != t {
			out = out.Convert(t)
		}
		seen[key] = out
		out.Elem().Set(d.copy(v.Elem(), seen))
		return out

	case reflect.Interface:
		if v.IsNil() {
			return reflect.Zero(t)
		}
		out := reflect.New(t).Elem()
		out.Set(d.copy(v.Elem(), seen))
		return out

	case reflect.Map:
		if v.IsNil() {
			return reflect.Zero(t)
		}
		key := refKey{typ: t, ptr: v.Pointer()}
		if c, ok := seen[key]; ok {
			return c
		}
		out := reflect.MakeMapWithSize(t, v.Len())
		seen[key] = out
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(d.copy(iter.Key(), seen), d.copy(iter.Value(), seen))
		}
		return out

	case reflect.Slice:
		if v.IsNil() {
			return reflect.Zero(t)
		}
		key := refKey{typ: t, ptr: v.Pointer(), n: v.Len()}
		if c, ok := seen[key]; ok {
			return c
		}
		out := reflect.MakeSlice(t, v.Len(), v.Cap())
		seen[key] = out
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(d.copy(v.Index(i), seen))
		}
		return out

	case reflect.Array:
		out := reflect.New(t).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(d.copy(v.Index(i), seen))
		}
		return out

	case reflect.Struct:
		out := reflect.New(t).Elem()
		out.Set(v)
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			out.Field(i).Set(d.copy(v.Field(i), seen))
		}
		return out

	default:
		out := reflect.New(t).Elem()
		out.Set(v)
		return out
	}
}

// cloned applies the DeepCloner capability when v offers it.
func (d *Duplicator) cloned(v reflect.Value) (reflect.Value, bool) {
	if !v.CanInterface() || !v.Type().Implements(clonerType) {
		return reflect.Value{}, false
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return reflect.Value{}, false
	}
	c := reflect.ValueOf(v.Interface().(DeepCloner).DeepClone())
	if !c.IsValid() || !c.Type().AssignableTo(v.Type()) {
		return reflect.Value{}, false
	}
	out := reflect.New(v.Type()).Elem()
	out.Set(c)
	return out, true
}

// Copy is the generic form of Duplicator.Copy.
func Copy[T any](d *Duplicator, v T) T {
	in := reflect.ValueOf(&v).Elem()
	out := reflect.New(in.Type())
	out.Elem().Set(d.CopyValue(in))
	return *out.Interface().(*T)
}
