package propbag

import (
	"math"
	"reflect"
)

type notSet struct{}

func (notSet) String() string { return "<not set>" }

// NotSet is returned for properties that were never written. It is distinct
// from a stored nil.
var NotSet any = notSet{}

// IsNotSet reports whether v is the NotSet sentinel.
func IsNotSet(v any) bool {
	_, ok := v.(notSet)
	return ok
}

// valuesEqual compares by value. Comparable values compare like ==, so
// pointers compare by identity; anything else (slices, maps, structs holding
// them) compares like reflect.DeepEqual. Values of different dynamic types are
// never equal. Unlike both, a float NaN equals another NaN, so a stored NaN is
// unchanged when written again.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	return sameValue(va, vb, !va.Comparable())
}

// sameValue walks a and b, which have the same type. In deep mode, reached
// through a slice or map, pointers are followed as reflect.DeepEqual does.
func sameValue(a, b reflect.Value, deep bool) bool {
	switch a.Kind() {
	case reflect.Float32, reflect.Float64:
		return sameFloat(a.Float(), b.Float())
	case reflect.Complex64, reflect.Complex128:
		x, y := a.Complex(), b.Complex()
		return sameFloat(real(x), real(y)) && sameFloat(imag(x), imag(y))
	case reflect.Struct:
		for i := range a.NumField() {
			if !sameValue(a.Field(i), b.Field(i), deep) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := range a.Len() {
			if !sameValue(a.Index(i), b.Index(i), deep) {
				return false
			}
		}
		return true
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		ea, eb := a.Elem(), b.Elem()
		return ea.Type() == eb.Type() && sameValue(ea, eb, deep)
	case reflect.Slice:
		if a.IsNil() != b.IsNil() || a.Len() != b.Len() {
			return false
		}
		for i := range a.Len() {
			if !sameValue(a.Index(i), b.Index(i), true) {
				return false
			}
		}
		return true
	case reflect.Map:
		if a.IsNil() != b.IsNil() || a.Len() != b.Len() {
			return false
		}
		iter := a.MapRange()
		for iter.Next() {
			bv := b.MapIndex(iter.Key())
			if !bv.IsValid() || !sameValue(iter.Value(), bv, true) {
				return false
			}
		}
		return true
	case reflect.Func:
		return a.IsNil() && b.IsNil()
	case reflect.Pointer:
		if a.Pointer() == b.Pointer() {
			return true
		}
		if !deep || !a.CanInterface() {
			return false
		}
		return reflect.DeepEqual(a.Interface(), b.Interface())
	}
	return a.Equal(b)
}

func sameFloat(x, y float64) bool {
	return x == y || (math.IsNaN(x) && math.IsNaN(y))
}

// isNil reports a nil interface or a typed nil pointer/map/slice/func/chan.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
