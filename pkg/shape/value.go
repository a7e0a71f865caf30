package shape

import "reflect"

// Interface returns v as an interface value. Values read through unexported
// struct fields cannot be converted directly; basic kinds are copied out by
// kind and anything else is returned as the zero value of its type name.
func Interface(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	if v.CanInterface() {
		return v.Interface()
	}
	switch {
	case v.CanInt():
		return v.Int()
	case v.CanUint():
		return v.Uint()
	case v.CanFloat():
		return v.Float()
	case v.CanComplex():
		return v.Complex()
	}
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.String:
		return v.String()
	}
	return v.Type().String()
}
