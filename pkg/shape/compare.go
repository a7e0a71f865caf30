package shape

import (
	"cmp"
	"fmt"
	"reflect"
)

// Compare orders two values for deterministic rendering. It returns a
// negative number when a sorts before b, zero when they are equivalent and a
// positive number otherwise.
//
// Numbers compare by value (mixing integer and floating kinds), strings
// lexically and false before true. Structs and arrays compare field by field,
// pointers by their pointees. Values of unrelated kinds fall back to a fixed
// kind rank, then to their fmt text. Composites nested deeper than
// maxCompareDepth compare equal, so cyclic values terminate.
func Compare(a, b reflect.Value) int {
	return compare(a, b, 0)
}

// maxCompareDepth bounds the composite levels compare descends.
const maxCompareDepth = 16

func compare(a, b reflect.Value, depth int) int {
	a, b = unwrap(a), unwrap(b)
	ra, rb := kindRank(a), kindRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case rankInvalid:
		return 0
	case rankBool:
		return cmp.Compare(boolInt(a.Bool()), boolInt(b.Bool()))
	case rankNumber:
		return compareNumbers(a, b)
	case rankString:
		return cmp.Compare(a.String(), b.String())
	case rankArray:
		if a.Kind() == b.Kind() && (a.Kind() == reflect.Array || a.Type() == b.Type()) {
			if depth >= maxCompareDepth {
				return cmp.Compare(a.Type().String(), b.Type().String())
			}
			return compareComposite(a, b, depth)
		}
	}
	return cmp.Compare(text(a), text(b))
}

const (
	rankInvalid = iota
	rankBool
	rankNumber
	rankString
	rankArray
	rankOther
)

func kindRank(v reflect.Value) int {
	if !v.IsValid() {
		return rankInvalid
	}
	switch v.Kind() {
	case reflect.Bool:
		return rankBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rankNumber
	case reflect.String:
		return rankString
	case reflect.Array, reflect.Struct:
		return rankArray
	}
	return rankOther
}

func unwrap(v reflect.Value) reflect.Value {
	for range maxDeref {
		if !v.IsValid() {
			return v
		}
		switch v.Kind() {
		case reflect.Interface, reflect.Pointer:
			if v.IsNil() {
				return reflect.Value{}
			}
			v = v.Elem()
		default:
			return v
		}
	}
	return v
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func compareNumbers(a, b reflect.Value) int {
	switch {
	case a.CanInt() && b.CanInt():
		return cmp.Compare(a.Int(), b.Int())
	case a.CanUint() && b.CanUint():
		return cmp.Compare(a.Uint(), b.Uint())
	}
	return cmp.Compare(toFloat(a), toFloat(b))
}

func toFloat(v reflect.Value) float64 {
	switch {
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	}
	return v.Float()
}

func compareComposite(a, b reflect.Value, depth int) int {
	na, nb := width(a), width(b)
	for i := range min(na, nb) {
		if c := compare(component(a, i), component(b, i), depth+1); c != 0 {
			return c
		}
	}
	return cmp.Compare(na, nb)
}

func width(v reflect.Value) int {
	if v.Kind() == reflect.Struct {
		return v.NumField()
	}
	return v.Len()
}

func component(v reflect.Value, i int) reflect.Value {
	if v.Kind() == reflect.Struct {
		return v.Field(i)
	}
	return v.Index(i)
}

func text(v reflect.Value) string {
	if !v.CanInterface() {
		return v.Type().String()
	}
	return fmt.Sprint(v.Interface())
}
