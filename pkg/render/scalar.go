package render

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/matzehuels/dbgview/pkg/shape"
)

func (b *builder) scalar(s shape.Shape) string {
	v := s.Value
	if !v.IsValid() {
		return "nil"
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan:
		if v.IsNil() {
			return "nil"
		}
	}
	if s.Opaque {
		return "<" + v.Type().String() + ">"
	}
	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case error:
			return x.Error()
		case fmt.Stringer:
			return x.String()
		}
	}

	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return FormatFloat(v.Float(), 32, b.opts.Precision)
	case reflect.Float64:
		return FormatFloat(v.Float(), 64, b.opts.Precision)
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		im := FormatFloat(imag(c), 64, b.opts.Precision)
		if !strings.HasPrefix(im, "-") && !strings.HasPrefix(im, "+") {
			im = "+" + im
		}
		return "(" + FormatFloat(real(c), 64, b.opts.Precision) + im + "i)"
	case reflect.String:
		return strconv.Quote(v.String())
	}
	return "<" + v.Type().String() + ">"
}

// FormatFloat formats f with prec fractional digits, then trims trailing
// zeros while keeping at least one fractional digit. NaN and the infinities
// render as NaN, +Inf and -Inf.
func FormatFloat(f float64, bitSize, prec int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(f, 'f', prec, bitSize)
	if !strings.Contains(s, ".") {
		return s + ".0"
	}
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
