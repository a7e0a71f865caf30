package shape

import "reflect"

var boolType = reflect.TypeFor[bool]()

// isSeq reports whether t has the form of an iter.Seq or iter.Seq2.
func isSeq(t reflect.Type) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	y := t.In(0)
	if y.Kind() != reflect.Func || y.NumOut() != 1 || y.Out(0) != boolType {
		return false
	}
	return y.NumIn() == 1 || y.NumIn() == 2
}

// collectSeq drains at most limit elements from the iterator v. Elements of
// an iter.Seq2 become pairs. cut reports whether the iterator had more.
func collectSeq(v reflect.Value, limit int) (elems []reflect.Value, cut bool) {
	if limit <= 0 {
		limit = DefaultSeqLimit
	}
	yieldType := v.Type().In(0)
	stop := []reflect.Value{reflect.ValueOf(false)}
	more := []reflect.Value{reflect.ValueOf(true)}

	yield := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
		if len(elems) >= limit {
			cut = true
			return stop
		}
		if len(args) == 2 {
			elems = append(elems, reflect.ValueOf(MakePair(args[0].Interface(), args[1].Interface())))
		} else {
			elems = append(elems, args[0])
		}
		return more
	})
	v.Call([]reflect.Value{yield})
	return elems, cut
}
