package shape

import (
	"container/heap"
	"reflect"
	"sort"
)

// isHeap reports whether values of t are container/heap collections whose
// elements can be read by index. Push and Pop usually have pointer receivers,
// so a non-pointer slice type counts when its pointer type implements
// heap.Interface.
func isHeap(t reflect.Type) bool {
	base := t
	if t.Kind() == reflect.Pointer {
		base = t.Elem()
	}
	if base.Kind() != reflect.Slice && base.Kind() != reflect.Array {
		return false
	}
	if t.Implements(heapType) {
		return true
	}
	return t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(heapType)
}

// heapOrder returns the elements of a heap in pop order. The heap is only
// read through Len and Less; the order is computed on an index permutation.
func heapOrder(v reflect.Value) []reflect.Value {
	h, ok := v.Interface().(heap.Interface)
	if !ok {
		cp := reflect.New(v.Type())
		cp.Elem().Set(v)
		h = cp.Interface().(heap.Interface)
	}
	base := v
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}

	n := min(h.Len(), base.Len())
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return h.Less(idx[i], idx[j]) })

	out := make([]reflect.Value, n)
	for i, k := range idx {
		out[i] = base.Index(k)
	}
	return out
}
