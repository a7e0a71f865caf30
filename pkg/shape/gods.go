package shape

import (
	"reflect"
	"sort"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/trees/binaryheap"
)

// registerGods installs the adapters for gods containers whose Values order
// is not their display order.
func registerGods(c *Classifier) {
	c.Register(reflect.TypeFor[*binaryheap.Heap](), binaryHeapShape)
	c.Register(reflect.TypeFor[*hashset.Set](), hashSetShape)
}

// binaryHeapShape orders a copy of the heap's backing values with the heap's
// own comparator. The heap is never popped.
func binaryHeapShape(v reflect.Value) Shape {
	h := v.Interface().(*binaryheap.Heap)
	values := h.Values()
	sort.SliceStable(values, func(i, j int) bool {
		return h.Comparator(values[i], values[j]) < 0
	})
	return Shape{Tag: TagPriority, Value: v, Elems: valuesOf(values)}
}

func hashSetShape(v reflect.Value) Shape {
	elems := valuesOf(v.Interface().(*hashset.Set).Values())
	sort.SliceStable(elems, func(i, j int) bool { return Compare(elems[i], elems[j]) < 0 })
	return Shape{Tag: TagSequence, Value: v, Elems: elems}
}
