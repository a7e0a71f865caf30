package shape

import (
	"container/heap"
	"reflect"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// DefaultSeqLimit bounds how many elements are pulled from an iter.Seq
	// before the rest is reported as unknown.
	DefaultSeqLimit = 10000

	probeCacheSize = 512
	maxDeref       = 8
)

// Shape is the classification of one value together with the components a
// renderer recurses into.
type Shape struct {
	Tag Tag

	// Value is the classified value after interface and pointer unwrapping.
	Value reflect.Value

	// Elems holds the elements of a sequence, the two components of a pair
	// or the elements of a priority collection in pop order.
	Elems []reflect.Value

	// Entries holds the entries of a mapping, sorted by key, or the fields
	// of a struct in declaration order when Fields is set.
	Entries []Entry
	Fields  bool

	// Opaque marks a scalar with no textual form of its own.
	Opaque bool

	// More is the number of elements left out by a bound; -1 means an
	// unknown number (an iterator was cut off).
	More int
}

// Entry is one key/value pair of a mapping.
type Entry struct {
	Key   reflect.Value
	Value reflect.Value
}

// Adapter classifies values of one registered type.
type Adapter func(v reflect.Value) Shape

type probe uint8

const (
	probeDeref probe = iota
	probeAdapter
	probeGraphed
	probePrioritized
	probeHeap
	probePaired
	probeKeyed
	probeMap
	probeValued
	probeList
	probeSeq
	probeError
	probeStringer
	probeScalar
	probeRecord
	probeOpaque
)

// needsInterface reports whether applying p calls methods on the value,
// which is impossible for values read through unexported struct fields.
func (p probe) needsInterface() bool {
	switch p {
	case probeAdapter, probeGraphed, probePrioritized, probeHeap, probePaired,
		probeKeyed, probeValued, probeSeq, probeError, probeStringer:
		return true
	}
	return false
}

var (
	graphedType     = reflect.TypeFor[Graphed]()
	prioritizedType = reflect.TypeFor[Prioritized]()
	heapType        = reflect.TypeFor[heap.Interface]()
	pairedType      = reflect.TypeFor[Paired]()
	keyedType       = reflect.TypeFor[Keyed]()
	valuedType      = reflect.TypeFor[Valued]()
	errorType       = reflect.TypeFor[error]()
	stringerType    = reflect.TypeFor[interface{ String() string }]()
)

// Classifier dispatches values to shapes. The zero value is not usable; use
// [NewClassifier]. A Classifier is safe for concurrent use.
type Classifier struct {
	// SeqLimit bounds iteration over iter.Seq values.
	SeqLimit int

	mu       sync.RWMutex
	adapters map[reflect.Type]Adapter
	probes   *lru.Cache[reflect.Type, probe]
}

// NewClassifier returns a classifier with the built-in adapters for the gods
// containers that need one.
func NewClassifier() *Classifier {
	probes, err := lru.New[reflect.Type, probe](probeCacheSize)
	if err != nil {
		panic(err)
	}
	c := &Classifier{
		SeqLimit: DefaultSeqLimit,
		adapters: make(map[reflect.Type]Adapter),
		probes:   probes,
	}
	registerGods(c)
	return c
}

var defaultClassifier = NewClassifier()

// Default returns the process-wide classifier used by [Classify].
func Default() *Classifier { return defaultClassifier }

// Classify classifies v with the default classifier.
func Classify(v any) Shape {
	return defaultClassifier.Classify(reflect.ValueOf(v))
}

// Register installs an adapter for values whose dynamic type is exactly t.
// Registered adapters take precedence over every trait.
func (c *Classifier) Register(t reflect.Type, a Adapter) {
	c.mu.Lock()
	c.adapters[t] = a
	c.mu.Unlock()
	c.probes.Purge()
}

func (c *Classifier) adapter(t reflect.Type) (Adapter, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.adapters[t]
	return a, ok
}

// Classify returns the shape of v. It never fails: values with no known
// capability become opaque scalars.
func (c *Classifier) Classify(v reflect.Value) Shape {
	for range maxDeref {
		if !v.IsValid() {
			return Shape{Tag: TagScalar, Value: v}
		}
		switch v.Kind() {
		case reflect.Interface:
			if v.IsNil() {
				return Shape{Tag: TagScalar, Value: v}
			}
			v = v.Elem()
			continue
		case reflect.Pointer, reflect.Func:
			if v.IsNil() {
				return Shape{Tag: TagScalar, Value: v}
			}
		}

		p := c.probeFor(v.Type())
		if p.needsInterface() && !v.CanInterface() {
			p = kindProbe(v.Type())
		}
		if p == probeDeref {
			v = v.Elem()
			continue
		}
		return c.apply(p, v)
	}
	return Shape{Tag: TagScalar, Value: v, Opaque: true}
}

func (c *Classifier) probeFor(t reflect.Type) probe {
	if p, ok := c.probes.Get(t); ok {
		return p
	}
	p := c.computeProbe(t)
	c.probes.Add(t, p)
	return p
}

func (c *Classifier) computeProbe(t reflect.Type) probe {
	if _, ok := c.adapter(t); ok {
		return probeAdapter
	}
	switch {
	case t.Implements(graphedType):
		return probeGraphed
	case t.Implements(prioritizedType):
		return probePrioritized
	case isHeap(t):
		return probeHeap
	case t.Implements(pairedType):
		return probePaired
	case t.Implements(keyedType):
		return probeKeyed
	case t.Kind() == reflect.Map:
		return probeMap
	case t.Implements(valuedType):
		return probeValued
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		return probeList
	case isSeq(t):
		return probeSeq
	case t.Implements(errorType):
		return probeError
	case t.Implements(stringerType):
		return probeStringer
	}
	return kindProbe(t)
}

// kindProbe classifies by kind alone, without calling any method.
func kindProbe(t reflect.Type) probe {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return probeScalar
	case reflect.Map:
		return probeMap
	case reflect.Slice, reflect.Array:
		return probeList
	case reflect.Struct:
		return probeRecord
	case reflect.Pointer:
		return probeDeref
	}
	return probeOpaque
}

func (c *Classifier) apply(p probe, v reflect.Value) Shape {
	switch p {
	case probeAdapter:
		a, _ := c.adapter(v.Type())
		return a(v)
	case probeGraphed:
		return Shape{Tag: v.Interface().(Graphed).AdjacencyShape(), Value: v}
	case probePrioritized:
		return Shape{Tag: TagPriority, Value: v, Elems: valuesOf(v.Interface().(Prioritized).PopOrder())}
	case probeHeap:
		return Shape{Tag: TagPriority, Value: v, Elems: heapOrder(v)}
	case probePaired:
		a, b := v.Interface().(Paired).Pair()
		return Shape{Tag: TagPair, Value: v, Elems: []reflect.Value{reflect.ValueOf(a), reflect.ValueOf(b)}}
	case probeKeyed:
		return Shape{Tag: TagMapping, Value: v, Entries: keyedEntries(v.Interface().(Keyed))}
	case probeMap:
		return Shape{Tag: TagMapping, Value: v, Entries: mapEntries(v)}
	case probeValued:
		return Shape{Tag: TagSequence, Value: v, Elems: valuesOf(v.Interface().(Valued).Values())}
	case probeList:
		elems := make([]reflect.Value, v.Len())
		for i := range elems {
			elems[i] = v.Index(i)
		}
		return Shape{Tag: TagSequence, Value: v, Elems: elems}
	case probeSeq:
		elems, cut := collectSeq(v, c.SeqLimit)
		s := Shape{Tag: TagSequence, Value: v, Elems: elems}
		if cut {
			s.More = -1
		}
		return s
	case probeRecord:
		return Shape{Tag: TagMapping, Value: v, Entries: fieldEntries(v), Fields: true}
	case probeOpaque:
		return Shape{Tag: TagScalar, Value: v, Opaque: true}
	}
	return Shape{Tag: TagScalar, Value: v}
}

func valuesOf(xs []any) []reflect.Value {
	out := make([]reflect.Value, len(xs))
	for i, x := range xs {
		out[i] = reflect.ValueOf(x)
	}
	return out
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return Compare(entries[i].Key, entries[j].Key) < 0
	})
}

func mapEntries(v reflect.Value) []Entry {
	entries := make([]Entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, Entry{Key: iter.Key(), Value: iter.Value()})
	}
	sortEntries(entries)
	return entries
}

func keyedEntries(k Keyed) []Entry {
	keys := k.Keys()
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		val, _ := k.Get(key)
		entries = append(entries, Entry{Key: reflect.ValueOf(key), Value: reflect.ValueOf(val)})
	}
	sortEntries(entries)
	return entries
}

func fieldEntries(v reflect.Value) []Entry {
	t := v.Type()
	entries := make([]Entry, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if f.Name == "_" {
			continue
		}
		entries = append(entries, Entry{Key: reflect.ValueOf(f.Name), Value: v.Field(i)})
	}
	return entries
}
