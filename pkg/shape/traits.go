package shape

// Graphed is implemented by values that carry their own adjacency
// classification. Graph views built by the graphview package implement it.
type Graphed interface {
	AdjacencyShape() Tag
}

// Prioritized is implemented by collections that know their pop order.
// PopOrder must return the elements highest priority first without removing
// them.
type Prioritized interface {
	PopOrder() []any
}

// Paired is implemented by two-component values.
type Paired interface {
	Pair() (any, any)
}

// Keyed is implemented by associative containers. The gods maps and trees
// satisfy it as-is.
type Keyed interface {
	Keys() []any
	Get(key any) (any, bool)
}

// Valued is implemented by ordered containers. The gods lists, stacks and
// sets satisfy it as-is.
type Valued interface {
	Values() []any
}

// Pair is a generic two-component value, the counterpart of a C++ std::pair.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns Pair{First: a, Second: b}.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Pair implements [Paired].
func (p Pair[A, B]) Pair() (any, any) { return p.First, p.Second }
