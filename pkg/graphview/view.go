package graphview

import (
	"math"
	"reflect"

	"github.com/matzehuels/dbgview/pkg/shape"
)

// DefaultLabel is the display label of a view built without one.
const DefaultLabel = "graph"

// Neighbor is one entry of a vertex's adjacency list.
type Neighbor struct {
	ID       any  `json:"id"`
	Weight   any  `json:"weight,omitempty"`
	Weighted bool `json:"weighted,omitempty"`
}

// Vertex is a vertex with its neighbors in source order.
type Vertex struct {
	ID        any        `json:"id"`
	Neighbors []Neighbor `json:"neighbors"`
}

// Edge is a weighted neighbor entry. It can be used directly as the element
// type of weighted adjacency data.
type Edge struct {
	To     any
	Weight any
}

// Pair implements [shape.Paired].
func (e Edge) Pair() (any, any) { return e.To, e.Weight }

// View is a normalized graph with an optional display label.
//
// Vertices are ordered by id: numerically for dense input and by
// [shape.Compare] for sparse input. Neighbors keep their source order; the
// adapter renders exactly what it is given and never symmetrizes edges.
type View struct {
	Label    string
	Tag      shape.Tag
	Dense    bool
	Vertices []Vertex

	// Err is non-nil when the input was not well-formed adjacency data. It
	// matches [ErrMalformedGraph].
	Err error
}

// New builds a view over adj. The input is read once and never modified.
func New(adj any, label string) *View {
	return NewWith(shape.Default(), adj, label)
}

// NewWith builds a view using c to classify the input. A panic raised by
// the input's own methods is stored on Err instead of propagating.
func NewWith(c *shape.Classifier, adj any, label string) (v *View) {
	v = &View{Label: label}
	defer func() {
		if r := recover(); r != nil {
			v.Vertices = nil
			v.Tag = shape.TagAdjacencyMapping
			v.Err = malformed("panic: %v", r)
		}
	}()
	s := c.Classify(reflect.ValueOf(adj))

	switch {
	case s.Tag == shape.TagSequence:
		v.Dense = true
		v.Err = v.fromDense(c, s)
	case s.Tag == shape.TagMapping && !s.Fields:
		v.Err = v.fromSparse(c, s)
	default:
		v.Err = malformed("%s of type %T is not adjacency data", s.Tag, adj)
	}

	v.Tag = shape.TagAdjacencyMapping
	if v.Dense {
		v.Tag = shape.TagAdjacencyList
	}
	if v.Weighted() {
		v.Tag = shape.TagWeightedAdjacency
	}
	return v
}

// AdjacencyShape implements [shape.Graphed].
func (v *View) AdjacencyShape() shape.Tag { return v.Tag }

// DisplayLabel returns the label, or [DefaultLabel] when none was given.
func (v *View) DisplayLabel() string {
	if v.Label == "" {
		return DefaultLabel
	}
	return v.Label
}

// Weighted reports whether any neighbor carries a weight.
func (v *View) Weighted() bool {
	for _, vx := range v.Vertices {
		for _, nb := range vx.Neighbors {
			if nb.Weighted {
				return true
			}
		}
	}
	return false
}

// EdgeCount returns the number of adjacency entries over all vertices. An
// undirected edge stored in both directions counts twice.
func (v *View) EdgeCount() int {
	n := 0
	for _, vx := range v.Vertices {
		n += len(vx.Neighbors)
	}
	return n
}

func (v *View) fromDense(c *shape.Classifier, s shape.Shape) error {
	count := len(s.Elems)
	v.Vertices = make([]Vertex, 0, count)
	for i, el := range s.Elems {
		nbs, err := neighbors(c, el)
		if err != nil {
			return malformed("vertex %d: %v", i, err)
		}
		for _, nb := range nbs {
			id, ok := intID(nb.ID)
			if !ok {
				return malformed("vertex %d: neighbor %v is not an integer id", i, nb.ID)
			}
			if id < 0 || id >= int64(count) {
				return &NeighborRangeError{Vertex: i, Neighbor: id, Count: count}
			}
		}
		v.Vertices = append(v.Vertices, Vertex{ID: i, Neighbors: nbs})
	}
	return nil
}

func (v *View) fromSparse(c *shape.Classifier, s shape.Shape) error {
	v.Vertices = make([]Vertex, 0, len(s.Entries))
	for _, e := range s.Entries {
		id := shape.Interface(e.Key)
		nbs, err := neighbors(c, e.Value)
		if err != nil {
			return malformed("vertex %v: %v", id, err)
		}
		v.Vertices = append(v.Vertices, Vertex{ID: id, Neighbors: nbs})
	}
	return nil
}

func neighbors(c *shape.Classifier, list reflect.Value) ([]Neighbor, error) {
	s := c.Classify(list)
	if s.Tag != shape.TagSequence {
		return nil, errNotSequence(s.Tag)
	}
	out := make([]Neighbor, 0, len(s.Elems))
	for _, el := range s.Elems {
		out = append(out, neighbor(c, el))
	}
	return out, nil
}

type errNotSequence shape.Tag

func (e errNotSequence) Error() string {
	return "neighbors are a " + shape.Tag(e).String() + ", want a sequence"
}

// neighbor reads a bare id or an (id, weight) pair: a [shape.Paired] value,
// a two-element array or a struct with exactly two fields.
func neighbor(c *shape.Classifier, el reflect.Value) Neighbor {
	s := c.Classify(el)
	switch {
	case s.Tag == shape.TagPair:
		return Neighbor{ID: shape.Interface(s.Elems[0]), Weight: shape.Interface(s.Elems[1]), Weighted: true}
	case s.Tag == shape.TagSequence && s.Value.Kind() == reflect.Array && len(s.Elems) == 2:
		return Neighbor{ID: shape.Interface(s.Elems[0]), Weight: shape.Interface(s.Elems[1]), Weighted: true}
	case s.Tag == shape.TagMapping && s.Fields && len(s.Entries) == 2:
		return Neighbor{ID: shape.Interface(s.Entries[0].Value), Weight: shape.Interface(s.Entries[1].Value), Weighted: true}
	}
	return Neighbor{ID: shape.Interface(s.Value)}
}

func intID(id any) (int64, bool) {
	rv := reflect.ValueOf(id)
	switch {
	case !rv.IsValid():
		return 0, false
	case rv.CanInt():
		return rv.Int(), true
	case rv.CanUint():
		return int64(min(rv.Uint(), math.MaxInt64)), true
	}
	return 0, false
}
