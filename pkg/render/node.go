package render

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/matzehuels/dbgview/pkg/graphview"
	"github.com/matzehuels/dbgview/pkg/shape"
)

// Marker texts.
const (
	MarkerEmptySequence = "<empty sequence>"
	MarkerEmptyMapping  = "<empty mapping>"
	MarkerEmptyPriority = "<empty priority collection>"
	MarkerEmptyGraph    = "<empty graph>"
	MarkerMaxDepth      = "<max depth>"
)

// Node is the structured form of a rendered value.
//
// Exactly one of Value, Elems, Entries, Graph or Marker describes the value.
// A node with a Marker renders as the marker alone.
type Node struct {
	Shape  shape.Tag `json:"shape"`
	Type   string    `json:"type,omitempty"`
	Value  string    `json:"value,omitempty"`
	Marker string    `json:"marker,omitempty"`

	Elems   []*Node `json:"elems,omitempty"`
	Entries []Entry `json:"entries,omitempty"`
	// Fields marks a mapping built from struct fields; its keys render bare.
	Fields bool `json:"fields,omitempty"`
	// More counts elements left out by Options.MaxElems; -1 means an
	// iterator was cut off after an unknown number.
	More int `json:"more,omitempty"`

	Graph *Graph `json:"graph,omitempty"`
}

// Entry is one key/value pair of a mapping node.
type Entry struct {
	Key   *Node `json:"key"`
	Value *Node `json:"value"`
}

// Graph is the rendered form of a graph view.
type Graph struct {
	Label    string   `json:"label"`
	Dense    bool     `json:"dense"`
	Edges    int      `json:"edges"`
	Vertices []Vertex `json:"vertices"`
}

// Vertex is one rendered vertex with its neighbors.
type Vertex struct {
	ID        string     `json:"id"`
	Neighbors []Neighbor `json:"neighbors"`
}

// Neighbor is one rendered adjacency entry.
type Neighbor struct {
	ID     string `json:"id"`
	Weight string `json:"weight,omitempty"`
}

// Build renders v into a node tree. It never fails and never modifies v.
func Build(v any, opts Options) *Node {
	return BuildValue(reflect.ValueOf(v), opts)
}

// BuildValue is like [Build] for a reflect.Value.
func BuildValue(v reflect.Value, opts Options) *Node {
	b := builder{opts: opts.normalized()}
	return b.build(v, 0)
}

type builder struct {
	opts Options
}

func (b *builder) build(v reflect.Value, depth int) (n *Node) {
	defer func() {
		if r := recover(); r != nil {
			n = &Node{Shape: shape.TagScalar, Type: typeName(v), Marker: fmt.Sprintf("<panic: %v>", r)}
		}
	}()

	s := b.opts.Classifier.Classify(v)
	n = &Node{Shape: s.Tag, Type: typeName(s.Value)}
	if s.Tag == shape.TagScalar {
		n.Value = b.scalar(s)
		return n
	}
	if depth >= b.opts.MaxDepth {
		n.Marker = MarkerMaxDepth
		return n
	}

	switch s.Tag {
	case shape.TagSequence, shape.TagPair, shape.TagPriority:
		elems, more := b.limit(len(s.Elems))
		for _, el := range s.Elems[:elems] {
			n.Elems = append(n.Elems, b.build(el, depth+1))
		}
		n.More = more
		if s.More < 0 {
			n.More = -1
		}
		if len(s.Elems) == 0 && n.More == 0 {
			n.Marker = emptyMarker(s.Tag)
		}
	case shape.TagMapping:
		n.Fields = s.Fields
		entries, more := b.limit(len(s.Entries))
		for _, e := range s.Entries[:entries] {
			var key *Node
			if s.Fields {
				key = &Node{Shape: shape.TagScalar, Type: "field", Value: e.Key.String()}
			} else {
				key = b.build(e.Key, depth+1)
			}
			n.Entries = append(n.Entries, Entry{Key: key, Value: b.build(e.Value, depth+1)})
		}
		n.More = more
		if len(s.Entries) == 0 {
			n.Marker = MarkerEmptyMapping
		}
	default:
		b.graph(n, s, depth)
	}
	return n
}

func (b *builder) limit(total int) (shown, more int) {
	if b.opts.MaxElems > 0 && total > b.opts.MaxElems {
		return b.opts.MaxElems, total - b.opts.MaxElems
	}
	return total, 0
}

func emptyMarker(tag shape.Tag) string {
	if tag == shape.TagPriority {
		return MarkerEmptyPriority
	}
	return MarkerEmptySequence
}

func (b *builder) graph(n *Node, s shape.Shape, depth int) {
	view, ok := s.Value.Interface().(*graphview.View)
	if !ok {
		n.Marker = fmt.Sprintf("<malformed graph: %s provides no graph view>", n.Type)
		return
	}
	if view.Err != nil {
		reason := strings.TrimPrefix(view.Err.Error(), graphview.ErrMalformedGraph.Error()+": ")
		n.Marker = "<malformed graph: " + reason + ">"
		return
	}
	if len(view.Vertices) == 0 {
		n.Marker = MarkerEmptyGraph
		return
	}

	g := &Graph{Label: view.DisplayLabel(), Dense: view.Dense, Edges: view.EdgeCount()}
	shown, more := b.limit(len(view.Vertices))
	for _, vx := range view.Vertices[:shown] {
		out := Vertex{ID: b.inline(vx.ID, depth)}
		for _, nb := range vx.Neighbors {
			rn := Neighbor{ID: b.inline(nb.ID, depth)}
			if nb.Weighted {
				rn.Weight = b.inline(nb.Weight, depth)
			}
			out.Neighbors = append(out.Neighbors, rn)
		}
		g.Vertices = append(g.Vertices, out)
	}
	n.Graph = g
	n.More = more
}

// inline renders a vertex id or weight on a single line.
func (b *builder) inline(v any, depth int) string {
	return b.build(reflect.ValueOf(v), depth+1).Text(0)
}

func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	return v.Type().String()
}
