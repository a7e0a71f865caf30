package input

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/matzehuels/dbgview/pkg/errors"
)

// Graph is a parsed input graph.
type Graph struct {
	// Costs holds one cost per vertex, indexed from 0.
	Costs []int
	// Edges holds the undirected edges as read, 1-indexed.
	Edges [][2]int
}

// N returns the number of vertices.
func (g *Graph) N() int { return len(g.Costs) }

// M returns the number of edges.
func (g *Graph) M() int { return len(g.Edges) }

type document struct {
	Vertices int   `parser:"@Int"`
	Edges    int   `parser:"@Int"`
	Values   []int `parser:"@Int*"`
}

var graphLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseDocument = participle.MustBuild[document](
	participle.Lexer(graphLexer),
	participle.Elide("Comment", "Whitespace"),
)

// Parse reads a graph from r. It checks that the counts match the data and
// that every endpoint lies in 1..n.
func Parse(r io.Reader) (*Graph, error) {
	doc, err := parseDocument.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse graph")
	}
	return build(doc)
}

// ParseString is Parse for a string.
func ParseString(s string) (*Graph, error) {
	return Parse(strings.NewReader(s))
}

func build(doc *document) (*Graph, error) {
	n, m := doc.Vertices, doc.Edges
	if n < 0 || m < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "negative graph dimensions %d %d", n, m)
	}
	if want := n + 2*m; len(doc.Values) != want {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"expected %d costs and %d edges (%d integers), got %d integers", n, m, want, len(doc.Values))
	}

	g := &Graph{
		Costs: append([]int(nil), doc.Values[:n]...),
		Edges: make([][2]int, m),
	}
	rest := doc.Values[n:]
	for i := range m {
		u, v := rest[2*i], rest[2*i+1]
		if err := checkVertex(i, u, n); err != nil {
			return nil, err
		}
		if err := checkVertex(i, v, n); err != nil {
			return nil, err
		}
		g.Edges[i] = [2]int{u, v}
	}
	return g, nil
}

func checkVertex(edge, u, n int) error {
	if u < 1 || u > n {
		return errors.New(errors.ErrCodeInvalidInput, "edge %d: vertex %d out of range 1..%d", edge, u, n)
	}
	return nil
}

// String returns g in the input format.
func (g *Graph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %d\n", g.N(), g.M())
	for i, c := range g.Costs {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, c)
	}
	b.WriteByte('\n')
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "%d %d\n", e[0], e[1])
	}
	return b.String()
}
