package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dbgview/pkg/shape"
)

const indent = "  "

// Text lays the node out as text. A composite is written on one line when
// that line fits in width columns (width 0 means unlimited) and otherwise one
// element per line. Graphs always span lines.
func (n *Node) Text(width int) string {
	return n.layout(width, 0)
}

// layout is Text for a node that starts lead columns into its first line.
func (n *Node) layout(width, lead int) string {
	var sb strings.Builder
	w := writer{b: &sb, width: width}
	w.node(n, lead)
	return sb.String()
}

type writer struct {
	b     *strings.Builder
	width int
	depth int
}

func (w *writer) write(s string) { w.b.WriteString(s) }
func (w *writer) nl()            { w.b.WriteByte('\n') }
func (w *writer) pad() {
	for range w.depth {
		w.b.WriteString(indent)
	}
}

// lines writes s, indenting every line after the first to the current depth.
func (w *writer) lines(s string) {
	for i, ln := range strings.Split(s, "\n") {
		if i > 0 {
			w.nl()
			w.pad()
		}
		w.write(ln)
	}
}

func (w *writer) fits(lead int, s string) bool {
	return w.width <= 0 || w.depth*len(indent)+lead+lipgloss.Width(s) <= w.width
}

func (w *writer) node(n *Node, lead int) {
	switch {
	case n.Marker != "":
		w.write(n.Marker)
		return
	case n.Shape == shape.TagScalar:
		w.lines(n.Value)
		return
	case n.Graph != nil:
		w.graph(n)
		return
	}
	if s, ok := oneLine(n); ok && w.fits(lead, s) {
		w.write(s)
		return
	}

	open, closing := brackets(n.Shape)
	w.write(open)
	w.nl()
	w.depth++
	for _, el := range n.Elems {
		w.pad()
		w.node(el, 0)
		w.write(",")
		w.nl()
	}
	for _, e := range n.Entries {
		w.pad()
		if k, ok := oneLine(e.Key); ok {
			w.write(k + ": ")
			w.node(e.Value, lipgloss.Width(k)+2)
		} else {
			w.node(e.Key, 0)
			w.write(": ")
			w.node(e.Value, 2)
		}
		w.write(",")
		w.nl()
	}
	if n.More != 0 {
		w.pad()
		w.write(moreMarker(n.More))
		w.write(",")
		w.nl()
	}
	w.depth--
	w.pad()
	w.write(closing)
}

func (w *writer) graph(n *Node) {
	g := n.Graph
	fmt.Fprintf(w.b, "graph(%s, %s) {", plural(len(g.Vertices)+n.More, "vertex", "vertices"), plural(g.Edges, "edge", "edges"))
	w.nl()
	w.depth++
	for _, v := range g.Vertices {
		w.pad()
		w.write(v.ID + ": ")
		if len(v.Neighbors) == 0 {
			w.write("<none>")
		}
		for i, nb := range v.Neighbors {
			if i > 0 {
				w.write(", ")
			}
			w.write(nb.ID)
			if nb.Weight != "" {
				w.write("(" + nb.Weight + ")")
			}
		}
		w.nl()
	}
	if n.More != 0 {
		w.pad()
		w.write(moreMarker(n.More))
		w.nl()
	}
	w.depth--
	w.pad()
	w.write("}")
}

// oneLine returns the single-line form of n, or false when n has to span
// lines.
func oneLine(n *Node) (string, bool) {
	switch {
	case n.Marker != "":
		return n.Marker, true
	case n.Graph != nil:
		return "", false
	case n.Shape == shape.TagScalar:
		return n.Value, !strings.Contains(n.Value, "\n")
	}

	parts := make([]string, 0, len(n.Elems)+len(n.Entries)+1)
	for _, el := range n.Elems {
		s, ok := oneLine(el)
		if !ok {
			return "", false
		}
		parts = append(parts, s)
	}
	for _, e := range n.Entries {
		k, ok := oneLine(e.Key)
		if !ok {
			return "", false
		}
		v, ok := oneLine(e.Value)
		if !ok {
			return "", false
		}
		parts = append(parts, k+": "+v)
	}
	if n.More != 0 {
		parts = append(parts, moreMarker(n.More))
	}
	open, closing := brackets(n.Shape)
	return open + strings.Join(parts, ", ") + closing, true
}

func brackets(tag shape.Tag) (string, string) {
	switch tag {
	case shape.TagMapping:
		return "{", "}"
	case shape.TagPair:
		return "(", ")"
	case shape.TagPriority:
		return "pq[", "]"
	}
	return "[", "]"
}

func moreMarker(more int) string {
	if more < 0 {
		return "<+more>"
	}
	return fmt.Sprintf("<+%d more>", more)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
