// Package render turns classified values into a deterministic structural
// representation.
//
// # Overview
//
// Rendering happens in two steps. [Build] walks a value with the shape
// classifier and produces a tree of [Node]s: the structured-data form of the
// value, suitable for JSON output and for recording. [Node.Text] then lays
// the tree out as text:
//
//	[1, 2, 3]                      sequence
//	{"a": 1, "b": 2}               mapping, keys ascending
//	(1, "one")                     pair
//	pq[9, 5, 3]                    priority collection, pop order
//	graph(3 vertices, 4 edges) {   graph view, always multi-line
//	  0: 1, 2
//	  1: 2
//	  2: 0(7)
//	}
//
// A composite whose one-line form does not fit [Options.Width] is laid out
// one element per line with two-space indentation and trailing commas.
//
// # Markers
//
// Conditions that stop a value from rendering normally are shown in place of
// that value only: <empty sequence>, <empty mapping>,
// <empty priority collection>, <empty graph>, <max depth>, <+N more>,
// <malformed graph: ...> and <panic: ...>. Rendering itself never fails.
//
// # Frames
//
// A [Frame] is the output of one diagnostic call: the call site plus one
// [Block] per argument. [Frame.WriteText] writes it as a header line followed
// by "label = body" blocks; a Frame also marshals to JSON.
package render
