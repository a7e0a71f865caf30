// Package graphview normalizes adjacency data into a graph model the
// renderer can lay out.
//
// Three encodings are accepted:
//
//   - dense list-indexed adjacency: a slice or array whose i-th element is
//     the neighbor sequence of vertex i, with vertex ids 0..n-1
//   - sparse id-keyed adjacency: a Go map (or a [shape.Keyed] container)
//     from vertex id to neighbor sequence
//   - either of the above with each neighbor given as an (id, weight) pair
//
// A [View] is itself a value that can be handed to the diagnostic entry
// points; it implements [shape.Graphed] and carries its display label.
//
// Malformed input never panics and never fails the call that builds the
// view. The problem is stored on the view ([View.Err]) and reported inline
// when the view is rendered.
//
// Views can also be exported as Graphviz DOT ([ToDOT]) and rendered to SVG,
// PDF or PNG for inspection outside the terminal.
package graphview
