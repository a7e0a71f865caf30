// Package pkg holds the dbgview libraries.
//
// # Overview
//
// dbgview prints structure-aware views of values: sequences, mappings,
// pairs, priority collections and adjacency graphs, each labeled with the
// argument text at the call site. The pkg directory is organized as:
//
//  1. [shape] - classification of any value into one shape tag
//  2. [graphview] - normalized graph views over adjacency data
//  3. [render] - node trees, text layout and call frames
//  4. [label] - call-site argument texts and block labels
//  5. [dbg] - the Dbg and Graph entry points
//  6. [session], [input] - recording, loop folding and the input format
//
// # Data flow
//
//	Dbg(args...)
//	     ↓
//	[label] pairs each argument with a name
//	     ↓
//	[shape] classifies each value ([graphview] for Graph(...) values)
//	     ↓
//	[render] builds nodes and lays out the frame
//	     ↓
//	sink (stderr by default) and optional recorder
//
// # Quick Start
//
//	adj := [][]int{{1, 2}, {2}, {0}}
//	dbg.Dbg(dbg.Graph(adj, "adj2 sample"), len(adj))
package pkg
