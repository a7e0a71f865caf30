// Package input reads the graph text format consumed by the dbgview driver
// and builds the adjacency shapes it inspects.
//
// # Format
//
// The format is whitespace separated integers:
//
//	n m
//	c1 c2 ... cn
//	u1 v1
//	...
//	um vm
//
// n is the vertex count, m the edge count, ci the cost of vertex i and each
// (u, v) an undirected edge between 1-indexed vertices. Lines starting with
// # are comments.
//
// # Shapes
//
// A parsed [Graph] converts to the shapes the driver prints: dense
// adjacency lists, id-keyed maps, weighted variants where the weight of an
// edge is the cost of its target, and a max-priority queue of the costs.
// Vertex ids in every built shape are 0-indexed.
package input
