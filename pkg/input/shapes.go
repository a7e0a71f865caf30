package input

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"

	"github.com/matzehuels/dbgview/pkg/shape"
)

// Adjacency returns the symmetric 0-indexed adjacency lists of g. Neighbors
// appear in edge order.
func (g *Graph) Adjacency() [][]int {
	adj := make([][]int, g.N())
	for i := range adj {
		adj[i] = []int{}
	}
	for _, e := range g.Edges {
		u, v := e[0]-1, e[1]-1
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
	return adj
}

// AdjacencyMap returns the adjacency lists keyed by vertex id.
func (g *Graph) AdjacencyMap() map[int][]int {
	m := make(map[int][]int, g.N())
	for u, nbs := range g.Adjacency() {
		m[u] = nbs
	}
	return m
}

// WeightedAdjacency returns adjacency lists of (neighbor, weight) pairs
// where the weight is the neighbor's cost.
func (g *Graph) WeightedAdjacency() [][]shape.Pair[int, int] {
	adj := g.Adjacency()
	out := make([][]shape.Pair[int, int], len(adj))
	for u, nbs := range adj {
		out[u] = make([]shape.Pair[int, int], len(nbs))
		for i, v := range nbs {
			out[u][i] = shape.MakePair(v, g.Costs[v])
		}
	}
	return out
}

// WeightedMap returns WeightedAdjacency keyed by vertex id.
func (g *Graph) WeightedMap() map[int][]shape.Pair[int, int] {
	m := make(map[int][]shape.Pair[int, int], g.N())
	for u, nbs := range g.WeightedAdjacency() {
		m[u] = nbs
	}
	return m
}

// CostQueue returns a max-heap of the vertex costs.
func (g *Graph) CostQueue() *binaryheap.Heap {
	h := binaryheap.NewWith(func(a, b any) int { return -utils.IntComparator(a, b) })
	for _, c := range g.Costs {
		h.Push(c)
	}
	return h
}

// sampleEdges is a fixed 20-vertex graph: a ring with chords.
var sampleEdges = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 8}, {8, 9}, {9, 10},
	{10, 11}, {11, 12}, {12, 13}, {13, 14}, {14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19}, {19, 0},
	{0, 10}, {3, 13}, {5, 15}, {7, 17},
}

// Sample returns the fixed 20-vertex sample graph as id-keyed adjacency.
func Sample() map[int][]int {
	m := make(map[int][]int, 20)
	for i := range 20 {
		m[i] = []int{}
	}
	for _, e := range sampleEdges {
		m[e[0]] = append(m[e[0]], e[1])
		m[e[1]] = append(m[e[1]], e[0])
	}
	return m
}
