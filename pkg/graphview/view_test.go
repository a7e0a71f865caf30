package graphview

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dbgview/pkg/shape"
)

func ids(vs []Vertex) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}

func TestNewDense(t *testing.T) {
	v := New([][]int{{1, 2}, {2}, {0}}, "adj2 sample")
	require.NoError(t, v.Err)
	require.Equal(t, shape.TagAdjacencyList, v.AdjacencyShape())
	require.Equal(t, "adj2 sample", v.DisplayLabel())
	require.True(t, v.Dense)
	require.Equal(t, []any{0, 1, 2}, ids(v.Vertices))
	require.Equal(t, []Neighbor{{ID: 1}, {ID: 2}}, v.Vertices[0].Neighbors)
	require.Equal(t, 4, v.EdgeCount())
}

func TestNewDenseKeepsIsolatedVertices(t *testing.T) {
	v := New([][]int{{1}, {0}, {}}, "")
	require.NoError(t, v.Err)
	require.Len(t, v.Vertices, 3)
	require.Empty(t, v.Vertices[2].Neighbors)
	require.Equal(t, DefaultLabel, v.DisplayLabel())
}

func TestNewWeightedSparse(t *testing.T) {
	adj := map[int][]shape.Pair[int, int]{
		22: {shape.MakePair(20, 5)},
		20: {shape.MakePair(21, 3), shape.MakePair(22, 7)},
		21: {shape.MakePair(22, 2)},
	}
	v := New(adj, "")
	require.NoError(t, v.Err)
	require.Equal(t, shape.TagWeightedAdjacency, v.AdjacencyShape())
	require.False(t, v.Dense)
	require.Equal(t, []any{20, 21, 22}, ids(v.Vertices))
	require.Equal(t, []Neighbor{
		{ID: 21, Weight: 3, Weighted: true},
		{ID: 22, Weight: 7, Weighted: true},
	}, v.Vertices[0].Neighbors)
}

func TestNewWeightedEncodings(t *testing.T) {
	type arc struct {
		To, Cost int
	}
	tests := []struct {
		name string
		adj  any
	}{
		{name: "Edge", adj: [][]Edge{{{To: 1, Weight: 4}}, {}}},
		{name: "Array", adj: [][][2]int{{{1, 4}}, {}}},
		{name: "Struct", adj: [][]arc{{{To: 1, Cost: 4}}, {}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(tt.adj, "")
			require.NoError(t, v.Err)
			require.Equal(t, shape.TagWeightedAdjacency, v.Tag)
			require.Equal(t, Neighbor{ID: 1, Weight: 4, Weighted: true}, v.Vertices[0].Neighbors[0])
		})
	}
}

func TestNewMalformed(t *testing.T) {
	v := New([][]int{{5}}, "")
	require.Error(t, v.Err)
	require.True(t, errors.Is(v.Err, ErrMalformedGraph))

	var rangeErr *NeighborRangeError
	require.True(t, errors.As(v.Err, &rangeErr))
	require.EqualValues(t, 5, rangeErr.Neighbor)
	require.Contains(t, v.Err.Error(), "neighbor 5")
}

func TestNewNotAdjacency(t *testing.T) {
	tests := []struct {
		name string
		adj  any
		want string
	}{
		{name: "Scalar", adj: 42, want: "not adjacency data"},
		{name: "FlatList", adj: []int{1, 2}, want: "vertex 0"},
		{name: "NonIntegerNeighbor", adj: [][]string{{"a"}}, want: "not an integer id"},
		{name: "Negative", adj: [][]int{{-1}}, want: "neighbor -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(tt.adj, "")
			require.ErrorIs(t, v.Err, ErrMalformedGraph)
			require.Contains(t, v.Err.Error(), tt.want)
		})
	}
}

func TestNewSparseForeignNeighbor(t *testing.T) {
	v := New(map[string][]string{"a": {"b", "z"}, "b": nil}, "deps")
	require.NoError(t, v.Err)
	require.Equal(t, shape.TagAdjacencyMapping, v.Tag)
	require.Equal(t, []any{"a", "b"}, ids(v.Vertices))
}

func TestToDOT(t *testing.T) {
	v := New([][]shape.Pair[int, int]{{shape.MakePair(1, 9)}, {}}, "costs")
	dot := ToDOT(v)
	for _, want := range []string{`label="costs"`, `"0" -> "1" [label="9"];`, `"1";`} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT missing %q:\n%s", want, dot)
		}
	}
}

type brokenKeys struct{}

func (brokenKeys) Keys() []any         { panic("keys boom") }
func (brokenKeys) Get(any) (any, bool) { return nil, false }

func TestNewRecoversFromPanickingInput(t *testing.T) {
	var v *View
	require.NotPanics(t, func() { v = New(brokenKeys{}, "g") })
	require.ErrorIs(t, v.Err, ErrMalformedGraph)
	require.Contains(t, v.Err.Error(), "panic: keys boom")
	require.Empty(t, v.Vertices)
	require.Equal(t, "g", v.DisplayLabel())
}
