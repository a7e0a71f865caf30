package graphview

import (
	"errors"
	"fmt"
)

// ErrMalformedGraph is matched by every error stored on a [View]. Use
// errors.Is to test a view's Err against it.
var ErrMalformedGraph = errors.New("malformed graph")

// NeighborRangeError reports a neighbor id outside the vertex id range of a
// dense adjacency list.
type NeighborRangeError struct {
	Vertex   int   // vertex whose neighbor list holds the id
	Neighbor int64 // offending neighbor id
	Count    int   // number of vertices; valid ids are 0..Count-1
}

func (e *NeighborRangeError) Error() string {
	return fmt.Sprintf("vertex %d: neighbor %d out of range [0, %d)", e.Vertex, e.Neighbor, e.Count)
}

// Is reports whether target is [ErrMalformedGraph].
func (e *NeighborRangeError) Is(target error) bool {
	return target == ErrMalformedGraph
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedGraph, fmt.Sprintf(format, args...))
}
