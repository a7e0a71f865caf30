package shape

import "fmt"

// Tag is the structural classification of an inspected value.
type Tag int

const (
	// TagScalar is a directly formattable value (numbers, strings, nil,
	// Stringers) and the fallback for values with no known capability.
	TagScalar Tag = iota
	// TagSequence is an ordered collection of elements.
	TagSequence
	// TagMapping is a key/value association, rendered in key order.
	TagMapping
	// TagPair is a two-component value.
	TagPair
	// TagPriority is a collection rendered in pop order, highest priority first.
	TagPriority
	// TagAdjacencyList is a dense, list-indexed unweighted graph.
	TagAdjacencyList
	// TagAdjacencyMapping is a sparse, id-keyed unweighted graph.
	TagAdjacencyMapping
	// TagWeightedAdjacency is a graph whose edges carry weights.
	TagWeightedAdjacency
)

var tagNames = [...]string{
	TagScalar:            "scalar",
	TagSequence:          "sequence",
	TagMapping:           "mapping",
	TagPair:              "pair",
	TagPriority:          "priority",
	TagAdjacencyList:     "adjacency-list",
	TagAdjacencyMapping:  "adjacency-mapping",
	TagWeightedAdjacency: "weighted-adjacency",
}

// String returns the tag's stable name, e.g. "adjacency-list".
func (t Tag) String() string {
	if t >= 0 && int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("tag(%d)", int(t))
}

// IsGraph reports whether t is one of the adjacency tags.
func (t Tag) IsGraph() bool {
	return t == TagAdjacencyList || t == TagAdjacencyMapping || t == TagWeightedAdjacency
}

// MarshalText encodes the tag as its name.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tag name produced by MarshalText.
func (t *Tag) UnmarshalText(b []byte) error {
	for i, name := range tagNames {
		if name == string(b) {
			*t = Tag(i)
			return nil
		}
	}
	return fmt.Errorf("unknown shape tag %q", b)
}
