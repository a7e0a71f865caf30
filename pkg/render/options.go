package render

import "github.com/matzehuels/dbgview/pkg/shape"

// Default option values.
const (
	DefaultMaxDepth  = 16
	DefaultPrecision = 6
	DefaultWidth     = 100
)

// Options controls how values are built and laid out.
type Options struct {
	// MaxDepth is the nesting depth at which composites are replaced by the
	// <max depth> marker. Zero selects DefaultMaxDepth.
	MaxDepth int

	// MaxElems caps the number of elements shown per collection; the rest is
	// summarized as <+N more>. Zero means unlimited.
	MaxElems int

	// Precision is the number of fractional digits used for floats before
	// trailing zeros are trimmed. Zero selects DefaultPrecision.
	Precision int

	// Width is the line width a composite's one-line form must fit in.
	// Zero means unlimited.
	Width int

	// Classifier classifies values; nil selects shape.Default().
	Classifier *shape.Classifier
}

// DefaultOptions returns the options used by the diagnostic entry points
// when none are configured.
func DefaultOptions() Options {
	return Options{
		MaxDepth:  DefaultMaxDepth,
		Precision: DefaultPrecision,
		Width:     DefaultWidth,
	}
}

func (o Options) normalized() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Precision <= 0 {
		o.Precision = DefaultPrecision
	}
	if o.Width < 0 {
		o.Width = 0
	}
	if o.MaxElems < 0 {
		o.MaxElems = 0
	}
	if o.Classifier == nil {
		o.Classifier = shape.Default()
	}
	return o
}
