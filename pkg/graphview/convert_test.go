package graphview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dbgview/pkg/errors"
)

func TestConvertSVGWithoutRsvg(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	for _, format := range []string{"pdf", "png"} {
		_, err := convertSVG(context.Background(), []byte("<svg/>"), format, 2)
		require.True(t, errors.Is(err, errors.ErrCodeUnsupported), "%s: %v", format, err)
		require.Contains(t, err.Error(), format+" export needs rsvg-convert")
	}
}
