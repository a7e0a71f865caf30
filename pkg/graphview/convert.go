package graphview

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/dbgview/pkg/errors"
)

// rsvgBinary converts the SVG produced by Graphviz into PDF and PNG.
const rsvgBinary = "rsvg-convert"

// convertSVG pipes svg through rsvg-convert. format is "pdf" or "png"; scale
// zooms PNG output and is ignored otherwise.
func convertSVG(ctx context.Context, svg []byte, format string, scale float64) ([]byte, error) {
	bin, err := exec.LookPath(rsvgBinary)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err,
			"%s export needs %s from librsvg (brew install librsvg, apt install librsvg2-bin)", format, rsvgBinary)
	}

	args := []string{"--format", format}
	if format == "png" && scale > 0 {
		args = append(args, "--zoom", strconv.FormatFloat(scale, 'f', 2, 64))
	}
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = bytes.NewReader(svg)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", rsvgBinary, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}
