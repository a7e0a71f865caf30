package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dbgview/pkg/errors"
	"github.com/matzehuels/dbgview/pkg/graphview"
	"github.com/matzehuels/dbgview/pkg/input"
)

// Export formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
	formatPDF = "pdf"
)

// Graph views that can be exported.
const (
	viewAdjacency = "adjacency"
	viewWeighted  = "weighted"
	viewSample    = "sample"
)

// exportOpts holds the flags of the export command.
type exportOpts struct {
	format string
	output string
	view   string
	scale  float64
}

// exportCommand creates the export command, which writes a graph view of the
// input as DOT or renders it through Graphviz.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{format: formatDOT, view: viewAdjacency, scale: 2}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export a graph view as DOT, SVG, PNG or PDF",
		Long: `Export a graph view of the input graph. DOT is written as text; SVG is
rendered with Graphviz; PNG and PDF additionally require rsvg-convert
(librsvg).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(opts.format, formatDOT, formatSVG, formatPNG, formatPDF); err != nil {
				return err
			}
			if err := errors.ValidateFormat(opts.view, viewAdjacency, viewWeighted, viewSample); err != nil {
				return err
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return c.runExport(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, png, pdf")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.view, "view", opts.view, "graph view: adjacency, weighted, sample")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, w, status io.Writer, path string, opts exportOpts) error {
	logger := loggerFromContext(ctx)

	v, err := loadView(path, opts.view)
	if err != nil {
		return err
	}
	if v.Err != nil {
		return errors.Wrap(errors.ErrCodeMalformedGraph, v.Err, "view %s", v.DisplayLabel())
	}
	logger.Debug("built view", "label", v.DisplayLabel(), "vertices", len(v.Vertices), "edges", v.EdgeCount())

	st := startStage(logger, "Exported "+opts.format)
	data, err := exportView(ctx, status, v, opts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	st.done("view", v.DisplayLabel(), "bytes", len(data))
	printSuccess(status, "Exported %s view", v.DisplayLabel())
	printFile(status, opts.output)
	return nil
}

// loadView builds the requested view. The sample view needs no input.
func loadView(path, view string) (*graphview.View, error) {
	if view == viewSample {
		return graphview.New(input.Sample(), "sample"), nil
	}

	r, _, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	g, err := input.Parse(r)
	if err != nil {
		return nil, err
	}

	if view == viewWeighted {
		return graphview.New(g.WeightedMap(), "weighted by cost"), nil
	}
	return graphview.New(g.Adjacency(), "adjacency"), nil
}

func exportView(ctx context.Context, status io.Writer, v *graphview.View, opts exportOpts) ([]byte, error) {
	dot := graphview.ToDOT(v)
	if opts.format == formatDOT {
		return []byte(dot), nil
	}

	sp := newSpinner(ctx, status, "Rendering "+opts.format+"...")
	sp.Start()
	defer sp.Stop()

	switch opts.format {
	case formatSVG:
		return graphview.RenderSVG(ctx, dot)
	case formatPNG:
		return graphview.RenderPNG(ctx, dot, opts.scale)
	default:
		return graphview.RenderPDF(ctx, dot)
	}
}
