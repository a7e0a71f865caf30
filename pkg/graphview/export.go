package graphview

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts a view to Graphviz DOT. Dense views become digraphs over
// their vertex ids; weights are emitted as edge labels. Neighbors that are
// not vertices of a sparse view still get a node of their own.
func ToDOT(v *View) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", v.DisplayLabel())
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, vx := range v.Vertices {
		fmt.Fprintf(&buf, "  %q;\n", nodeID(vx.ID))
	}

	buf.WriteString("\n")
	for _, vx := range v.Vertices {
		for _, nb := range vx.Neighbors {
			if nb.Weighted {
				fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", nodeID(vx.ID), nodeID(nb.ID), nodeID(nb.Weight))
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(vx.ID), nodeID(nb.ID))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(id any) string {
	return fmt.Sprint(id)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales from a zero
// origin at its natural size.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF. The SVG is converted by
// rsvg-convert, which must be on PATH.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return convertSVG(ctx, svg, "pdf", 0)
}

// RenderPNG is RenderPDF for PNG output zoomed by scale.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return convertSVG(ctx, svg, "png", scale)
}
