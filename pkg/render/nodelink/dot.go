package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/chainviz/pkg/markov"
	"github.com/matzehuels/chainviz/pkg/render"
	"github.com/matzehuels/chainviz/pkg/render/figure"
)

// Engine names a Graphviz layout program.
type Engine string

const (
	EngineDot   Engine = "dot"
	EngineNeato Engine = "neato"
)

// pointsPerUnit is the default spacing of pinned nodes.
const pointsPerUnit = 144.0

// Options configures DOT generation.
type Options struct {
	// Pinned writes each node's chain position as a fixed pos attribute.
	// Pinned graphs must be laid out with EngineNeato.
	Pinned bool

	// Scale is the number of points per data unit for pinned positions.
	// Zero uses 144 (two inches).
	Scale float64
}

// EngineFor returns the layout program matching opts.
func EngineFor(opts Options) Engine {
	if opts.Pinned {
		return EngineNeato
	}
	return EngineDot
}

// ToDOT converts a chain graph to Graphviz DOT. Nodes are filled circles with
// white bold labels, edges gray arrows labeled like the native figure.
func ToDOT(g *markov.Graph, opts Options) (string, error) {
	edgeColor, err := render.ParseColor(figure.EdgeColor)
	if err != nil {
		return "", err
	}
	scale := opts.Scale
	if scale == 0 {
		scale = pointsPerUnit
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontname=\"Helvetica-Bold\", fontcolor=white, fontsize=24, width=0.62];\n")
	fmt.Fprintf(&buf, "  edge [color=%q, fontcolor=%q, fontsize=14, penwidth=2.5, arrowsize=0.8];\n",
		edgeColor.Hex(), edgeColor.Hex())
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fill, err := render.ParseColor(n.Color)
		if err != nil {
			return "", err
		}
		attrs := []string{
			fmt.Sprintf("label=%q", n.Label),
			fmt.Sprintf("fillcolor=%q", fill.Hex()),
		}
		if opts.Pinned {
			attrs = append(attrs, fmt.Sprintf("pos=\"%.2f,%.2f!\"", n.Pos.X*scale, n.Pos.Y*scale))
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", n.Index, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		attrs := []string{fmt.Sprintf("label=%q", e.Label)}
		if e.Kind == markov.Self {
			attrs = append(attrs, "headport=n", "tailport=n")
		}
		fmt.Fprintf(&buf, "  %d -> %d [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz in-process.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string, engine Engine) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.Layout(engine))

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

// normalizeViewBox replaces Graphviz's pt-sized root element with a plain
// pixel-sized one so the output scales like the native SVG sink.
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

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string, engine Engine) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot, engine)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(ctx context.Context, dot string, engine Engine, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot, engine)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
