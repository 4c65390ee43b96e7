package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/chainviz/pkg/markov"
	"github.com/matzehuels/chainviz/pkg/observability"
	"github.com/matzehuels/chainviz/pkg/render/figure"
	"github.com/matzehuels/chainviz/pkg/render/nodelink"
	"github.com/matzehuels/chainviz/pkg/render/sink"
)

// Render encodes g in every requested format. Options must already be
// validated.
func Render(ctx context.Context, g *markov.Graph, opts Options) (map[string][]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	var artifacts map[string][]byte
	var err error
	switch opts.Engine {
	case EngineGraphviz:
		artifacts, err = renderGraphviz(ctx, g, opts)
	default:
		artifacts, err = renderNative(ctx, g, opts)
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

// renderNative draws the figure once and encodes it per format.
func renderNative(ctx context.Context, g *markov.Graph, opts Options) (map[string][]byte, error) {
	fig, err := figure.Draw(g)
	if err != nil {
		return nil, err
	}

	var svgOpts []sink.SVGOption
	pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale)}
	if opts.Transparent {
		svgOpts = append(svgOpts, sink.WithTransparent())
		pngOpts = append(pngOpts, sink.WithPNGTransparent())
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(fig, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(fig, pngOpts...)
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, fig, sink.WithPDFSVGOptions(svgOpts...))
		case FormatDOT:
			data, err = exportDOT(g)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// renderGraphviz lays the graph out with Graphviz. Supplied positions are
// pinned and laid out with neato.
func renderGraphviz(ctx context.Context, g *markov.Graph, opts Options) (map[string][]byte, error) {
	dotOpts := nodelink.Options{Pinned: g.PositionsSupplied}
	dot, err := nodelink.ToDOT(g, dotOpts)
	if err != nil {
		return nil, err
	}
	engine := nodelink.EngineFor(dotOpts)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, dot, engine)
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, dot, engine, opts.Scale)
		case FormatPDF:
			data, err = nodelink.RenderPDF(ctx, dot, engine)
		case FormatDOT:
			data = []byte(dot)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func exportDOT(g *markov.Graph) ([]byte, error) {
	dot, err := nodelink.ToDOT(g, nodelink.Options{Pinned: g.PositionsSupplied})
	if err != nil {
		return nil, err
	}
	return []byte(dot), nil
}
