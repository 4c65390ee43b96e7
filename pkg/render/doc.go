// Package render provides the shared pieces of the chain renderers.
//
// # Overview
//
// The rendering pipeline turns a [markov.Graph] into an output file. It is
// split across subpackages:
//
//   - [figure]: the native scene (circles, Bezier arcs, arrowheads, text)
//   - [sink]: SVG, PNG and PDF encoders for a figure
//   - [nodelink]: Graphviz DOT export and in-process Graphviz rendering
//
// This package itself holds color parsing and format conversion.
//
// # Colors
//
// [ParseColor] accepts "#rrggbb", "rrggbb", "#rgb" and a handful of names
// ("lightblue", "xkcd:gray", ...). Invalid colors fail with INVALID_COLOR.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(fig)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [markov.Graph]: github.com/matzehuels/chainviz/pkg/markov
// [figure]: github.com/matzehuels/chainviz/pkg/render/figure
// [sink]: github.com/matzehuels/chainviz/pkg/render/sink
// [nodelink]: github.com/matzehuels/chainviz/pkg/render/nodelink
package render
