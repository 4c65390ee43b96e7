// Package sink encodes a [figure.Figure] into output formats.
//
//   - [RenderSVG]: standalone SVG, written directly
//   - [RenderPNG]: native raster via fogleman/gg with the Go fonts
//   - [RenderPDF]: SVG converted by rsvg-convert
//
// All sinks paint edges first, nodes on top of them and text last.
//
// [figure.Figure]: github.com/matzehuels/chainviz/pkg/render/figure
package sink
