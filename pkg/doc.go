// Package pkg provides the core libraries for Chainviz.
//
// # Overview
//
// Chainviz draws discrete-time Markov chains as state diagrams: states are
// circles, transitions are curved arrows labelled with their probability or
// characteristic timescale, and self-transitions are small loops. Alongside the
// renderer it carries two numeric helpers used when preparing chain data:
// moving-window smoothing of 1-D signals and cropping of arrays to a common
// length.
//
// # Architecture
//
// The typical data flow through Chainviz:
//
//	chain file (matrix + options)
//	         ↓
//	    [io] package (decode, defaults)
//	         ↓
//	    [markov] package (edges, labels, kinds)
//	         ↓
//	    [render/figure] package (arcs, loops, arrowheads)
//	         ↓
//	    [render/sink] or [render/nodelink]
//	         ↓
//	    SVG/PNG/PDF/DOT output
//
// # Quick Start
//
//	P, _ := markov.FromRows([][]float64{{0.9, 0.1}, {0.3, 0.7}})
//	fig, _ := pipeline.RenderMarkovChain(P, markov.DefaultOptions())
//	svg := sink.RenderSVG(fig)
//
// # Main Packages
//
// [markov] - Transition matrix to graph: visible edges above a threshold,
// probability and timescale labels, forward/backward/self classification.
//
// [render] - Color parsing plus the [render/figure] scene builder, the
// [render/sink] encoders and the Graphviz [render/nodelink] backend.
//
// [signal] - Window functions, reflective padding, direct and FFT
// convolution, and descriptive statistics.
//
// [array] - An N-dimensional float64 array and cropping to the minimum size.
//
// [pipeline] - Build, render and cache in one call; used by the CLI and the
// HTTP server.
//
// [cache] - File (zstd compressed) and Redis artifact caches.
//
// [config], [errors], [observability], [buildinfo] - Ambient support.
//
// [markov]: github.com/matzehuels/chainviz/pkg/markov
// [render]: github.com/matzehuels/chainviz/pkg/render
// [render/figure]: github.com/matzehuels/chainviz/pkg/render/figure
// [render/sink]: github.com/matzehuels/chainviz/pkg/render/sink
// [render/nodelink]: github.com/matzehuels/chainviz/pkg/render/nodelink
// [signal]: github.com/matzehuels/chainviz/pkg/signal
// [array]: github.com/matzehuels/chainviz/pkg/array
// [io]: github.com/matzehuels/chainviz/pkg/io
// [pipeline]: github.com/matzehuels/chainviz/pkg/pipeline
// [cache]: github.com/matzehuels/chainviz/pkg/cache
// [config]: github.com/matzehuels/chainviz/pkg/config
// [errors]: github.com/matzehuels/chainviz/pkg/errors
// [observability]: github.com/matzehuels/chainviz/pkg/observability
// [buildinfo]: github.com/matzehuels/chainviz/pkg/buildinfo
package pkg
