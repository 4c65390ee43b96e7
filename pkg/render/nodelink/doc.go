// Package nodelink renders chain graphs with Graphviz.
//
// # Overview
//
// This is the alternative to the native figure renderer: the graph is written
// as DOT and Graphviz computes the layout and the drawing. Labels and colors
// match the native figure; curvature and label placement are Graphviz's.
//
// # Usage
//
//	dot, err := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot, nodelink.EngineDot)
//
// With Options.Pinned the nodes keep their chain positions and the graph must
// be laid out with [EngineNeato]; [EngineFor] picks the right one.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering;
// PDF and PNG output go through rsvg-convert.
package nodelink
