// Package figure lays out a chain graph as a pixel-space scene.
//
// [Draw] maps node positions onto a figure two inches wide per state, draws
// nodes as fixed-size circles, connects distinct states with arcs of constant
// curvature and gives each node with a self-transition a small Bezier loop.
// Forward labels hang below their anchor and backward labels stand on it, so
// the two directions of a pair never collide.
//
// A [Figure] only holds primitives; pkg/render/sink turns it into bytes.
package figure
