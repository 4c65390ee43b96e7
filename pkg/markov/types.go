package markov

import (
	"fmt"
	"math"
)

// =============================================================================
// Defaults
// =============================================================================

const (
	// DefaultThreshold hides transitions whose probability does not exceed it.
	DefaultThreshold = 1e-6

	// DefaultDT is the time step used when converting probabilities to rates.
	DefaultDT = 1.0

	// DefaultNodeColor is the node fill when none is given.
	DefaultNodeColor = "lightblue"
)

// =============================================================================
// Options
// =============================================================================

// Point is a node position in data coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Options controls how a transition matrix becomes a Graph.
type Options struct {
	DT           float64        // time step for timescale labels
	Positions    map[int]Point  // node positions; nil places node i at (i, 0)
	UseTimescale bool           // label edges with timescales instead of probabilities
	Threshold    float64        // edges exist where P[i,j] > Threshold
	Labels       map[int]string // node labels; nil yields "State i+1"
	NodeColor    string         // node fill; empty yields DefaultNodeColor
}

// DefaultOptions returns the options used when the caller only has a matrix.
func DefaultOptions() Options {
	return Options{
		DT:        DefaultDT,
		Threshold: DefaultThreshold,
		NodeColor: DefaultNodeColor,
	}
}

// =============================================================================
// Graph
// =============================================================================

// EdgeKind classifies an edge by the relative order of its endpoints.
type EdgeKind int

const (
	Self     EdgeKind = iota // i == j
	Forward                  // j > i
	Backward                 // j < i
)

func (k EdgeKind) String() string {
	switch k {
	case Self:
		return "self"
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("EdgeKind(%d)", int(k))
	}
}

// Classify returns the kind of the edge i → j.
func Classify(i, j int) EdgeKind {
	switch {
	case i == j:
		return Self
	case j > i:
		return Forward
	default:
		return Backward
	}
}

// Node is a chain state placed in the plane.
type Node struct {
	Index int
	Label string
	Pos   Point
	Color string
}

// Edge is a visible transition.
type Edge struct {
	From  int
	To    int
	Prob  float64
	Label string
	Kind  EdgeKind
}

// Key identifies an edge by its endpoints.
type Key struct {
	From, To int
}

// LabelMap maps edges to display text.
type LabelMap map[Key]string

// Graph is the drawable form of a transition matrix. It holds no rendering
// state; the figure package turns it into a scene.
//
// Every edge has an entry in each of the three label maps. The map matching
// the edge's kind holds its label and the other two hold "".
type Graph struct {
	Nodes []Node
	Edges []Edge

	SelfLabels     LabelMap
	ForwardLabels  LabelMap
	BackwardLabels LabelMap

	// PositionsSupplied records whether Options.Positions was given.
	PositionsSupplied bool
}

// N returns the number of states.
func (g *Graph) N() int { return len(g.Nodes) }

// MaxAbsX returns the largest |x| over node positions when positions were
// supplied and 0 otherwise. Figure height grows with it.
func (g *Graph) MaxAbsX() float64 {
	if !g.PositionsSupplied {
		return 0
	}
	var m float64
	for _, n := range g.Nodes {
		if v := math.Abs(n.Pos.X); v > m {
			m = v
		}
	}
	return m
}

// EdgesOf returns the edges of the given kind in matrix order.
func (g *Graph) EdgesOf(kind EdgeKind) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
