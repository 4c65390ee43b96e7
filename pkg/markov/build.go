package markov

import (
	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/chainviz/pkg/errors"
)

// Build turns the N×N transition matrix P into a Graph.
//
// Node i sits at opts.Positions[i] or, without positions, at (i, 0). An edge
// i → j exists for every P[i,j] > opts.Threshold, in row-major order. Row sums
// and dt are not checked: in timescale mode a dt of zero or below makes every
// rate infinite or negative, so all edges are labelled "Stable".
func Build(P mat.Matrix, opts Options) (*Graph, error) {
	if P == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "transition matrix is nil")
	}
	r, c := P.Dims()
	if r != c {
		return nil, errors.New(errors.ErrCodeShapeMismatch, "transition matrix must be square, got %d×%d", r, c)
	}
	if r == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "transition matrix is empty")
	}

	n := r
	g := &Graph{
		Nodes:             make([]Node, n),
		SelfLabels:        LabelMap{},
		ForwardLabels:     LabelMap{},
		BackwardLabels:    LabelMap{},
		PositionsSupplied: opts.Positions != nil,
	}

	color := opts.NodeColor
	if color == "" {
		color = DefaultNodeColor
	}

	for i := range n {
		node := Node{Index: i, Color: color, Pos: Point{X: float64(i)}}
		if opts.Positions != nil {
			p, ok := opts.Positions[i]
			if !ok {
				return nil, errors.New(errors.ErrCodeShapeMismatch, "no position for state %d", i)
			}
			node.Pos = p
		}
		if opts.Labels != nil {
			node.Label = opts.Labels[i]
		} else {
			node.Label = StateLabel(i)
		}
		g.Nodes[i] = node
	}

	for i := range n {
		for j := range n {
			p := P.At(i, j)
			if !(p > opts.Threshold) {
				continue
			}
			g.addEdge(i, j, p, EdgeLabel(p, opts))
		}
	}
	return g, nil
}

func (g *Graph) addEdge(i, j int, p float64, label string) {
	e := Edge{From: i, To: j, Prob: p, Label: label, Kind: Classify(i, j)}
	g.Edges = append(g.Edges, e)

	k := Key{i, j}
	g.SelfLabels[k] = ""
	g.ForwardLabels[k] = ""
	g.BackwardLabels[k] = ""
	switch e.Kind {
	case Self:
		g.SelfLabels[k] = label
	case Forward:
		g.ForwardLabels[k] = label
	case Backward:
		g.BackwardLabels[k] = label
	}
}

// FromRows builds a dense matrix from nested rows, as read from JSON.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "transition matrix is empty")
	}
	n := len(rows)
	data := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, errors.New(errors.ErrCodeShapeMismatch,
				"transition matrix must be square: row %d has %d entries, want %d", i, len(row), n)
		}
		data = append(data, row...)
	}
	return mat.NewDense(n, n, data), nil
}
