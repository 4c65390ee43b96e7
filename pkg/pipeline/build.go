package pipeline

import (
	"context"
	"time"

	"gonum.org/v1/gonum/mat"

	pkgio "github.com/matzehuels/chainviz/pkg/io"
	"github.com/matzehuels/chainviz/pkg/markov"
	"github.com/matzehuels/chainviz/pkg/observability"
	"github.com/matzehuels/chainviz/pkg/render/figure"
)

// RenderMarkovChain draws P as an annotated state diagram. The returned
// figure is not displayed or written anywhere; encode it with pkg/render/sink.
func RenderMarkovChain(P mat.Matrix, opts markov.Options) (*figure.Figure, error) {
	g, err := markov.Build(P, opts)
	if err != nil {
		return nil, err
	}
	return figure.Draw(g)
}

// BuildGraph converts a chain file to a graph and reports the build to the
// pipeline hooks.
func BuildGraph(ctx context.Context, c *pkgio.Chain) (*markov.Graph, error) {
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, len(c.Matrix))
	start := time.Now()

	g, err := buildGraph(c)

	edges := 0
	if g != nil {
		edges = len(g.Edges)
	}
	hooks.OnBuildComplete(ctx, len(c.Matrix), edges, time.Since(start), err)
	return g, err
}

func buildGraph(c *pkgio.Chain) (*markov.Graph, error) {
	P, err := c.Transition()
	if err != nil {
		return nil, err
	}
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return markov.Build(P, opts)
}
