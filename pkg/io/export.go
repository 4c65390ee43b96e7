package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/chainviz/pkg/markov"
)

// NewChain builds the file form of P and opts.
func NewChain(P mat.Matrix, opts markov.Options) *Chain {
	r, c := P.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = P.At(i, j)
		}
	}

	dt, threshold := opts.DT, opts.Threshold
	out := &Chain{
		Matrix:       rows,
		DT:           &dt,
		Threshold:    &threshold,
		NodeColor:    opts.NodeColor,
		UseTimescale: opts.UseTimescale,
	}
	if opts.Positions != nil {
		out.Positions = make(map[string][2]float64, len(opts.Positions))
		for _, k := range sortedKeys(opts.Positions) {
			p := opts.Positions[k]
			out.Positions[strconv.Itoa(k)] = [2]float64{p.X, p.Y}
		}
	}
	if opts.Labels != nil {
		out.Labels = make(map[string]string, len(opts.Labels))
		for _, k := range sortedKeys(opts.Labels) {
			out.Labels[strconv.Itoa(k)] = opts.Labels[k]
		}
	}
	return out
}

// WriteChain encodes c as indented JSON. The output can be re-read with
// [ReadChain].
func WriteChain(c *Chain, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportChain writes c to a JSON file at path.
func ExportChain(c *Chain, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteChain(c, f)
}
