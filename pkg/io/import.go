package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/chainviz/pkg/errors"
	"github.com/matzehuels/chainviz/pkg/markov"
)

// Chain is the on-disk form of a transition matrix and its drawing options.
// Position and label maps are keyed by the state index written as a string.
type Chain struct {
	Matrix       [][]float64           `json:"matrix"`
	DT           *float64              `json:"dt,omitempty"`
	Positions    map[string][2]float64 `json:"positions,omitempty"`
	Labels       map[string]string     `json:"labels,omitempty"`
	NodeColor    string                `json:"node_color,omitempty"`
	UseTimescale bool                  `json:"use_timescale,omitempty"`
	Threshold    *float64              `json:"threshold,omitempty"`
}

// Transition returns the matrix as a gonum Dense.
func (c *Chain) Transition() (*mat.Dense, error) {
	return markov.FromRows(c.Matrix)
}

// Options converts the file's drawing options. Missing dt and threshold take
// markov.DefaultDT and markov.DefaultThreshold.
func (c *Chain) Options() (markov.Options, error) {
	opts := markov.DefaultOptions()
	opts.UseTimescale = c.UseTimescale
	if c.NodeColor != "" {
		opts.NodeColor = c.NodeColor
	}
	if c.DT != nil {
		opts.DT = *c.DT
	}
	if c.Threshold != nil {
		opts.Threshold = *c.Threshold
	}

	if c.Positions != nil {
		opts.Positions = make(map[int]markov.Point, len(c.Positions))
		for k, p := range c.Positions {
			i, err := stateIndex(k)
			if err != nil {
				return markov.Options{}, err
			}
			opts.Positions[i] = markov.Point{X: p[0], Y: p[1]}
		}
	}
	if c.Labels != nil {
		opts.Labels = make(map[int]string, len(c.Labels))
		for k, l := range c.Labels {
			i, err := stateIndex(k)
			if err != nil {
				return markov.Options{}, err
			}
			opts.Labels[i] = l
		}
	}
	return opts, nil
}

func stateIndex(key string) (int, error) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "state key %q is not a non-negative integer", key)
	}
	return i, nil
}

// ReadChain decodes a chain file from r.
//
// The input must be a JSON object with at least a "matrix" field:
//
//	{
//	  "matrix": [[0.9, 0.1], [0.3, 0.7]],
//	  "dt": 1.0,
//	  "positions": {"0": [0, 0], "1": [1, 0.5]},
//	  "labels": {"0": "Open", "1": "Closed"},
//	  "node_color": "#6495ed",
//	  "use_timescale": true,
//	  "threshold": 1e-6
//	}
//
// Unknown fields are rejected. ReadChain does not close r.
func ReadChain(r io.Reader) (*Chain, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var c Chain
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode chain")
	}
	if len(c.Matrix) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "chain has no matrix")
	}
	return &c, nil
}

// ImportChain reads a chain file at path.
func ImportChain(path string) (*Chain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadChain(f)
}

// sortedKeys returns map keys in numeric order for stable output.
func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
