// Package io reads and writes the file formats chainviz works with.
//
// # Chain Files
//
// A chain file is a JSON object holding a transition matrix and the options
// used to draw it. Only "matrix" is required:
//
//	{
//	  "matrix": [[0.9, 0.1], [0.3, 0.7]],
//	  "dt": 0.5,
//	  "positions": {"0": [0, 0], "1": [1, 0.5]},
//	  "labels": {"0": "Open", "1": "Closed"},
//	  "node_color": "#6495ed",
//	  "use_timescale": true,
//	  "threshold": 1e-6
//	}
//
// Use [ImportChain] or [ReadChain] to load one, then [Chain.Transition] and
// [Chain.Options] to get the inputs of markov.Build. [NewChain] and
// [ExportChain] go the other way.
//
// # Signals
//
// [ReadSignal] accepts JSON (a bare array or {"signal": [...]}) and CSV (first
// column, optional header). [ImportSignal] and [ExportSignal] pick the format
// from the file extension.
//
// # Array Sets
//
// [ReadArrays] accepts a bare list of {"shape", "data"} objects or an object
// with an "arrays" list. [WriteArrays] always writes the object form.
package io
