// Package markov turns a Markov-chain transition matrix into a drawable graph.
//
// [Build] is pure data transformation: it places nodes, keeps the transitions
// above a threshold, classifies them as self-loops, forward edges (j > i) or
// backward edges (j < i), and formats their labels. Drawing lives in
// pkg/render/figure.
//
// Labels are either probabilities ("0.25") or relaxation timescales derived
// from rate = -ln(1-p)/dt:
//
//	markov.TimescaleLabel(markov.Timescale(markov.TransitionRate(0.5, 1))) // "1.4 ms"
package markov
