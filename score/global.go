// Package score: the global fixed-point scorer.
package score

import (
	"github.com/katalvlaran/lvldiff/combine"
	"github.com/katalvlaran/lvldiff/glts"
)

// Global is the Walkinshaw global similarity scorer: scores are the
// fixed point of the similarity update, so every pair's score reflects
// the whole transitive structure of both graphs.
//
// Complexity: O(sweeps · Σ deg²); the update is a contraction for
// α < 1, so sweeps is small in practice (tolerance-bound).
type Global[S, T any] struct {
	eng  engine[S, T]
	opts Options
}

// NewGlobal builds a global scorer from the state and transition
// combiners. Returns ErrBadAttenuation / ErrBadTolerance /
// ErrBadRefinements on invalid options.
func NewGlobal[S, T any](states combine.Combiner[S], trans combine.Combiner[T], opts Options) (*Global[S, T], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Global[S, T]{
		eng:  engine[S, T]{states: states, trans: trans, alpha: opts.Attenuation},
		opts: opts,
	}, nil
}

// Compute returns the |L|×|R| fixed-point similarity matrix.
// Returns ErrNilGraph on a nil input; empty graphs yield an empty
// matrix (a valid base case, not an error).
func (s *Global[S, T]) Compute(l, r *glts.Graph[S, T]) ([][]float64, error) {
	if l == nil || r == nil {
		return nil, ErrNilGraph
	}

	prev := s.eng.initMatrix(l, r)
	next := s.eng.initMatrix(l, r)
	for iter := 0; iter < s.opts.MaxIterations; iter++ {
		if delta := s.eng.sweep(l, r, prev, next); delta <= s.opts.Tolerance {
			return next, nil
		}
		prev, next = next, prev
	}

	// The cap is a safety net; prev holds the latest sweep after the swap.
	return prev, nil
}
