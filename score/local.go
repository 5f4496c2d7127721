// Package score: the local bounded-refinement scorer.
package score

import (
	"github.com/katalvlaran/lvldiff/combine"
	"github.com/katalvlaran/lvldiff/glts"
)

// Local approximates the global scorer with k bounded refinements: the
// first sweep scores immediate transition overlap only (k=0), and each
// further refinement incorporates one more hop of context. As k→∞ the
// result converges to the global fixed point.
//
// Complexity: O((k+1) · Σ deg²) — much cheaper than solving the global
// system on large inputs.
type Local[S, T any] struct {
	eng  engine[S, T]
	opts Options
}

// NewLocal builds a local scorer from the state and transition
// combiners. opts.Refinements is the k bound. Returns option sentinel
// errors on invalid configuration.
func NewLocal[S, T any](states combine.Combiner[S], trans combine.Combiner[T], opts Options) (*Local[S, T], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Local[S, T]{
		eng:  engine[S, T]{states: states, trans: trans, alpha: opts.Attenuation},
		opts: opts,
	}, nil
}

// Compute returns the |L|×|R| similarity matrix after k+1 sweeps.
// Returns ErrNilGraph on a nil input.
func (s *Local[S, T]) Compute(l, r *glts.Graph[S, T]) ([][]float64, error) {
	if l == nil || r == nil {
		return nil, ErrNilGraph
	}

	prev := s.eng.initMatrix(l, r)
	next := s.eng.initMatrix(l, r)
	for round := 0; round <= s.opts.Refinements; round++ {
		s.eng.sweep(l, r, prev, next)
		prev, next = next, prev
	}

	return prev, nil
}
