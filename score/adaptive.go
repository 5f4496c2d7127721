// Package score: the explicit size policy and its Scorer wrapper.
package score

import (
	"github.com/katalvlaran/lvldiff/combine"
	"github.com/katalvlaran/lvldiff/glts"
)

// Size thresholds of the adaptive policy. Empirically chosen trade-offs
// between score quality and runtime; configurable call sites should not
// treat them as correctness constants.
const (
	// MaxGlobalStates is the largest per-input state count for which the
	// adaptive policy still pays for the global fixed point.
	MaxGlobalStates = 45

	// MaxFullRefinementStates is the largest per-input state count for
	// which the adaptive policy runs the local scorer at
	// DefaultRefinements; above it a single refinement is used.
	MaxFullRefinementStates = 500

	// MinRefinements is the local refinement count for very large inputs.
	MinRefinements = 1
)

// Kind names a concrete scorer choice.
type Kind int

const (
	// KindGlobal selects the global fixed-point scorer.
	KindGlobal Kind = iota

	// KindLocal selects the local bounded-refinement scorer.
	KindLocal
)

// Select is the pure size policy: global for inputs of at most
// MaxGlobalStates states each, otherwise local with DefaultRefinements
// up to MaxFullRefinementStates states, else MinRefinements. The
// returned refinement count is meaningful for KindLocal only.
func Select(nl, nr int) (Kind, int) {
	if nl <= MaxGlobalStates && nr <= MaxGlobalStates {
		return KindGlobal, 0
	}
	if nl <= MaxFullRefinementStates && nr <= MaxFullRefinementStates {
		return KindLocal, DefaultRefinements
	}

	return KindLocal, MinRefinements
}

// Adaptive wraps Select into a Scorer: each Compute call picks the
// scorer variant for the input sizes at hand.
type Adaptive[S, T any] struct {
	states combine.Combiner[S]
	trans  combine.Combiner[T]
	opts   Options
}

// NewAdaptive builds the size-adaptive scorer. Returns option sentinel
// errors on invalid configuration.
func NewAdaptive[S, T any](states combine.Combiner[S], trans combine.Combiner[T], opts Options) (*Adaptive[S, T], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Adaptive[S, T]{states: states, trans: trans, opts: opts}, nil
}

// Compute dispatches per the Select policy.
func (s *Adaptive[S, T]) Compute(l, r *glts.Graph[S, T]) ([][]float64, error) {
	if l == nil || r == nil {
		return nil, ErrNilGraph
	}

	kind, refinements := Select(l.Size(), r.Size())
	if kind == KindGlobal {
		g, err := NewGlobal(s.states, s.trans, s.opts)
		if err != nil {
			return nil, err
		}

		return g.Compute(l, r)
	}

	opts := s.opts
	opts.Refinements = refinements
	loc, err := NewLocal(s.states, s.trans, opts)
	if err != nil {
		return nil, err
	}

	return loc.Compute(l, r)
}
