// Package match: the explicit size policy and its Matcher wrapper.
package match

import (
	"github.com/katalvlaran/lvldiff/combine"
	"github.com/katalvlaran/lvldiff/glts"
	"github.com/katalvlaran/lvldiff/score"
)

// MaxKuhnMunkresStates is the largest per-graph state count for which
// the cubic assignment algorithm is still the default choice; above it
// the landmark heuristic takes over.
const MaxKuhnMunkresStates = 45

// Kind identifies a concrete matching algorithm.
type Kind uint8

const (
	// KindKuhnMunkres selects the optimal assignment matcher.
	KindKuhnMunkres Kind = iota

	// KindWalkinshaw selects the landmark-propagation heuristic.
	KindWalkinshaw
)

// Select returns the matcher kind for the given graph sizes: the
// assignment algorithm while both graphs stay at or below
// MaxKuhnMunkresStates, the landmark heuristic beyond.
func Select(nl, nr int) Kind {
	if nl <= MaxKuhnMunkresStates && nr <= MaxKuhnMunkresStates {
		return KindKuhnMunkres
	}

	return KindWalkinshaw
}

// Adaptive is the policy-driven matcher: it sizes up its inputs via
// Select and delegates to Kuhn–Munkres or Walkinshaw accordingly,
// pairing each with the adaptive scorer so the whole pipeline scales
// together.
type Adaptive[S, T any] struct {
	km *KuhnMunkres[S, T]
	ww *Walkinshaw[S, T]
}

// NewAdaptive wires both matchers over the adaptive scorer with the
// package defaults. opts configures the underlying scorers.
func NewAdaptive[S, T any](
	states combine.Combiner[S],
	trans combine.Combiner[T],
	opts score.Options,
) (*Adaptive[S, T], error) {
	scorer, err := score.NewAdaptive[S, T](states, trans, opts)
	if err != nil {
		return nil, err
	}
	km, err := NewKuhnMunkres[S, T](scorer, DefaultAcceptThreshold)
	if err != nil {
		return nil, err
	}
	ww, err := NewWalkinshaw[S, T](scorer, states, trans, DefaultLandmarkThreshold, DefaultLandmarkRatio)
	if err != nil {
		return nil, err
	}

	return &Adaptive[S, T]{km: km, ww: ww}, nil
}

// Compute delegates per the Select policy.
func (m *Adaptive[S, T]) Compute(l, r *glts.Graph[S, T]) (Matching, error) {
	if l == nil || r == nil {
		return nil, ErrNilGraph
	}
	if Select(l.Size(), r.Size()) == KindKuhnMunkres {
		return m.km.Compute(l, r)
	}

	return m.ww.Compute(l, r)
}
