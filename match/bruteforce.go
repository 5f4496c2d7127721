// Package match: the exhaustive reference matcher.
package match

import (
	"github.com/katalvlaran/lvldiff/combine"
	"github.com/katalvlaran/lvldiff/glts"
)

// BruteForce explores every candidate matching by backtracking over
// state-pair choices and keeps one maximizing the number of transitions
// that become combinable after merging (equivalently, minimizing
// post-merge differences).
//
// Exponential in the smaller state count; intended as the correctness
// reference for small inputs — impractical beyond a few dozen states.
type BruteForce[S, T any] struct {
	states combine.Combiner[S]
	trans  combine.Combiner[T]
}

// NewBruteForce builds the exhaustive matcher from the state and
// transition combiners.
func NewBruteForce[S, T any](states combine.Combiner[S], trans combine.Combiner[T]) *BruteForce[S, T] {
	return &BruteForce[S, T]{states: states, trans: trans}
}

// Compute returns a matching maximizing the fusible-transition count.
// Ties keep the first maximum in deterministic search order (left ids
// ascending, right candidates ascending, assignment before skip), so
// identical inputs always produce the identical matching.
// Returns ErrNilGraph on a nil input.
// Complexity: O((nr+1)^nl · E) worst case.
func (m *BruteForce[S, T]) Compute(l, r *glts.Graph[S, T]) (Matching, error) {
	if l == nil || r == nil {
		return nil, ErrNilGraph
	}

	// Precompute per-left-state candidate lists (combinable pairs only).
	candidates := make([][]int, l.Size())
	for i := 0; i < l.Size(); i++ {
		pi := l.StateProperty(i)
		for j := 0; j < r.Size(); j++ {
			if m.states.AreCombinable(pi, r.StateProperty(j)) {
				candidates[i] = append(candidates[i], j)
			}
		}
	}

	var (
		current  = Matching{}
		best     = Matching{}
		bestGain = -1
		usedR    = make([]bool, r.Size())
		explore  func(i int)
	)
	explore = func(i int) {
		if i == l.Size() {
			if gain := m.fusible(l, r, current); gain > bestGain {
				bestGain = gain
				best = Matching{}
				for k, v := range current {
					best[k] = v
				}
			}

			return
		}
		for _, j := range candidates[i] {
			if usedR[j] {
				continue
			}
			current[i] = j
			usedR[j] = true
			explore(i + 1)
			usedR[j] = false
			delete(current, i)
		}
		// Leaving i unmatched is always a legal branch.
		explore(i + 1)
	}
	explore(0)

	return best, nil
}

// fusible counts the transitions of l that fuse with a distinct
// transition of r once both endpoints are matched: per matched source,
// each l-transition greedily claims the first unclaimed combinable
// r-transition between the mapped endpoints.
func (m *BruteForce[S, T]) fusible(l, r *glts.Graph[S, T], matching Matching) int {
	total := 0
	for u, mu := range matching {
		rOut := r.Outgoing(mu)
		claimed := make([]bool, len(rOut))
		for _, t := range l.Outgoing(u) {
			mv, ok := matching[t.Target]
			if !ok {
				continue
			}
			for k, rt := range rOut {
				if claimed[k] || rt.Target != mv {
					continue
				}
				if m.trans.AreCombinable(t.Property, rt.Property) {
					claimed[k] = true
					total++

					break
				}
			}
		}
	}

	return total
}
