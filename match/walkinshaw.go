// Package match: the landmark-propagation heuristic matcher.
package match

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvldiff/combine"
	"github.com/katalvlaran/lvldiff/glts"
	"github.com/katalvlaran/lvldiff/score"
)

// Walkinshaw is the landmark heuristic: a handful of trusted anchor
// pairs is fixed first (pairs scoring near the global best AND clearly
// ahead of every alternative in their row and column), then the matching
// propagates outward from the anchors along combinable transition
// structure, always fixing the best-scoring frontier pair next.
//
// Not guaranteed optimal, but near-linear in practice and the only
// matcher here that scales to thousands of states.
type Walkinshaw[S, T any] struct {
	scorer    score.Scorer[S, T]
	states    combine.Combiner[S]
	trans     combine.Combiner[T]
	threshold float64 // fraction of the best overall score
	ratio     float64 // required lead over the runner-up
}

// NewWalkinshaw builds the landmark matcher. threshold is the fraction
// of the best overall score a landmark must reach, in [0, 1]; ratio is
// the lead it must hold over the runner-up in its row and column, ≥ 1.
// Returns ErrBadLandmark on out-of-range parameters.
func NewWalkinshaw[S, T any](
	scorer score.Scorer[S, T],
	states combine.Combiner[S],
	trans combine.Combiner[T],
	threshold, ratio float64,
) (*Walkinshaw[S, T], error) {
	if threshold < 0 || threshold > 1 || math.IsNaN(threshold) {
		return nil, ErrBadLandmark
	}
	if ratio < 1 || math.IsNaN(ratio) {
		return nil, ErrBadLandmark
	}

	return &Walkinshaw[S, T]{
		scorer:    scorer,
		states:    states,
		trans:     trans,
		threshold: threshold,
		ratio:     ratio,
	}, nil
}

// candidate is a frontier pair awaiting fixation.
type candidate struct {
	l, r int
	s    float64
}

// Compute scores both graphs, fixes the landmark anchors, then grows
// the matching along transitions. Returns ErrNilGraph on a nil input
// and scorer errors as-is.
func (m *Walkinshaw[S, T]) Compute(l, r *glts.Graph[S, T]) (Matching, error) {
	if l == nil || r == nil {
		return nil, ErrNilGraph
	}

	scores, err := m.scorer.Compute(l, r)
	if err != nil {
		return nil, err
	}
	nl, nr := l.Size(), r.Size()
	if len(scores) != nl {
		return nil, ErrScoreShape
	}
	for i := range scores {
		if len(scores[i]) != nr {
			return nil, ErrScoreShape
		}
	}

	out := Matching{}
	if nl == 0 || nr == 0 {
		return out, nil
	}

	usedL := make([]bool, nl)
	usedR := make([]bool, nr)

	anchors := m.landmarks(scores, nl, nr)
	if len(anchors) == 0 {
		// No pair stands out; seed with the single best compatible pair
		// so propagation has somewhere to start.
		if seed, ok := bestPair(scores, nl, nr); ok {
			anchors = []candidate{seed}
		}
	}
	for _, a := range anchors {
		if usedL[a.l] || usedR[a.r] {
			continue
		}
		out[a.l] = a.r
		usedL[a.l] = true
		usedR[a.r] = true
	}

	// Propagate: repeatedly fix the best-scoring unfixed pair reachable
	// from the matching by one combinable transition step on both sides.
	pool := map[[2]int]float64{}
	for li, ri := range out {
		m.extend(l, r, scores, li, ri, usedL, usedR, pool)
	}
	for len(pool) > 0 {
		bi, bj, bs := -1, -1, math.Inf(-1)
		for p, s := range pool {
			if s > bs || (s == bs && (p[0] < bi || (p[0] == bi && p[1] < bj))) {
				bi, bj, bs = p[0], p[1], s
			}
		}
		delete(pool, [2]int{bi, bj})
		if usedL[bi] || usedR[bj] {
			continue
		}
		out[bi] = bj
		usedL[bi] = true
		usedR[bj] = true
		m.extend(l, r, scores, bi, bj, usedL, usedR, pool)
	}

	return out, nil
}

// landmarks selects the anchor pairs: score within threshold of the
// global best, clearly ahead (by ratio) of every other pair in the same
// row and column. Sorted by score descending, ties toward the smallest
// (left, right) pair.
func (m *Walkinshaw[S, T]) landmarks(scores [][]float64, nl, nr int) []candidate {
	best := math.Inf(-1)
	for i := 0; i < nl; i++ {
		for j := 0; j < nr; j++ {
			if s := scores[i][j]; !score.IsIncompatible(s) && s > best {
				best = s
			}
		}
	}
	if best <= 0 {
		return nil
	}

	var out []candidate
	for i := 0; i < nl; i++ {
		for j := 0; j < nr; j++ {
			s := scores[i][j]
			if score.IsIncompatible(s) || s < m.threshold*best {
				continue
			}
			if m.leads(scores, i, j, nl, nr) {
				out = append(out, candidate{l: i, r: j, s: s})
			}
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].s != out[b].s {
			return out[a].s > out[b].s
		}
		if out[a].l != out[b].l {
			return out[a].l < out[b].l
		}

		return out[a].r < out[b].r
	})

	return out
}

// leads reports whether (i, j) beats every alternative in its row and
// column by the configured ratio.
func (m *Walkinshaw[S, T]) leads(scores [][]float64, i, j, nl, nr int) bool {
	s := scores[i][j]
	runnerUp := 0.0
	for jj := 0; jj < nr; jj++ {
		if jj == j {
			continue
		}
		if v := scores[i][jj]; !score.IsIncompatible(v) && v > runnerUp {
			runnerUp = v
		}
	}
	for ii := 0; ii < nl; ii++ {
		if ii == i {
			continue
		}
		if v := scores[ii][j]; !score.IsIncompatible(v) && v > runnerUp {
			runnerUp = v
		}
	}

	return s >= m.ratio*runnerUp
}

// extend adds to pool every unfixed pair one combinable transition step
// away from the fixed pair (li, ri), in both directions.
func (m *Walkinshaw[S, T]) extend(
	l, r *glts.Graph[S, T],
	scores [][]float64,
	li, ri int,
	usedL, usedR []bool,
	pool map[[2]int]float64,
) {
	add := func(i, j int) {
		if usedL[i] || usedR[j] {
			return
		}
		s := scores[i][j]
		if score.IsIncompatible(s) || s <= 0 {
			return
		}
		if !m.states.AreCombinable(l.StateProperty(i), r.StateProperty(j)) {
			return
		}
		if prev, seen := pool[[2]int{i, j}]; !seen || s > prev {
			pool[[2]int{i, j}] = s
		}
	}

	for _, lt := range l.Outgoing(li) {
		for _, rt := range r.Outgoing(ri) {
			if m.trans.AreCombinable(lt.Property, rt.Property) {
				add(lt.Target, rt.Target)
			}
		}
	}
	for _, lt := range l.Incoming(li) {
		for _, rt := range r.Incoming(ri) {
			if m.trans.AreCombinable(lt.Property, rt.Property) {
				add(lt.Source, rt.Source)
			}
		}
	}
}

// bestPair finds the single best compatible positive-score pair,
// breaking ties toward the smallest (left, right).
func bestPair(scores [][]float64, nl, nr int) (candidate, bool) {
	out, found := candidate{s: 0}, false
	for i := 0; i < nl; i++ {
		for j := 0; j < nr; j++ {
			s := scores[i][j]
			if score.IsIncompatible(s) || s <= 0 {
				continue
			}
			if !found || s > out.s {
				out, found = candidate{l: i, r: j, s: s}, true
			}
		}
	}

	return out, found
}
