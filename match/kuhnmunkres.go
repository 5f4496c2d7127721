// Package match: the optimal assignment matcher.
package match

import (
	"math"

	"github.com/katalvlaran/lvldiff/glts"
	"github.com/katalvlaran/lvldiff/score"
)

// KuhnMunkres reduces state matching to an assignment problem: a padded
// square cost matrix with cost = 1 − similarity (incombinable pairs
// forced to a prohibitive cost), solved by the classical primal-dual
// algorithm. The result is provably optimal in total similarity among
// all matchings respecting combinability; matched pairs scoring below
// the acceptance threshold are discarded afterwards to avoid
// near-arbitrary low-confidence matches.
//
// Complexity: O((|L|+|R|)³).
type KuhnMunkres[S, T any] struct {
	scorer score.Scorer[S, T]
	accept float64
}

// NewKuhnMunkres builds the assignment matcher on top of a scorer.
// accept is the post-hoc acceptance threshold in [0, 1]
// (DefaultAcceptThreshold when in doubt); ErrBadThreshold otherwise.
func NewKuhnMunkres[S, T any](scorer score.Scorer[S, T], accept float64) (*KuhnMunkres[S, T], error) {
	if accept < 0 || accept > 1 || math.IsNaN(accept) {
		return nil, ErrBadThreshold
	}

	return &KuhnMunkres[S, T]{scorer: scorer, accept: accept}, nil
}

// Compute scores both graphs, solves the padded assignment, and keeps
// the real, compatible, above-threshold pairs.
// Returns ErrNilGraph on a nil input and scorer errors as-is.
func (m *KuhnMunkres[S, T]) Compute(l, r *glts.Graph[S, T]) (Matching, error) {
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

	n := max(nl, nr)
	if n == 0 {
		return Matching{}, nil
	}

	// Padding cells cost exactly as much as a zero-similarity pair, so
	// dummies never outbid a real candidate; incombinable cells cost
	// enough that the optimum routes around them whenever possible.
	prohibitive := float64(2*n + 2)
	cost := make([][]float64, n)
	for i := range cost {
		row := make([]float64, n)
		for j := range row {
			switch {
			case i >= nl || j >= nr:
				row[j] = 1
			case score.IsIncompatible(scores[i][j]):
				row[j] = prohibitive
			default:
				row[j] = 1 - clamp01(scores[i][j])
			}
		}
		cost[i] = row
	}

	assign := solveAssignment(cost)

	out := Matching{}
	for i := 0; i < nl; i++ {
		j := assign[i]
		if j >= nr {
			continue // assigned to padding: unmatched
		}
		s := scores[i][j]
		if score.IsIncompatible(s) || s < m.accept {
			continue
		}
		out[i] = j
	}

	return out, nil
}

// solveAssignment runs the Kuhn–Munkres primal-dual algorithm on a
// square cost matrix and returns the column assigned to each row.
//
// The implementation maintains row/column potentials (the equivalent of
// the textbook row/column reductions) and, for each row in turn, grows
// a shortest augmenting path over tight (zero reduced cost) cells,
// relaxing potentials by the minimum uncovered reduced cost — the
// minimum-line-cover step — until the path reaches a free column. Each
// row augments exactly once, so termination is guaranteed.
// Complexity: O(n³). Deterministic: column ties break toward the
// smallest index.
func solveAssignment(cost [][]float64) []int {
	n := len(cost)

	// 1-indexed working arrays; index 0 is the virtual start column.
	u := make([]float64, n+1) // row potentials
	v := make([]float64, n+1) // column potentials
	p := make([]int, n+1)     // p[j]: row currently assigned to column j
	way := make([]int, n+1)   // back-pointers along the alternating path

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}

		// Grow the alternating tree until a free column is reached.
		for {
			used[j0] = true
			i0 := p[j0]
			delta := math.Inf(1)
			j1 := 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Flip the alternating path to augment the assignment.
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assign := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] > 0 {
			assign[p[j]-1] = j - 1
		}
	}

	return assign
}

// clamp01 clips v into [0, 1].
func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
