// Package score: the shared Walkinshaw similarity update.
//
// Both scorers refine a score matrix with the same sweep: a pair's new
// score averages a forward term (outgoing-transition overlap, looking at
// successor-pair scores) and a backward term (incoming overlap, looking
// at predecessor pairs), each attenuated by α. The global scorer sweeps
// to a fixed point, the local scorer a bounded number of rounds.
package score

import (
	"github.com/katalvlaran/lvldiff/combine"
	"github.com/katalvlaran/lvldiff/glts"
)

// engine carries the combiners and attenuation shared by one scoring run.
type engine[S, T any] struct {
	states combine.Combiner[S]
	trans  combine.Combiner[T]
	alpha  float64
}

// initMatrix allocates the |L|×|R| score matrix with 0 for combinable
// pairs and the Incompatible sentinel for the rest.
func (e *engine[S, T]) initMatrix(l, r *glts.Graph[S, T]) [][]float64 {
	scores := make([][]float64, l.Size())
	for i := range scores {
		row := make([]float64, r.Size())
		pi := l.StateProperty(i)
		for j := range row {
			if !e.states.AreCombinable(pi, r.StateProperty(j)) {
				row[j] = Incompatible
			}
		}
		scores[i] = row
	}

	return scores
}

// sweep writes one refinement of prev into next and returns the largest
// absolute score change. Incompatible cells stay Incompatible. Iteration
// order is ascending (i, j), keeping runs bit-for-bit reproducible.
// Complexity: O(Σ_{i,j} outdeg(i)·outdeg(j) + indeg(i)·indeg(j)).
func (e *engine[S, T]) sweep(l, r *glts.Graph[S, T], prev, next [][]float64) float64 {
	var maxDelta float64
	for i := 0; i < l.Size(); i++ {
		for j := 0; j < r.Size(); j++ {
			if IsIncompatible(prev[i][j]) {
				next[i][j] = Incompatible

				continue
			}
			fwd := e.half(l.Outgoing(i), r.Outgoing(j), prev, true)
			bwd := e.half(l.Incoming(i), r.Incoming(j), prev, false)
			s := (fwd + bwd) / 2
			next[i][j] = s
			if d := abs(s - prev[i][j]); d > maxDelta {
				maxDelta = d
			}
		}
	}

	return maxDelta
}

// half scores one direction of a pair from the transition lists of both
// members. forward selects successor pairs (targets); otherwise
// predecessor pairs (sources) feed the attenuated neighbour term.
//
// The fraction follows Walkinshaw: each combinable transition pair
// contributes 1 + α·score(neighbour pair); the denominator counts the
// transitions of both sides not covered by the overlap. Two dead ends
// agree perfectly (1); a dead end against a non-empty side disagrees
// entirely (0).
func (e *engine[S, T]) half(ta, tb []glts.Transition[T], prev [][]float64, forward bool) float64 {
	na, nb := len(ta), len(tb)
	switch {
	case na == 0 && nb == 0:
		return 1
	case na == 0 || nb == 0:
		return 0
	}

	var (
		num float64
		cnt int
	)
	for _, a := range ta {
		for _, b := range tb {
			if !e.trans.AreCombinable(a.Property, b.Property) {
				continue
			}
			cnt++
			var s float64
			if forward {
				s = prev[a.Target][b.Target]
			} else {
				s = prev[a.Source][b.Source]
			}
			num++
			if s > 0 {
				num += e.alpha * s
			}
		}
	}
	if cnt == 0 {
		return 0
	}

	// Multigraphs can over-count the overlap; cap the coverage term so
	// the denominator stays positive.
	eff := cnt
	if m := min(na, nb); eff > m {
		eff = m
	}
	s := num / float64(2*(na+nb-eff))
	if s > 1 {
		s = 1
	}

	return s
}

// abs returns the absolute value of a float64.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
