// Package match: the Matching type, the Matcher contract, defaults, and
// sentinel errors.
package match

import (
	"errors"
	"sort"

	"github.com/katalvlaran/lvldiff/glts"
)

// Sentinel errors for matcher configuration and inputs.
var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("match: nil input graph")

	// ErrBadThreshold indicates an acceptance threshold outside [0, 1].
	ErrBadThreshold = errors.New("match: acceptance threshold must lie in [0,1]")

	// ErrBadLandmark indicates an invalid landmark threshold (outside
	// [0, 1]) or ratio (< 1).
	ErrBadLandmark = errors.New("match: invalid landmark threshold or ratio")

	// ErrScoreShape indicates a similarity matrix whose dimensions do
	// not match the input graphs.
	ErrScoreShape = errors.New("match: similarity matrix shape mismatch")
)

// Defaults (empirically chosen, configurable; not load-bearing
// correctness constants).
const (
	// DefaultAcceptThreshold is the minimum similarity a Kuhn–Munkres
	// assignment must reach to survive into the matching.
	DefaultAcceptThreshold = 0.1

	// DefaultLandmarkThreshold is the fraction of the best overall score
	// a pair must reach to qualify as a landmark anchor.
	DefaultLandmarkThreshold = 0.25

	// DefaultLandmarkRatio is the lead a landmark must hold over its
	// runner-up candidate (best ≥ ratio · second-best).
	DefaultLandmarkRatio = 1.5
)

// Matching is a partial injective map from L-state ids to R-state ids.
type Matching map[int]int

// Pairs returns the matched (left, right) pairs in ascending left-id
// order — the stable iteration order used by the merger.
func (m Matching) Pairs() [][2]int {
	out := make([][2]int, 0, len(m))
	for l, r := range m {
		out = append(out, [2]int{l, r})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// Injective reports whether no right id is used twice.
func (m Matching) Injective() bool {
	seen := make(map[int]struct{}, len(m))
	for _, r := range m {
		if _, dup := seen[r]; dup {
			return false
		}
		seen[r] = struct{}{}
	}

	return true
}

// Matcher computes a matching between the states of two graphs. Every
// returned pair must have combinable state properties; a violation is a
// defect in the matcher, never a recoverable runtime condition.
type Matcher[S, T any] interface {
	Compute(l, r *glts.Graph[S, T]) (Matching, error)
}
