// Package score: the Scorer contract, options, defaults, and sentinel
// errors.
package score

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvldiff/glts"
)

// Sentinel errors for scorer configuration and inputs.
var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("score: nil input graph")

	// ErrBadAttenuation indicates an attenuation factor outside [0, 1].
	ErrBadAttenuation = errors.New("score: attenuation must lie in [0,1]")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("score: tolerance must be positive")

	// ErrBadRefinements indicates a negative refinement count.
	ErrBadRefinements = errors.New("score: refinements must be non-negative")
)

// Defaults (single source of truth; empirically chosen, configurable).
const (
	// DefaultAttenuation is the α factor controlling how much distant
	// structure influences a pair's score.
	DefaultAttenuation = 0.6

	// DefaultTolerance is the global scorer's fixed-point convergence
	// threshold on the max score delta per sweep.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps the global scorer's sweeps; the update
	// is a contraction for α < 1, so the cap is a safety net, not a
	// correctness device.
	DefaultMaxIterations = 1000

	// DefaultRefinements is the local scorer's refinement count k.
	DefaultRefinements = 5
)

// Incompatible is the sentinel score (-Inf) for pairs whose state
// properties cannot be combined. Such pairs are never matchable.
var Incompatible = math.Inf(-1)

// IsIncompatible reports whether v is the Incompatible sentinel.
func IsIncompatible(v float64) bool { return math.IsInf(v, -1) }

// Scorer computes an |L|×|R| similarity matrix between the states of
// two graphs. Implementations must be deterministic for identical
// inputs.
type Scorer[S, T any] interface {
	Compute(l, r *glts.Graph[S, T]) ([][]float64, error)
}

// Options configures the scorers.
//
//   - Attenuation  — α ∈ [0,1]; 0 ignores neighbour scores entirely,
//     values near 1 let distant structure dominate.
//   - Tolerance    — global fixed-point convergence threshold.
//   - MaxIterations — global sweep cap.
//   - Refinements  — local refinement count k (k=0: immediate overlap).
type Options struct {
	Attenuation   float64
	Tolerance     float64
	MaxIterations int
	Refinements   int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Attenuation:   DefaultAttenuation,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Refinements:   DefaultRefinements,
	}
}

// validate checks option sanity shared by both scorers.
func (o Options) validate() error {
	if o.Attenuation < 0 || o.Attenuation > 1 || math.IsNaN(o.Attenuation) {
		return ErrBadAttenuation
	}
	if o.Tolerance <= 0 || math.IsNaN(o.Tolerance) {
		return ErrBadTolerance
	}
	if o.Refinements < 0 {
		return ErrBadRefinements
	}

	return nil
}
