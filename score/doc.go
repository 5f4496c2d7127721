// Package score computes state-pair similarity between two GLTSs.
//
// A scorer produces an |L|×|R| matrix of similarity scores guiding the
// matchers in package match. Finite scores lie in [0, 1]; pairs whose
// state properties are incombinable receive the Incompatible sentinel
// (-Inf) and can never be matched.
//
// Two scorers implement the Walkinshaw similarity notion:
//
//   - Global: a pair's score depends, transitively, on the score of
//     every other pair — the fixed point of a linear system, found by
//     power-style iteration attenuated by α.
//   - Local: the same update applied only k+1 bounded refinement rounds
//     (k=0 scores immediate transition overlap only). Converges to the
//     global scorer as k→∞ at a fraction of the cost.
//
// Select is the explicit size policy choosing between them, and
// Adaptive wraps it into a Scorer.
//
// Scores are deterministic for identical inputs; iteration order is
// fixed (ascending state ids), so ties reproduce exactly. Tie-breaking
// itself is the matchers' concern.
package score
