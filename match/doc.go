// Package match computes partial injective state correspondences
// between two GLTSs.
//
// A Matching maps L-state ids to R-state ids: no state is used twice,
// every mapped pair has combinable state properties, unmatched states
// are simply absent. Three algorithms cover the quality/cost spectrum:
//
//   - BruteForce — exhaustive backtracking maximizing the number of
//     transitions that become combinable after merging; exponential;
//     the correctness reference for small inputs (a few dozen states at
//     most).
//   - KuhnMunkres — the classical assignment algorithm on a padded
//     square cost matrix (cost = 1 − similarity); O((|L|+|R|)³) and
//     provably optimal in total similarity; pairs scoring below the
//     acceptance threshold are discarded.
//   - Walkinshaw — the landmark heuristic: trusted high-scoring anchor
//     pairs are fixed first, then matches propagate outward along
//     combinable transition structure; near-linear in practice, not
//     guaranteed optimal, scales to thousands of states.
//
// Select is the explicit size policy choosing between Kuhn–Munkres and
// Walkinshaw; Adaptive wraps it into a Matcher.
//
// All matchers are deterministic: score ties break toward the smallest
// (left id, right id) pair.
package match
