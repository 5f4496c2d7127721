// Package merge fuses two GLTSs along a state matching into a single
// graph.
//
// Matched state pairs collapse into one state carrying the combined
// property; unmatched states of either side carry over unchanged. Every
// transition of both inputs is projected through the state mapping, and
// the two projected multisets are fused with set-combination semantics:
// transitions sharing projected endpoints with combinable properties
// collapse into one, the rest stay distinct. Combined with difference
// combiners (see diffauto) this is how shared structure surfaces as
// UNCHANGED while one-sided structure stays ADDED or REMOVED.
//
// The merged graph is freshly allocated; the inputs are never mutated.
// State ids are assigned deterministically: matched pairs in ascending
// left-id order, then unmatched left states, then unmatched right
// states.
//
// An empty matching is a valid base case and yields the disjoint union
// of both inputs.
package merge
