// Package compare is the orchestration entry point of the diff
// pipeline: score, match, merge, rewrite, folded pairwise over any
// number of input graphs.
//
// A single call wires the whole data flow:
//
//	graphs → Scorer → similarity matrix → Matcher → matching
//	       → Merger → merged graph → Rewriters (fixed point) → result
//
// Options carries the two combiners (required) and optional overrides
// for the scorer, matcher, and rewriter; everything left nil falls back
// to the size-adaptive defaults. Inputs are never mutated: the fold
// works on a clone of the first graph.
//
// N inputs produce N−1 pairwise folds, left to right. A single input
// yields a clone of itself, rewritten if a rewriter is configured.
package compare
