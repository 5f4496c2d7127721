// Package lvldiff compares generalized labeled transition systems
// (GLTSs) — directed multigraphs with arbitrary properties on states
// and transitions — and merges them into a single graph annotated with
// how every state and transition relates across the inputs.
//
// 🚀 What is lvldiff?
//
//	A modern, zero-dependency library that generalizes the classical
//	LTSdiff algorithm to arbitrary property types:
//		• Combiner algebra: pluggable rules for when two properties fuse
//		• Similarity scoring: global fixed-point & local bounded refinement
//		• State matching: brute-force, Kuhn–Munkres, Walkinshaw landmarks
//		• Merging: fuse two graphs along a matching, combining properties
//		• Rewriting: post-process merges to erase spurious differences
//
// ✨ Why choose lvldiff?
//
//   - Deterministic – identical inputs always produce identical output
//   - Generic – properties are arbitrary Go types, combiners decide fusion
//   - Pure Go – no cgo, no hidden deps
//   - Scalable – size-adaptive policies trade optimality for speed
//
// Under the hood, everything is organized per concern:
//
//	glts/     — the Graph[S,T] multigraph model with dense state ids
//	combine/  — the Combiner[T] algebra (equality, optional, pair, set, …)
//	score/    — state-pair similarity scorers
//	match/    — state matchers consuming scores and combiners
//	merge/    — the two-graph merger
//	rewrite/  — merged-graph simplification passes
//	diffauto/ — the automaton / difference-automaton specialization
//	compare/  — the one-call pipeline folding N graphs into one diff
//
// Data flow:
//
//	L, R → Scorer → similarity matrix → Matcher → matching
//	     → Merger → merged graph → Rewriters (fixed point) → result
//
// Dive into compare/ for the single-call entry point, or wire the
// pipeline stages yourself for full control.
//
//	go get github.com/katalvlaran/lvldiff
package lvldiff
