// Package rewrite post-processes a merged GLTS to remove spurious
// differences.
//
// A Rewriter mutates a graph in place and reports whether it changed
// anything. Composite drivers build pipelines: Sequence applies a list
// of rewriters once each, FixedPoint reapplies a rewriter until it
// reports no change. Termination of a fixed point rests on each
// rewriter being monotonically simplifying (strictly decreasing some
// finite potential, such as the transition count or the number of
// one-sided transitions); every rewriter in this package documents its
// potential.
//
// Rewriters:
//
//   - LocalRedundancy — fuses parallel combinable transitions between
//     the same state pair into one.
//   - Entanglement — splits "tangle" states (unchanged states whose
//     incident transitions are all one-sided, in both directions) into
//     an added and a removed copy.
//   - SkipFork / SkipJoin — collapse a fork (or join) of two opposite
//     one-sided transitions around a skippable single-entry/single-exit
//     state, synthesizing a hidden skip transition for the bypassing
//     side.
//
// The difference-kind rewriters stay generic over the property types:
// they read kinds, initial markers, and property surgery through a
// DiffOps capability struct supplied by the caller. AutomatonOps wires
// the struct for the diffauto property types.
//
// Internal invariant violations (a split state keeping incident
// transitions, a rewrite colliding with existing structure it already
// checked for) panic: they are algorithmic defects, not runtime
// conditions to recover from.
package rewrite
