// Package glts defines the generalized labeled transition system (GLTS)
// model used by every lvldiff pipeline stage: a mutable directed
// multigraph with one property per state and per transition.
//
// What & Why?
//
//	A GLTS is the least structure the diff algorithms need: states
//	identified by dense integer ids, transitions as (source, property,
//	target) triples, and O(1) incoming/outgoing adjacency. Properties are
//	opaque payloads; all semantic decisions (when two properties may
//	fuse, what the fusion is) live in package combine.
//
// Identity & invariants:
//
//   - State ids are always a permutation of [0, Size()). RemoveState
//     keeps ids dense by moving the last state into the freed slot
//     (swap-remove) instead of shifting every later id.
//   - Every transition's endpoints exist in the owning graph.
//   - A transition triple (source, property, target) is unique; parallel
//     transitions must differ in their property value.
//
// Concurrency:
//
//	A Graph is owned by a single goroutine for the duration of any
//	algorithm run over it. The diff pipeline is synchronous and CPU-bound
//	by design; callers must not mutate a graph concurrently with an
//	in-flight computation over it.
//
// See compare/ for the end-to-end pipeline consuming this model.
package glts
