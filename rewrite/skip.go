package rewrite

import (
	"github.com/katalvlaran/lvldiff/combine"
	"github.com/katalvlaran/lvldiff/diffauto"
	"github.com/katalvlaran/lvldiff/glts"
)

// SkipFork collapses the fork pattern: a state with two combinable
// outgoing transitions of opposite one-sided kinds, where one side goes
// straight to a far state and the other routes through an intermediate
// state that provably only skips ahead to the same far state.
//
// The pattern holds for a direct transition d: s→far and a through
// transition t: s→inner when all of:
//
//  1. s, far, and inner are pairwise distinct, d and t carry combinable
//     properties, and their kinds are Added and Removed in some order;
//  2. inner is not an initial state;
//  3. t is inner's only incoming transition (single entry);
//  4. inner's only outgoing transition leads to far and carries the
//     through side's kind (single exit);
//  5. the direct property is subsumed by the fused fork property under
//     the Inclusion relation, so retargeting loses nothing.
//
// The rewrite fuses d and t into one transition s→inner and synthesizes
// a hidden skip transition inner→far carrying the direct side's
// provenance: both inputs now share the fork, and the bypass survives
// as an explicit tau step. The accepted language is unchanged.
//
// Potential: each change turns two one-sided transitions into one
// unchanged and one one-sided transition, so the one-sided transition
// count strictly decreases and a fixed point terminates.
type SkipFork[S, T any] struct {
	trans    combine.Combiner[T]
	ops      DiffOps[S, T]
	hide     Hider[T]
	included Inclusion[T]
}

// NewSkipFork builds the fork rewriter from its four operators.
func NewSkipFork[S, T any](
	trans combine.Combiner[T],
	ops DiffOps[S, T],
	hide Hider[T],
	included Inclusion[T],
) *SkipFork[S, T] {
	return &SkipFork[S, T]{trans: trans, ops: ops, hide: hide, included: included}
}

// Rewrite applies the first fork pattern found and reports whether one
// was applied. Repeated application happens through the fixed-point
// driver; one mutation per call keeps every pattern check on a fresh
// snapshot.
func (r *SkipFork[S, T]) Rewrite(g *glts.Graph[S, T]) bool {
	for s := 0; s < g.Size(); s++ {
		outs := g.Outgoing(s)
		for i, d := range outs {
			for j, t := range outs {
				if i == j {
					continue
				}
				if !r.matches(g, s, d, t) {
					continue
				}
				combined := r.trans.Combine(d.Property, t.Property)
				skip := r.hide(d.Property)
				if g.HasTransition(s, combined, t.Target) || g.HasTransition(t.Target, skip, d.Target) {
					continue // rewrite output already present, nothing to simplify here
				}
				mustRemove(g, d)
				mustRemove(g, t)
				mustAdd(g, s, combined, t.Target)
				mustAdd(g, t.Target, skip, d.Target)

				return true
			}
		}
	}

	return false
}

// matches checks the five fork conditions for direct d and through t
// leaving state s.
func (r *SkipFork[S, T]) matches(g *glts.Graph[S, T], s int, d, t glts.Transition[T]) bool {
	far, inner := d.Target, t.Target
	if far == inner || far == s || inner == s {
		return false
	}
	if !r.trans.AreCombinable(d.Property, t.Property) {
		return false
	}
	kd, kt := r.ops.TransitionKind(d.Property), r.ops.TransitionKind(t.Property)
	if kd == diffauto.Unchanged || kt == diffauto.Unchanged || kd == kt {
		return false
	}
	if r.ops.IsInitial(g.StateProperty(inner)) {
		return false
	}
	if g.CountIncoming(inner) != 1 {
		return false
	}
	if g.CountOutgoing(inner) != 1 {
		return false
	}
	exit := g.Outgoing(inner)[0]
	if exit.Target != far || r.ops.TransitionKind(exit.Property) != kt {
		return false
	}

	return r.included(d.Property, r.trans.Combine(d.Property, t.Property))
}

// SkipJoin is the mirror of SkipFork on incoming transitions: two
// combinable transitions of opposite one-sided kinds entering the same
// state, one direct from a far state, one through an intermediate state
// that is only reachable from that far state (single entry from far,
// single exit, non-initial). The rewrite fuses both onto the through
// path and synthesizes a hidden skip transition far→inner for the
// direct side. Same potential argument as SkipFork.
type SkipJoin[S, T any] struct {
	trans    combine.Combiner[T]
	ops      DiffOps[S, T]
	hide     Hider[T]
	included Inclusion[T]
}

// NewSkipJoin builds the join rewriter from its four operators.
func NewSkipJoin[S, T any](
	trans combine.Combiner[T],
	ops DiffOps[S, T],
	hide Hider[T],
	included Inclusion[T],
) *SkipJoin[S, T] {
	return &SkipJoin[S, T]{trans: trans, ops: ops, hide: hide, included: included}
}

// Rewrite applies the first join pattern found; one mutation per call,
// like SkipFork.
func (r *SkipJoin[S, T]) Rewrite(g *glts.Graph[S, T]) bool {
	for s := 0; s < g.Size(); s++ {
		ins := g.Incoming(s)
		for i, d := range ins {
			for j, t := range ins {
				if i == j {
					continue
				}
				if !r.matches(g, s, d, t) {
					continue
				}
				combined := r.trans.Combine(d.Property, t.Property)
				skip := r.hide(d.Property)
				if g.HasTransition(t.Source, combined, s) || g.HasTransition(d.Source, skip, t.Source) {
					continue
				}
				mustRemove(g, d)
				mustRemove(g, t)
				mustAdd(g, t.Source, combined, s)
				mustAdd(g, d.Source, skip, t.Source)

				return true
			}
		}
	}

	return false
}

// matches checks the mirrored five conditions for direct d and through
// t entering state s.
func (r *SkipJoin[S, T]) matches(g *glts.Graph[S, T], s int, d, t glts.Transition[T]) bool {
	far, inner := d.Source, t.Source
	if far == inner || far == s || inner == s {
		return false
	}
	if !r.trans.AreCombinable(d.Property, t.Property) {
		return false
	}
	kd, kt := r.ops.TransitionKind(d.Property), r.ops.TransitionKind(t.Property)
	if kd == diffauto.Unchanged || kt == diffauto.Unchanged || kd == kt {
		return false
	}
	if r.ops.IsInitial(g.StateProperty(inner)) {
		return false
	}
	if g.CountOutgoing(inner) != 1 {
		return false
	}
	if g.CountIncoming(inner) != 1 {
		return false
	}
	entry := g.Incoming(inner)[0]
	if entry.Source != far || r.ops.TransitionKind(entry.Property) != kt {
		return false
	}

	return r.included(d.Property, r.trans.Combine(d.Property, t.Property))
}
