package rewrite

import (
	"github.com/katalvlaran/lvldiff/diffauto"
	"github.com/katalvlaran/lvldiff/glts"
)

// Entanglement splits tangle states. A tangle is an unchanged state
// with no unchanged incident transition but at least one added and at
// least one removed incident transition: the merger has glued together
// two states that share nothing, producing a crossing point that exists
// in neither input. The split produces an added and a removed copy of
// the state, relocates every incident transition to the copy matching
// its kind, and deletes the original.
//
// Potential: every change removes one tangle and creates none (each
// copy carries one-sided incident structure agreeing with its own
// kind), so a fixed point terminates.
type Entanglement[S, T any] struct {
	ops DiffOps[S, T]
}

// NewEntanglement builds the rewriter from the difference capabilities.
func NewEntanglement[S, T any](ops DiffOps[S, T]) *Entanglement[S, T] {
	return &Entanglement[S, T]{ops: ops}
}

// Rewrite splits tangles until a full scan finds none, reporting
// whether any split happened. Splitting renumbers state ids, so each
// split restarts the scan.
func (r *Entanglement[S, T]) Rewrite(g *glts.Graph[S, T]) bool {
	changed := false
	for {
		s := r.findTangle(g)
		if s < 0 {
			return changed
		}
		r.split(g, s)
		changed = true
	}
}

// findTangle returns the smallest tangle state id, or -1.
func (r *Entanglement[S, T]) findTangle(g *glts.Graph[S, T]) int {
	for s := 0; s < g.Size(); s++ {
		if r.ops.StateKind(g.StateProperty(s)) != diffauto.Unchanged {
			continue
		}
		added, removed, unchanged := 0, 0, 0
		count := func(ts []glts.Transition[T]) {
			for _, t := range ts {
				switch r.ops.TransitionKind(t.Property) {
				case diffauto.Added:
					added++
				case diffauto.Removed:
					removed++
				default:
					unchanged++
				}
			}
		}
		count(g.Outgoing(s))
		count(g.Incoming(s))
		if unchanged == 0 && added > 0 && removed > 0 {
			return s
		}
	}

	return -1
}

// split relocates the incident transitions of tangle s onto a fresh
// added copy and a fresh removed copy, then removes s. The original
// must end up with zero incident transitions before removal; anything
// else means the tangle test and the relocation disagree, a defect.
func (r *Entanglement[S, T]) split(g *glts.Graph[S, T], s int) {
	prop := g.StateProperty(s)
	initKind := func(k diffauto.Kind) diffauto.Kind {
		if r.ops.IsInitial(prop) {
			return k
		}

		return diffauto.Unchanged
	}
	copies := map[diffauto.Kind]int{
		diffauto.Added:   g.AddState(r.ops.Reclassify(prop, diffauto.Added, initKind(diffauto.Added))),
		diffauto.Removed: g.AddState(r.ops.Reclassify(prop, diffauto.Removed, initKind(diffauto.Removed))),
	}

	relocate := func(t glts.Transition[T]) int {
		to, ok := copies[r.ops.TransitionKind(t.Property)]
		if !ok {
			panic("rewrite: unchanged transition incident to a tangle")
		}

		return to
	}
	for _, t := range g.Outgoing(s) {
		to := relocate(t)
		dst := t.Target
		if dst == s {
			dst = to
		}
		mustRemove(g, t)
		mustAdd(g, to, t.Property, dst)
	}
	for _, t := range g.Incoming(s) {
		to := relocate(t)
		mustRemove(g, t)
		mustAdd(g, t.Source, t.Property, to)
	}

	if g.CountOutgoing(s) != 0 || g.CountIncoming(s) != 0 {
		panic("rewrite: tangle state keeps incident transitions after split")
	}
	if err := g.RemoveState(s); err != nil {
		panic("rewrite: removing split tangle state: " + err.Error())
	}
}
