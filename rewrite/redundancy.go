package rewrite

import (
	"github.com/katalvlaran/lvldiff/combine"
	"github.com/katalvlaran/lvldiff/glts"
)

// LocalRedundancy fuses parallel transitions: for every state, its
// outgoing transitions are partitioned into equivalence classes (same
// target, combinable property) and each class of two or more collapses
// into a single combined transition.
//
// Potential: the transition count strictly decreases on every change,
// so a fixed point over this rewriter terminates.
type LocalRedundancy[S, T any] struct {
	trans combine.Combiner[T]
}

// NewLocalRedundancy builds the rewriter from a transition combiner.
func NewLocalRedundancy[S, T any](trans combine.Combiner[T]) *LocalRedundancy[S, T] {
	return &LocalRedundancy[S, T]{trans: trans}
}

// Rewrite fuses every redundant class in one pass over the states.
func (r *LocalRedundancy[S, T]) Rewrite(g *glts.Graph[S, T]) bool {
	changed := false
	for s := 0; s < g.Size(); s++ {
		// Snapshot, then partition: classes keep first-occurrence order.
		outs := g.Outgoing(s)
		var classes [][]glts.Transition[T]
	partition:
		for _, t := range outs {
			for ci, class := range classes {
				head := class[0]
				if head.Target == t.Target && r.trans.AreCombinable(head.Property, t.Property) {
					classes[ci] = append(classes[ci], t)

					continue partition
				}
			}
			classes = append(classes, []glts.Transition[T]{t})
		}

		for _, class := range classes {
			if len(class) < 2 {
				continue
			}
			fused := class[0].Property
			for _, t := range class[1:] {
				fused = r.trans.Combine(fused, t.Property)
			}
			for _, t := range class {
				mustRemove(g, t)
			}
			mustAdd(g, s, fused, class[0].Target)
			changed = true
		}
	}

	return changed
}
