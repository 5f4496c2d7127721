// Package rewrite: the Rewriter contract, composite drivers, and the
// operator types the pattern rewriters depend on.
package rewrite

import "github.com/katalvlaran/lvldiff/glts"

// Rewriter mutates a graph in place and reports whether anything
// changed. Implementations must be monotonically simplifying so that
// FixedPoint terminates.
type Rewriter[S, T any] interface {
	Rewrite(g *glts.Graph[S, T]) bool
}

// Hider maps a property to its canonical hidden (tau) form, used when
// synthesizing skip transitions.
type Hider[T any] func(T) T

// Inclusion is a reflexive, antisymmetric, transitive "is subsumed by"
// relation over properties: Inclusion(a, b) reports that a claims no
// more than b does.
type Inclusion[T any] func(a, b T) bool

// Sequence applies each rewriter once, in order, and reports whether
// any of them changed the graph.
type Sequence[S, T any] []Rewriter[S, T]

// NewSequence builds a sequential composite.
func NewSequence[S, T any](rs ...Rewriter[S, T]) Sequence[S, T] { return Sequence[S, T](rs) }

// Rewrite runs every rewriter once. Later rewriters see the mutations
// of earlier ones.
func (s Sequence[S, T]) Rewrite(g *glts.Graph[S, T]) bool {
	changed := false
	for _, r := range s {
		if r.Rewrite(g) {
			changed = true
		}
	}

	return changed
}

// FixedPoint reapplies the inner rewriter until it reports no change.
type FixedPoint[S, T any] struct {
	inner Rewriter[S, T]
}

// NewFixedPoint wraps inner into a run-to-fixed-point driver.
func NewFixedPoint[S, T any](inner Rewriter[S, T]) FixedPoint[S, T] {
	return FixedPoint[S, T]{inner: inner}
}

// Rewrite loops until the inner rewriter stabilizes and reports whether
// any iteration changed the graph. Non-termination here means the inner
// rewriter is not simplifying, an implementation defect.
func (f FixedPoint[S, T]) Rewrite(g *glts.Graph[S, T]) bool {
	changed := false
	for f.inner.Rewrite(g) {
		changed = true
	}

	return changed
}

// mustRemove deletes a transition known to exist.
func mustRemove[S, T any](g *glts.Graph[S, T], t glts.Transition[T]) {
	if err := g.RemoveTransition(t); err != nil {
		panic("rewrite: removing a transition that was just observed: " + err.Error())
	}
}

// mustAdd inserts a transition whose absence the caller has verified.
func mustAdd[S, T any](g *glts.Graph[S, T], src int, prop T, dst int) {
	if err := g.AddTransition(src, prop, dst); err != nil {
		panic("rewrite: inserting a transition that was checked to be free: " + err.Error())
	}
}
