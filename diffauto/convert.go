// Package diffauto: plain↔diff automaton conversions.
package diffauto

import "github.com/katalvlaran/lvldiff/glts"

// ToDiff tags every state and transition of a plain automaton with the
// given kind, producing a difference automaton. State ids are preserved.
// Complexity: O(V + E).
func ToDiff[L any](g *glts.Graph[StateProperty, L], kind Kind) *glts.Graph[DiffStateProperty, DiffProperty[L]] {
	out := glts.New[DiffStateProperty, DiffProperty[L]]()
	for id := 0; id < g.Size(); id++ {
		p := g.StateProperty(id)
		dp := DiffStateProperty{
			Initial:   p.Initial,
			Accepting: p.Accepting,
			StateKind: kind,
		}
		if p.Initial {
			dp.InitKind = kind
		}
		out.AddState(dp)
	}
	for _, t := range g.Transitions() {
		// Endpoints exist by the source graph's invariant; the triple is
		// unique there, so AddTransition cannot fail.
		_ = out.AddTransition(t.Source, DiffProperty[L]{Label: t.Property, Kind: kind}, t.Target)
	}

	return out
}

// FromDiff erases all difference tags, recovering a plain automaton.
// Distinct diff transitions that collapse onto the same label after tag
// erasure are deduplicated. State ids are preserved.
// Complexity: O(V + E·outdeg).
func FromDiff[L any](g *glts.Graph[DiffStateProperty, DiffProperty[L]]) *glts.Graph[StateProperty, L] {
	out := glts.New[StateProperty, L]()
	for id := 0; id < g.Size(); id++ {
		p := g.StateProperty(id)
		out.AddState(StateProperty{Initial: p.Initial, Accepting: p.Accepting})
	}
	for _, t := range g.Transitions() {
		if out.HasTransition(t.Source, t.Property.Label, t.Target) {
			continue
		}
		_ = out.AddTransition(t.Source, t.Property.Label, t.Target)
	}

	return out
}
