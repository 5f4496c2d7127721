// Package rewrite: the difference-automaton capability surface.
package rewrite

import "github.com/katalvlaran/lvldiff/diffauto"

// DiffOps exposes the difference-automaton structure of otherwise
// opaque property types to the kind-aware rewriters. Callers supply it
// once per property-type pair; algorithms depend on these four
// accessors and nothing else about S and T.
type DiffOps[S, T any] struct {
	// StateKind extracts the provenance of a state.
	StateKind func(S) diffauto.Kind

	// TransitionKind extracts the provenance of a transition.
	TransitionKind func(T) diffauto.Kind

	// IsInitial reports the initial-state marker.
	IsInitial func(S) bool

	// Reclassify returns a copy of the state property carrying the given
	// state kind and initial-arrow kind. The initial-arrow kind is
	// meaningful only for initial states; callers pass Unchanged
	// otherwise.
	Reclassify func(prop S, state, init diffauto.Kind) S
}

// AutomatonOps wires DiffOps for the diffauto property types, the
// concrete difference-automaton specialization shipped with this
// module.
func AutomatonOps[L any]() DiffOps[diffauto.DiffStateProperty, diffauto.DiffProperty[L]] {
	return DiffOps[diffauto.DiffStateProperty, diffauto.DiffProperty[L]]{
		StateKind:      func(p diffauto.DiffStateProperty) diffauto.Kind { return p.StateKind },
		TransitionKind: func(p diffauto.DiffProperty[L]) diffauto.Kind { return p.Kind },
		IsInitial:      func(p diffauto.DiffStateProperty) bool { return p.Initial },
		Reclassify: func(p diffauto.DiffStateProperty, state, init diffauto.Kind) diffauto.DiffStateProperty {
			p.StateKind = state
			if p.Initial {
				p.InitKind = init
			} else {
				p.InitKind = diffauto.Unchanged
			}

			return p
		},
	}
}
