// Package diffauto: plain-automaton state properties and combiners.
package diffauto

import "github.com/katalvlaran/lvldiff/combine"

// StateProperty is the state payload of a plain automaton: whether the
// state is an initial state and whether it accepts.
type StateProperty struct {
	Initial   bool
	Accepting bool
}

// IsInitial reports the initial-state marker.
func (p StateProperty) IsInitial() bool { return p.Initial }

// IsAccepting reports the accepting-state marker.
func (p StateProperty) IsAccepting() bool { return p.Accepting }

// StateCombiner returns the canonical combiner for plain automaton
// states: combinable iff both flags match exactly.
func StateCombiner() combine.Combiner[StateProperty] {
	return combine.NewEquality[StateProperty]()
}

// LabelCombiner returns the canonical combiner for plain transition
// labels: combinable iff equal.
func LabelCombiner[L comparable]() combine.Combiner[L] {
	return combine.NewEquality[L]()
}

// GraphCombiners bundles the canonical state and transition combiners
// for plain automata with labels of type L.
func GraphCombiners[L comparable]() (combine.Combiner[StateProperty], combine.Combiner[L]) {
	return StateCombiner(), LabelCombiner[L]()
}

// DiffCombiners bundles the canonical state and transition combiners
// for difference automata with labels of type L.
func DiffCombiners[L comparable]() (combine.Combiner[DiffStateProperty], combine.Combiner[DiffProperty[L]]) {
	return NewDiffStateCombiner(), NewDiffPropertyCombiner(LabelCombiner[L]())
}
