// Package diffauto: difference-automaton property types, their
// combiners, the nesting invariant, hiders, and inclusion relations.
package diffauto

import (
	"errors"

	"github.com/katalvlaran/lvldiff/combine"
)

// ErrKindNesting indicates a DiffStateProperty whose initial-arrow kind
// disagrees with the state kind (see Validate).
var ErrKindNesting = errors.New("diffauto: initial-arrow kind disagrees with state kind")

// DiffStateProperty is the state payload of a difference automaton:
// the plain flags plus the state's own kind and, for initial states,
// the kind of the initial arrow.
type DiffStateProperty struct {
	Initial   bool
	Accepting bool

	// StateKind is the provenance of the state itself.
	StateKind Kind

	// InitKind is the provenance of the initial arrow. Meaningful only
	// when Initial is set; must be Unchanged otherwise.
	InitKind Kind
}

// IsInitial reports the initial-state marker.
func (p DiffStateProperty) IsInitial() bool { return p.Initial }

// IsAccepting reports the accepting-state marker.
func (p DiffStateProperty) IsAccepting() bool { return p.Accepting }

// Validate enforces the kind-nesting invariant: an Added or Removed
// state cannot carry an initial arrow of a different kind (a state that
// exists on one side only cannot have an initial arrow that exists on
// both sides or on the other side), and a non-initial state carries the
// zero InitKind.
func (p DiffStateProperty) Validate() error {
	if !p.Initial {
		if p.InitKind != Unchanged {
			return ErrKindNesting
		}

		return nil
	}
	if p.StateKind != Unchanged && p.InitKind != p.StateKind {
		return ErrKindNesting
	}

	return nil
}

// DiffStateCombiner fuses difference-automaton states: combinable iff
// the initial and accepting flags match exactly; the kinds always fuse
// through the kind algebra.
type DiffStateCombiner struct{}

// NewDiffStateCombiner returns the difference-automaton state combiner.
func NewDiffStateCombiner() DiffStateCombiner { return DiffStateCombiner{} }

// AreCombinable reports whether both flag pairs match.
func (DiffStateCombiner) AreCombinable(a, b DiffStateProperty) bool {
	return a.Initial == b.Initial && a.Accepting == b.Accepting
}

// Combine fuses two states; panics on mismatched flags.
func (c DiffStateCombiner) Combine(a, b DiffStateProperty) DiffStateProperty {
	if !c.AreCombinable(a, b) {
		panic("diffauto: Combine called on incombinable state properties")
	}

	out := DiffStateProperty{
		Initial:   a.Initial,
		Accepting: a.Accepting,
		StateKind: CombineKinds(a.StateKind, b.StateKind),
	}
	if out.Initial {
		out.InitKind = CombineKinds(a.InitKind, b.InitKind)
	}

	return out
}

// DiffProperty is the transition payload of a difference automaton: a
// label plus the transition's kind.
type DiffProperty[L any] struct {
	Label L
	Kind  Kind
}

// DiffPropertyCombiner fuses diff transition properties: combinable iff
// the labels are combinable under the inner label combiner; labels fuse
// through it and kinds through the kind algebra.
type DiffPropertyCombiner[L any] struct {
	label combine.Combiner[L]
}

// NewDiffPropertyCombiner wraps a label combiner into one over
// DiffProperty.
func NewDiffPropertyCombiner[L any](label combine.Combiner[L]) DiffPropertyCombiner[L] {
	return DiffPropertyCombiner[L]{label: label}
}

// AreCombinable reports label combinability.
func (c DiffPropertyCombiner[L]) AreCombinable(a, b DiffProperty[L]) bool {
	return c.label.AreCombinable(a.Label, b.Label)
}

// Combine fuses label and kind. Panics on incombinable labels.
func (c DiffPropertyCombiner[L]) Combine(a, b DiffProperty[L]) DiffProperty[L] {
	return DiffProperty[L]{
		Label: c.label.Combine(a.Label, b.Label),
		Kind:  CombineKinds(a.Kind, b.Kind),
	}
}

// PropertyHider returns a hider for DiffProperty: it collapses the label
// to the canonical hidden (tau) label while preserving the kind. Skip
// transitions synthesized by the rewriters use it.
func PropertyHider[L any](tau L) func(DiffProperty[L]) DiffProperty[L] {
	return func(p DiffProperty[L]) DiffProperty[L] {
		return DiffProperty[L]{Label: tau, Kind: p.Kind}
	}
}

// PropertyIncluded returns the inclusion relation on DiffProperty for
// equality-labelled automata: a is subsumed by b when the labels are
// equal and a's kind is subsumed by b's kind.
func PropertyIncluded[L comparable]() func(a, b DiffProperty[L]) bool {
	return func(a, b DiffProperty[L]) bool {
		return a.Label == b.Label && KindIncluded(a.Kind, b.Kind)
	}
}
