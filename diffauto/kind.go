// Package diffauto: the difference-kind algebra.
package diffauto

// Kind marks the provenance of a state or transition in a diff result.
//
//   - Unchanged — present in both inputs.
//   - Added     — present only in the right input.
//   - Removed   — present only in the left input.
//
// The zero value is Unchanged.
type Kind int

const (
	// Unchanged marks structure present in both compared graphs.
	Unchanged Kind = iota

	// Added marks structure present only in the right graph.
	Added

	// Removed marks structure present only in the left graph.
	Removed
)

// String returns the canonical lowercase name of k.
func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "invalid"
	}
}

// CombineKinds fuses two kinds: equal kinds keep their value, a
// conflicting Added/Removed pair resolves to Unchanged (the structure
// exists on both sides, each side contributing one direction).
// Every pair of kinds is combinable.
func CombineKinds(a, b Kind) Kind {
	if a == b {
		return a
	}

	return Unchanged
}

// KindIncluded reports the "is subsumed by" partial order on kinds:
// every kind is included in itself, and Added/Removed are included in
// Unchanged (one-sided presence is subsumed by both-sided presence).
// The relation is reflexive, antisymmetric, and transitive.
func KindIncluded(a, b Kind) bool {
	return a == b || b == Unchanged
}

// KindCombiner is the always-combinable combiner over kinds.
type KindCombiner struct{}

// NewKindCombiner returns the kind combiner.
func NewKindCombiner() KindCombiner { return KindCombiner{} }

// AreCombinable always reports true.
func (KindCombiner) AreCombinable(_, _ Kind) bool { return true }

// Combine delegates to CombineKinds.
func (KindCombiner) Combine(a, b Kind) Kind { return CombineKinds(a, b) }
