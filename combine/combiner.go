// Package combine: the Combiner contract plus the two primitive
// combiners (equality, fixed value).
package combine

// panicIncombinable is the stable message for the fail-fast contract:
// Combine must never be invoked on an incombinable pair.
const panicIncombinable = "combine: Combine called on incombinable properties"

// Combiner decides whether two properties of type T may be fused, and
// fuses them.
//
// Contract (see package doc for the full laws): AreCombinable is an
// equivalence relation consistent with value equality; Combine is
// commutative, associative, and closed on combinable pairs, and panics
// on incombinable ones.
type Combiner[T any] interface {
	// AreCombinable reports whether a and b may be fused.
	AreCombinable(a, b T) bool

	// Combine fuses a and b. Panics if !AreCombinable(a, b).
	Combine(a, b T) T
}

// Equality is the strictest combiner: properties are combinable iff
// equal, and combining equals yields that value.
type Equality[T comparable] struct{}

// NewEquality returns the equality combiner for T.
func NewEquality[T comparable]() Equality[T] { return Equality[T]{} }

// AreCombinable reports a == b.
func (Equality[T]) AreCombinable(a, b T) bool { return a == b }

// Combine returns a (== b). Panics if a != b.
func (c Equality[T]) Combine(a, b T) T {
	if !c.AreCombinable(a, b) {
		panic(panicIncombinable)
	}

	return a
}

// Fixed is the loosest combiner: every pair is combinable and every
// combination yields the same fixed value. Useful for properties whose
// content is irrelevant to the diff.
type Fixed[T any] struct {
	value T
}

// NewFixed returns a combiner that always fuses to value.
func NewFixed[T any](value T) Fixed[T] { return Fixed[T]{value: value} }

// AreCombinable always reports true.
func (Fixed[T]) AreCombinable(_, _ T) bool { return true }

// Combine returns the fixed value regardless of its inputs.
func (c Fixed[T]) Combine(_, _ T) T { return c.value }
