// Package combine: pairs of properties combined componentwise.
package combine

// Pair groups two properties into one.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair builds a Pair value.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// PairCombiner combines pairs componentwise: a pair is combinable iff
// both components are, and the fusion fuses each component through its
// own combiner.
type PairCombiner[A, B any] struct {
	first  Combiner[A]
	second Combiner[B]
}

// NewPairCombiner composes per-component combiners into one over pairs.
func NewPairCombiner[A, B any](first Combiner[A], second Combiner[B]) PairCombiner[A, B] {
	return PairCombiner[A, B]{first: first, second: second}
}

// AreCombinable reports componentwise combinability.
func (c PairCombiner[A, B]) AreCombinable(a, b Pair[A, B]) bool {
	return c.first.AreCombinable(a.First, b.First) && c.second.AreCombinable(a.Second, b.Second)
}

// Combine fuses componentwise. Panics if either component pair is
// incombinable.
func (c PairCombiner[A, B]) Combine(a, b Pair[A, B]) Pair[A, B] {
	if !c.AreCombinable(a, b) {
		panic(panicIncombinable)
	}

	return Pair[A, B]{
		First:  c.first.Combine(a.First, b.First),
		Second: c.second.Combine(a.Second, b.Second),
	}
}
