// Package combine: adapting a combiner across a type conversion.
package combine

// Adapted lifts a Combiner[U] to type T through a pair of conversion
// functions (the classical subtype combiner): properties are converted
// to U, decided and fused there, and the fusion converted back.
//
// The conversions must form an embedding: from(to(t)) preserves value
// equality, otherwise the combiner laws do not carry over.
type Adapted[T, U any] struct {
	inner Combiner[U]
	to    func(T) U
	from  func(U) T
}

// NewAdapted builds an Adapted combiner from inner and the two
// conversion functions. Both functions must be non-nil.
func NewAdapted[T, U any](inner Combiner[U], to func(T) U, from func(U) T) Adapted[T, U] {
	if to == nil || from == nil {
		panic("combine: NewAdapted requires non-nil conversions")
	}

	return Adapted[T, U]{inner: inner, to: to, from: from}
}

// AreCombinable decides combinability in the adapted domain.
func (c Adapted[T, U]) AreCombinable(a, b T) bool {
	return c.inner.AreCombinable(c.to(a), c.to(b))
}

// Combine fuses in the adapted domain and converts back. Panics if the
// converted pair is incombinable.
func (c Adapted[T, U]) Combine(a, b T) T {
	return c.from(c.inner.Combine(c.to(a), c.to(b)))
}
