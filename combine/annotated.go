// Package combine: annotated properties — a payload plus a set of
// annotations, combined independently.
package combine

// Annotated attaches a set of annotations of type A to a payload of
// type T. Annotations carry auxiliary facts (provenance, counters,
// notes) that fuse independently of the payload.
type Annotated[T, A any] struct {
	Value       T
	Annotations []A
}

// NewAnnotated builds an Annotated value.
func NewAnnotated[T, A any](value T, annotations ...A) Annotated[T, A] {
	return Annotated[T, A]{Value: value, Annotations: annotations}
}

// AnnotatedCombiner fuses the payload through the value combiner and the
// annotation sets through a SetCombiner over the annotation combiner.
// Combinability depends on the payload only: annotation sets are always
// combinable.
type AnnotatedCombiner[T, A any] struct {
	value       Combiner[T]
	annotations SetCombiner[A]
}

// NewAnnotatedCombiner composes a payload combiner and an annotation
// combiner into one over Annotated values.
func NewAnnotatedCombiner[T, A any](value Combiner[T], annotation Combiner[A]) AnnotatedCombiner[T, A] {
	return AnnotatedCombiner[T, A]{value: value, annotations: NewSet(annotation)}
}

// AreCombinable reports payload combinability.
func (c AnnotatedCombiner[T, A]) AreCombinable(a, b Annotated[T, A]) bool {
	return c.value.AreCombinable(a.Value, b.Value)
}

// Combine fuses payloads and unions annotation classes. Panics if the
// payloads are incombinable.
func (c AnnotatedCombiner[T, A]) Combine(a, b Annotated[T, A]) Annotated[T, A] {
	if !c.AreCombinable(a, b) {
		panic(panicIncombinable)
	}

	return Annotated[T, A]{
		Value:       c.value.Combine(a.Value, b.Value),
		Annotations: c.annotations.Combine(a.Annotations, b.Annotations),
	}
}
