// Package combine: optional ("may be absent") properties and their
// combiner.
package combine

// Optional wraps a property that may be absent. The zero value is the
// absent Optional.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, present: true} }

// None returns the absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Present reports whether a value is held.
func (o Optional[T]) Present() bool { return o.present }

// Value returns the held value and whether one is present.
func (o Optional[T]) Value() (T, bool) { return o.value, o.present }

// MustValue returns the held value; panics when absent.
func (o Optional[T]) MustValue() T {
	if !o.present {
		panic("combine: MustValue on absent Optional")
	}

	return o.value
}

// OptionalCombiner lifts a Combiner[T] to Optional[T].
//
// Two optionals are always combinable: absence never blocks a fuse.
// Two absent values combine to absent; one absent and one present
// combine to the present one; two present values combine through the
// inner combiner — which, as always, panics when its pair is
// incombinable.
type OptionalCombiner[T any] struct {
	inner Combiner[T]
}

// NewOptional wraps inner into a combiner over Optional[T].
func NewOptional[T any](inner Combiner[T]) OptionalCombiner[T] {
	return OptionalCombiner[T]{inner: inner}
}

// AreCombinable always reports true: presence is resolved by Combine.
func (OptionalCombiner[T]) AreCombinable(_, _ Optional[T]) bool { return true }

// Combine fuses two optionals; the present side wins, two present
// values delegate to the inner combiner.
func (c OptionalCombiner[T]) Combine(a, b Optional[T]) Optional[T] {
	switch {
	case !a.present && !b.present:
		return None[T]()
	case !a.present:
		return b
	case !b.present:
		return a
	default:
		return Some(c.inner.Combine(a.value, b.value))
	}
}
