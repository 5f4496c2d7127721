// Package combine: set-valued properties combined by equivalence-class
// partitioning.
package combine

// SetCombiner combines two property sets, represented as slices with set
// semantics. Two sets are always combinable. The fusion is the union of
// both sets partitioned into equivalence classes under the inner
// combiner: elements with combinable values collapse into one fused
// element, incombinable elements stay distinct.
//
// Determinism: classes appear in first-occurrence order over a then b,
// and each class folds left-to-right, so identical inputs always produce
// the identical slice.
type SetCombiner[T any] struct {
	inner Combiner[T]
}

// NewSet wraps inner into a combiner over []T with set semantics.
func NewSet[T any](inner Combiner[T]) SetCombiner[T] {
	return SetCombiner[T]{inner: inner}
}

// AreCombinable always reports true.
func (SetCombiner[T]) AreCombinable(_, _ []T) bool { return true }

// Combine returns the class-partitioned union of a and b.
// Complexity: O((|a|+|b|)·k) pairwise checks, k = number of classes.
func (c SetCombiner[T]) Combine(a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	merge := func(v T) {
		for i := range out {
			// Closure of Combine keeps out[i] combinable with every
			// member folded into it, so one representative check is an
			// exact class-membership test.
			if c.inner.AreCombinable(out[i], v) {
				out[i] = c.inner.Combine(out[i], v)

				return
			}
		}
		out = append(out, v)
	}
	for _, v := range a {
		merge(v)
	}
	for _, v := range b {
		merge(v)
	}

	return out
}
