package merge

import (
	"errors"

	"github.com/katalvlaran/lvldiff/combine"
	"github.com/katalvlaran/lvldiff/glts"
	"github.com/katalvlaran/lvldiff/match"
)

// Sentinel errors for merge preconditions.
var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("merge: nil input graph")

	// ErrBadMatching indicates a matching referencing a state id outside
	// either graph.
	ErrBadMatching = errors.New("merge: matching references unknown state")

	// ErrNotInjective indicates a matching mapping two left states to the
	// same right state.
	ErrNotInjective = errors.New("merge: matching is not injective")

	// ErrIncombinable indicates a matched pair whose state properties the
	// combiner refuses to fuse.
	ErrIncombinable = errors.New("merge: matched states have incombinable properties")
)

// projected is a transition rebased onto merged state ids.
type projected[T any] struct {
	src, dst int
	prop     T
}

// projectedCombiner fuses projected transitions: combinable iff they
// share both endpoints and their properties are combinable.
type projectedCombiner[T any] struct {
	inner combine.Combiner[T]
}

func (c projectedCombiner[T]) AreCombinable(a, b projected[T]) bool {
	return a.src == b.src && a.dst == b.dst && c.inner.AreCombinable(a.prop, b.prop)
}

func (c projectedCombiner[T]) Combine(a, b projected[T]) projected[T] {
	return projected[T]{src: a.src, dst: a.dst, prop: c.inner.Combine(a.prop, b.prop)}
}

// Merge fuses l and r along matching into a freshly allocated graph.
//
// Preconditions (checked, rejected with sentinel errors): every matching
// key is a state of l, every value a state of r, no value used twice,
// and every matched pair has combinable state properties. The inputs are
// left untouched.
//
// Complexity: O(V + E·k) where k is the largest class of fused parallel
// transitions.
func Merge[S, T any](
	l, r *glts.Graph[S, T],
	matching match.Matching,
	states combine.Combiner[S],
	trans combine.Combiner[T],
) (*glts.Graph[S, T], error) {
	if l == nil || r == nil {
		return nil, ErrNilGraph
	}
	if !matching.Injective() {
		return nil, ErrNotInjective
	}
	for li, ri := range matching {
		if li < 0 || li >= l.Size() || ri < 0 || ri >= r.Size() {
			return nil, ErrBadMatching
		}
		if !states.AreCombinable(l.StateProperty(li), r.StateProperty(ri)) {
			return nil, ErrIncombinable
		}
	}

	out := glts.New[S, T]()
	lmap := make([]int, l.Size())
	rmap := make([]int, r.Size())
	for i := range rmap {
		rmap[i] = -1
	}

	// Matched pairs first, in ascending left-id order, then the
	// unmatched remainder of each side. Stable ids for stable output.
	for _, p := range matching.Pairs() {
		id := out.AddState(states.Combine(l.StateProperty(p[0]), r.StateProperty(p[1])))
		lmap[p[0]] = id
		rmap[p[1]] = id
	}
	for i := 0; i < l.Size(); i++ {
		if _, matched := matching[i]; !matched {
			lmap[i] = out.AddState(l.StateProperty(i))
		}
	}
	for j := 0; j < r.Size(); j++ {
		if rmap[j] < 0 {
			rmap[j] = out.AddState(r.StateProperty(j))
		}
	}

	// Project both transition multisets onto merged ids and fuse them
	// with set semantics: same endpoints + combinable property collapses.
	left := make([]projected[T], 0, len(l.Transitions()))
	for _, t := range l.Transitions() {
		left = append(left, projected[T]{src: lmap[t.Source], dst: lmap[t.Target], prop: t.Property})
	}
	right := make([]projected[T], 0, len(r.Transitions()))
	for _, t := range r.Transitions() {
		right = append(right, projected[T]{src: rmap[t.Source], dst: rmap[t.Target], prop: t.Property})
	}
	for _, t := range combine.NewSet[projected[T]](projectedCombiner[T]{inner: trans}).Combine(left, right) {
		if err := out.AddTransition(t.src, t.prop, t.dst); err != nil {
			// Unreachable when the combiner honors its laws: value-equal
			// properties are always combinable, so set combination never
			// emits a duplicate triple.
			return nil, err
		}
	}

	return out, nil
}
