package merge_test

import (
	"testing"

	"github.com/katalvlaran/lvldiff/combine"
	"github.com/katalvlaran/lvldiff/glts"
	"github.com/katalvlaran/lvldiff/match"
	"github.com/katalvlaran/lvldiff/merge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func combiners() (combine.Combiner[string], combine.Combiner[string]) {
	return combine.NewEquality[string](), combine.NewEquality[string]()
}

// cycle builds an n-state cycle with the given transition labels.
func cycle(t *testing.T, labels ...string) *glts.Graph[string, string] {
	t.Helper()
	g := glts.New[string, string]()
	n := len(labels)
	for i := 0; i < n; i++ {
		g.AddState("s")
	}
	for i, lbl := range labels {
		require.NoError(t, g.AddTransition(i, lbl, (i+1)%n))
	}

	return g
}

// TestMerge_SelfIdentity merges a graph with itself under the identity
// matching and expects a graph isomorphic to the original: aligned
// states fuse pairwise and the parallel projected transitions collapse.
func TestMerge_SelfIdentity(t *testing.T) {
	sc, tc := combiners()
	g := cycle(t, "e1", "e2")

	m, err := merge.Merge(g, g, match.Matching{0: 0, 1: 1}, sc, tc)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, 2, m.TransitionCount())
	assert.True(t, m.HasTransition(0, "e1", 1))
	assert.True(t, m.HasTransition(1, "e2", 0))
}

// TestMerge_EmptyMatching yields the disjoint union: a legal,
// productive base case, not an error.
func TestMerge_EmptyMatching(t *testing.T) {
	sc, tc := combiners()
	l := cycle(t, "e1", "e2")
	r := cycle(t, "e3", "e4", "e5")

	m, err := merge.Merge(l, r, match.Matching{}, sc, tc)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Size())
	assert.Equal(t, 5, m.TransitionCount())
	// Left states keep their ids; right states follow.
	assert.True(t, m.HasTransition(0, "e1", 1))
	assert.True(t, m.HasTransition(2, "e3", 3))
	assert.True(t, m.HasTransition(4, "e5", 2))
}

// TestMerge_TwoVsThreeCycle fuses the shared prefix of a 2-cycle and a
// 3-cycle: the common e1 transition collapses, the diverging e2
// transitions survive side by side.
func TestMerge_TwoVsThreeCycle(t *testing.T) {
	sc, tc := combiners()
	l := cycle(t, "e1", "e2")
	r := cycle(t, "e1", "e2", "e3")

	m, err := merge.Merge(l, r, match.Matching{0: 0, 1: 1}, sc, tc)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Size())
	assert.Equal(t, 4, m.TransitionCount())
	assert.True(t, m.HasTransition(0, "e1", 1), "shared transition fused")
	assert.True(t, m.HasTransition(1, "e2", 0), "left-only branch kept")
	assert.True(t, m.HasTransition(1, "e2", 2), "right-only branch kept")
	assert.True(t, m.HasTransition(2, "e3", 0))
}

// TestMerge_InputsUntouched leaves both inputs exactly as they were.
func TestMerge_InputsUntouched(t *testing.T) {
	sc, tc := combiners()
	l := cycle(t, "e1", "e2")
	r := cycle(t, "e1", "e2", "e3")
	lBefore, rBefore := l.Clone(), r.Clone()

	_, err := merge.Merge(l, r, match.Matching{0: 0, 1: 1}, sc, tc)
	require.NoError(t, err)
	assert.Equal(t, lBefore, l)
	assert.Equal(t, rBefore, r)
}

// TestMerge_Deterministic produces bit-identical output for identical
// inputs.
func TestMerge_Deterministic(t *testing.T) {
	sc, tc := combiners()
	l := cycle(t, "e1", "e2")
	r := cycle(t, "e1", "e2", "e3")
	matching := match.Matching{0: 0, 1: 1}

	a, err := merge.Merge(l, r, matching, sc, tc)
	require.NoError(t, err)
	b, err := merge.Merge(l, r, matching, sc, tc)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestMerge_Preconditions rejects malformed matchings with the
// documented sentinels.
func TestMerge_Preconditions(t *testing.T) {
	sc, tc := combiners()
	l := cycle(t, "e1", "e2")
	r := cycle(t, "e1", "e2", "e3")

	_, err := merge.Merge[string, string](nil, r, match.Matching{}, sc, tc)
	assert.ErrorIs(t, err, merge.ErrNilGraph)

	_, err = merge.Merge(l, r, match.Matching{0: 1, 1: 1}, sc, tc)
	assert.ErrorIs(t, err, merge.ErrNotInjective)

	_, err = merge.Merge(l, r, match.Matching{0: 7}, sc, tc)
	assert.ErrorIs(t, err, merge.ErrBadMatching)

	_, err = merge.Merge(l, r, match.Matching{5: 0}, sc, tc)
	assert.ErrorIs(t, err, merge.ErrBadMatching)

	lRed := glts.New[string, string]()
	lRed.AddState("red")
	rBlue := glts.New[string, string]()
	rBlue.AddState("blue")
	_, err = merge.Merge(lRed, rBlue, match.Matching{0: 0}, sc, tc)
	assert.ErrorIs(t, err, merge.ErrIncombinable)
}
