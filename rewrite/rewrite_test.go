package rewrite_test

import (
	"testing"

	"github.com/katalvlaran/lvldiff/combine"
	"github.com/katalvlaran/lvldiff/diffauto"
	"github.com/katalvlaran/lvldiff/glts"
	"github.com/katalvlaran/lvldiff/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type diffGraph = glts.Graph[diffauto.DiffStateProperty, diffauto.DiffProperty[string]]

func dp(label string, k diffauto.Kind) diffauto.DiffProperty[string] {
	return diffauto.DiffProperty[string]{Label: label, Kind: k}
}

func sp(k diffauto.Kind) diffauto.DiffStateProperty {
	return diffauto.DiffStateProperty{StateKind: k}
}

func transCombiner() combine.Combiner[diffauto.DiffProperty[string]] {
	return diffauto.NewDiffPropertyCombiner(combine.NewEquality[string]())
}

// TestLocalRedundancy_ThreeParallel collapses three parallel
// transitions sharing endpoints and label into a single fused one.
func TestLocalRedundancy_ThreeParallel(t *testing.T) {
	g := glts.New[diffauto.DiffStateProperty, diffauto.DiffProperty[string]]()
	s0, s1 := g.AddState(sp(diffauto.Unchanged)), g.AddState(sp(diffauto.Unchanged))
	require.NoError(t, g.AddTransition(s0, dp("e", diffauto.Unchanged), s1))
	require.NoError(t, g.AddTransition(s0, dp("e", diffauto.Added), s1))
	require.NoError(t, g.AddTransition(s0, dp("e", diffauto.Removed), s1))

	r := rewrite.NewLocalRedundancy[diffauto.DiffStateProperty](transCombiner())
	assert.True(t, r.Rewrite(g))
	assert.Equal(t, 1, g.TransitionCount())
	assert.True(t, g.HasTransition(s0, dp("e", diffauto.Unchanged), s1))
	assert.False(t, r.Rewrite(g), "fixed point after one pass")
}

// TestLocalRedundancy_KeepsDistinct leaves incombinable parallels
// alone.
func TestLocalRedundancy_KeepsDistinct(t *testing.T) {
	g := glts.New[diffauto.DiffStateProperty, diffauto.DiffProperty[string]]()
	s0, s1 := g.AddState(sp(diffauto.Unchanged)), g.AddState(sp(diffauto.Unchanged))
	require.NoError(t, g.AddTransition(s0, dp("a", diffauto.Added), s1))
	require.NoError(t, g.AddTransition(s0, dp("b", diffauto.Removed), s1))

	r := rewrite.NewLocalRedundancy[diffauto.DiffStateProperty](transCombiner())
	assert.False(t, r.Rewrite(g))
	assert.Equal(t, 2, g.TransitionCount())
}

// tangleGraph builds s0 -x(Added)-> s1 -y(Removed)-> s2 where s1 is
// unchanged: a tangle gluing structure that exists in neither input.
func tangleGraph(t *testing.T, initial bool) *diffGraph {
	t.Helper()
	g := glts.New[diffauto.DiffStateProperty, diffauto.DiffProperty[string]]()
	g.AddState(sp(diffauto.Unchanged))
	tangle := sp(diffauto.Unchanged)
	tangle.Initial = initial
	g.AddState(tangle)
	g.AddState(sp(diffauto.Unchanged))
	require.NoError(t, g.AddTransition(0, dp("x", diffauto.Added), 1))
	require.NoError(t, g.AddTransition(1, dp("y", diffauto.Removed), 2))

	return g
}

// TestEntanglement_SplitsTangle separates the added and removed sides
// of a tangle into their own states.
func TestEntanglement_SplitsTangle(t *testing.T) {
	g := tangleGraph(t, false)
	r := rewrite.NewEntanglement(rewrite.AutomatonOps[string]())

	assert.True(t, r.Rewrite(g))
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, 2, g.TransitionCount())

	// The added transition now enters an added state, the removed one
	// leaves a removed state; nothing crosses anymore.
	for _, tr := range g.Transitions() {
		switch tr.Property.Kind {
		case diffauto.Added:
			assert.Equal(t, diffauto.Added, g.StateProperty(tr.Target).StateKind)
		case diffauto.Removed:
			assert.Equal(t, diffauto.Removed, g.StateProperty(tr.Source).StateKind)
		default:
			t.Fatalf("unexpected unchanged transition %v", tr)
		}
	}
	assert.False(t, r.Rewrite(g), "fixed point after the split")
}

// TestEntanglement_InitialTangle keeps the initial marker on both
// copies with an initial-arrow kind matching each copy's side, so the
// nesting invariant still validates.
func TestEntanglement_InitialTangle(t *testing.T) {
	g := tangleGraph(t, true)
	r := rewrite.NewEntanglement(rewrite.AutomatonOps[string]())

	require.True(t, r.Rewrite(g))
	found := 0
	for s := 0; s < g.Size(); s++ {
		p := g.StateProperty(s)
		if p.StateKind == diffauto.Unchanged {
			continue
		}
		found++
		assert.True(t, p.Initial)
		assert.Equal(t, p.StateKind, p.InitKind)
		assert.NoError(t, p.Validate())
	}
	assert.Equal(t, 2, found)
}

// forkGraph builds the merged 2-cycle/3-cycle divergence: state 1 forks
// into a removed direct e2 back to 0 and an added e2 into the
// right-only state 2, which exits to 0 via an added e3.
func forkGraph(t *testing.T) *diffGraph {
	t.Helper()
	g := glts.New[diffauto.DiffStateProperty, diffauto.DiffProperty[string]]()
	g.AddState(sp(diffauto.Unchanged))
	g.AddState(sp(diffauto.Unchanged))
	g.AddState(sp(diffauto.Added))
	require.NoError(t, g.AddTransition(0, dp("e1", diffauto.Unchanged), 1))
	require.NoError(t, g.AddTransition(1, dp("e2", diffauto.Removed), 0))
	require.NoError(t, g.AddTransition(1, dp("e2", diffauto.Added), 2))
	require.NoError(t, g.AddTransition(2, dp("e3", diffauto.Added), 0))

	return g
}

func skipOperators() (*rewrite.SkipFork[diffauto.DiffStateProperty, diffauto.DiffProperty[string]],
	*rewrite.SkipJoin[diffauto.DiffStateProperty, diffauto.DiffProperty[string]]) {
	tc := transCombiner()
	ops := rewrite.AutomatonOps[string]()
	hide := diffauto.PropertyHider[string]("tau")
	incl := diffauto.PropertyIncluded[string]()

	return rewrite.NewSkipFork(tc, ops, hide, incl), rewrite.NewSkipJoin(tc, ops, hide, incl)
}

// TestSkipFork_CollapsesDivergence fuses the e2 fork onto the
// right-only state and leaves a hidden removed skip for the left side.
func TestSkipFork_CollapsesDivergence(t *testing.T) {
	g := forkGraph(t)
	fork, _ := skipOperators()

	assert.True(t, fork.Rewrite(g))
	assert.Equal(t, 4, g.TransitionCount())
	assert.True(t, g.HasTransition(1, dp("e2", diffauto.Unchanged), 2), "fork fused onto the through path")
	assert.True(t, g.HasTransition(2, dp("tau", diffauto.Removed), 0), "bypass survives as a hidden skip")
	assert.True(t, g.HasTransition(2, dp("e3", diffauto.Added), 0), "exit untouched")
	assert.False(t, fork.Rewrite(g), "fixed point after one rewrite")
}

// TestSkipFork_RespectsInitialInner never rewrites across an initial
// intermediate state.
func TestSkipFork_RespectsInitialInner(t *testing.T) {
	g := forkGraph(t)
	p := g.StateProperty(2)
	p.Initial = true
	p.InitKind = diffauto.Added
	require.NoError(t, g.SetStateProperty(2, p))

	fork, _ := skipOperators()
	assert.False(t, fork.Rewrite(g))
}

// TestSkipJoin_CollapsesConvergence is the mirror case: two e2
// transitions converging on one state, the added one routed through a
// right-only state entered from the shared origin.
func TestSkipJoin_CollapsesConvergence(t *testing.T) {
	g := glts.New[diffauto.DiffStateProperty, diffauto.DiffProperty[string]]()
	g.AddState(sp(diffauto.Unchanged))
	g.AddState(sp(diffauto.Added))
	g.AddState(sp(diffauto.Unchanged))
	require.NoError(t, g.AddTransition(0, dp("e1", diffauto.Added), 1))
	require.NoError(t, g.AddTransition(1, dp("e2", diffauto.Added), 2))
	require.NoError(t, g.AddTransition(0, dp("e2", diffauto.Removed), 2))

	_, join := skipOperators()
	assert.True(t, join.Rewrite(g))
	assert.Equal(t, 3, g.TransitionCount())
	assert.True(t, g.HasTransition(1, dp("e2", diffauto.Unchanged), 2), "join fused onto the through path")
	assert.True(t, g.HasTransition(0, dp("tau", diffauto.Removed), 1), "bypass survives as a hidden skip")
	assert.True(t, g.HasTransition(0, dp("e1", diffauto.Added), 1), "entry untouched")
	assert.False(t, join.Rewrite(g))
}

// TestDrivers_FixedPointOfSequence runs the full pipeline to a fixed
// point and verifies the second run is a no-op.
func TestDrivers_FixedPointOfSequence(t *testing.T) {
	g := forkGraph(t)
	fork, join := skipOperators()
	pipeline := rewrite.NewFixedPoint[diffauto.DiffStateProperty, diffauto.DiffProperty[string]](
		rewrite.NewSequence[diffauto.DiffStateProperty, diffauto.DiffProperty[string]](
			rewrite.NewLocalRedundancy[diffauto.DiffStateProperty](transCombiner()),
			rewrite.NewEntanglement(rewrite.AutomatonOps[string]()),
			fork,
			join,
		),
	)

	assert.True(t, pipeline.Rewrite(g))
	assert.False(t, pipeline.Rewrite(g), "pipeline reached a fixed point")
}
