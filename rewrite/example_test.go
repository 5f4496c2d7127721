package rewrite_test

import (
	"fmt"

	"github.com/katalvlaran/lvldiff/combine"
	"github.com/katalvlaran/lvldiff/diffauto"
	"github.com/katalvlaran/lvldiff/glts"
	"github.com/katalvlaran/lvldiff/rewrite"
)

// ExampleLocalRedundancy fuses three parallel transitions carrying the
// same event with different provenance into one shared transition.
func ExampleLocalRedundancy() {
	g := glts.New[diffauto.DiffStateProperty, diffauto.DiffProperty[string]]()
	s0 := g.AddState(diffauto.DiffStateProperty{})
	s1 := g.AddState(diffauto.DiffStateProperty{})
	_ = g.AddTransition(s0, diffauto.DiffProperty[string]{Label: "e", Kind: diffauto.Unchanged}, s1)
	_ = g.AddTransition(s0, diffauto.DiffProperty[string]{Label: "e", Kind: diffauto.Added}, s1)
	_ = g.AddTransition(s0, diffauto.DiffProperty[string]{Label: "e", Kind: diffauto.Removed}, s1)

	tc := diffauto.NewDiffPropertyCombiner(combine.NewEquality[string]())
	r := rewrite.NewLocalRedundancy[diffauto.DiffStateProperty](tc)

	fmt.Println("before:", g.TransitionCount())
	fmt.Println("changed:", r.Rewrite(g))
	fmt.Println("after:", g.TransitionCount())
	for _, t := range g.Transitions() {
		fmt.Printf("%s %s %d->%d\n", t.Property.Kind, t.Property.Label, t.Source, t.Target)
	}

	// Output:
	// before: 3
	// changed: true
	// after: 1
	// unchanged e 0->1
}
