// Package combine defines the property-combination algebra at the heart
// of lvldiff: a Combiner[T] decides whether two properties may be fused
// and computes their fusion.
//
// Laws:
//
//	Every Combiner must satisfy, for all a, b, c of its type:
//	  • AreCombinable is an equivalence relation (reflexive, symmetric,
//	    transitive), and value-equal properties are always combinable.
//	  • Combine is defined only on combinable pairs; on those it is
//	    commutative, associative, and closed — the result stays
//	    combinable with both inputs.
//
// Calling Combine on an incombinable pair is a programming-contract
// violation and panics; it is never a recoverable runtime error.
//
// The package ships structural building blocks — Equality, Fixed,
// Optional, Pair, Set, Adapted, Annotated — that compose into combiners
// for arbitrary state and transition property types. Package diffauto
// composes them into the canonical automaton combiners.
package combine
