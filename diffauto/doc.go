// Package diffauto specializes the generic GLTS model to automata and
// difference automata.
//
// A plain automaton carries StateProperty (initial/accepting flags) on
// states and a bare label on transitions. A difference automaton
// additionally tags every state and transition with a Kind — Unchanged,
// Added, or Removed — recording its provenance in a diff result.
//
// The package provides:
//
//   - the Kind algebra (combination resolves an Added/Removed conflict
//     to Unchanged) and the Kind inclusion relation used by safe-rewrite
//     checks,
//   - property types with their canonical combiners (initial/accepting
//     flags must match exactly to combine),
//   - the nesting invariant of DiffStateProperty (the initial-arrow kind
//     must agree with the state kind; Validate enforces it),
//   - hiders (collapse a transition label to a hidden/tau placeholder)
//     and the capability bundle consumed by the rewrite package,
//   - plain↔diff conversions: ToDiff tags a whole automaton with one
//     kind, FromDiff erases tags; the round trip is the identity.
package diffauto
