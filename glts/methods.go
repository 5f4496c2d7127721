// Package glts: Graph method implementations.
//
// Mutators validate their inputs and return sentinel errors; queries
// index directly and treat an out-of-range id as a programming-contract
// violation (they panic via bounds checking, by the fail-fast policy
// shared across the diff pipeline).
package glts

import "reflect"

// AddState appends a new state carrying prop and returns its id.
// Ids are allocated densely: the returned id equals the previous Size().
// Complexity: O(1) amortized.
func (g *Graph[S, T]) AddState(prop S) int {
	id := len(g.props)
	g.props = append(g.props, prop)
	g.outgoing = append(g.outgoing, nil)
	g.incoming = append(g.incoming, nil)

	return id
}

// Size returns the number of states. State ids are exactly [0, Size()).
// Complexity: O(1).
func (g *Graph[S, T]) Size() int { return len(g.props) }

// TransitionCount returns the number of transitions.
// Complexity: O(1).
func (g *Graph[S, T]) TransitionCount() int { return len(g.transitions) }

// HasState reports whether id names an existing state.
// Complexity: O(1).
func (g *Graph[S, T]) HasState(id int) bool {
	return id >= 0 && id < len(g.props)
}

// StateProperty returns the property of state id.
// The id must be valid; passing a stale or foreign id is a contract
// violation and panics.
// Complexity: O(1).
func (g *Graph[S, T]) StateProperty(id int) S { return g.props[id] }

// SetStateProperty replaces the property of state id with prop.
// Properties are replaced wholesale, never mutated in place.
// Returns ErrStateNotFound for an invalid id.
// Complexity: O(1).
func (g *Graph[S, T]) SetStateProperty(id int, prop S) error {
	if !g.HasState(id) {
		return ErrStateNotFound
	}
	g.props[id] = prop

	return nil
}

// AddTransition inserts the transition (src, prop, dst).
// Returns ErrStateNotFound if either endpoint is invalid and
// ErrDuplicateTransition if the exact triple already exists.
// Complexity: O(outdeg(src)) for the duplicate check.
func (g *Graph[S, T]) AddTransition(src int, prop T, dst int) error {
	if !g.HasState(src) || !g.HasState(dst) {
		return ErrStateNotFound
	}
	if g.HasTransition(src, prop, dst) {
		return ErrDuplicateTransition
	}

	idx := len(g.transitions)
	g.transitions = append(g.transitions, Transition[T]{Source: src, Property: prop, Target: dst})
	g.outgoing[src] = append(g.outgoing[src], idx)
	g.incoming[dst] = append(g.incoming[dst], idx)

	return nil
}

// HasTransition reports whether the exact triple (src, prop, dst) exists.
// Properties are compared by value equality (reflect.DeepEqual), matching
// the opaque value-equality contract of GLTS properties.
// Complexity: O(outdeg(src)).
func (g *Graph[S, T]) HasTransition(src int, prop T, dst int) bool {
	if !g.HasState(src) || !g.HasState(dst) {
		return false
	}
	for _, idx := range g.outgoing[src] {
		t := g.transitions[idx]
		if t.Target == dst && reflect.DeepEqual(t.Property, prop) {
			return true
		}
	}

	return false
}

// RemoveTransition deletes the transition equal to t (whole-triple
// equality). Returns ErrTransitionNotFound if no such transition exists.
// Complexity: O(outdeg(t.Source) + indeg(t.Target)).
func (g *Graph[S, T]) RemoveTransition(t Transition[T]) error {
	if !g.HasState(t.Source) || !g.HasState(t.Target) {
		return ErrTransitionNotFound
	}
	for _, idx := range g.outgoing[t.Source] {
		cand := g.transitions[idx]
		if cand.Target == t.Target && reflect.DeepEqual(cand.Property, t.Property) {
			g.removeTransitionAt(idx)

			return nil
		}
	}

	return ErrTransitionNotFound
}

// RemoveState deletes state id together with all incident transitions.
// Ids stay dense: the previously last state (id Size()-1) assumes the
// freed id, so at most one surviving state is renumbered.
// Returns ErrStateNotFound for an invalid id.
// Complexity: O(deg(id) + deg(Size()-1)).
func (g *Graph[S, T]) RemoveState(id int) error {
	if !g.HasState(id) {
		return ErrStateNotFound
	}

	// Drop incident transitions first; self-loops sit in both lists and
	// vanish with the first removal.
	for len(g.outgoing[id]) > 0 {
		g.removeTransitionAt(g.outgoing[id][0])
	}
	for len(g.incoming[id]) > 0 {
		g.removeTransitionAt(g.incoming[id][0])
	}

	last := len(g.props) - 1
	if id != last {
		// Move the last state into the freed slot and retarget its
		// incident transitions to the new id.
		g.props[id] = g.props[last]
		g.outgoing[id] = g.outgoing[last]
		g.incoming[id] = g.incoming[last]
		for _, idx := range g.outgoing[id] {
			g.transitions[idx].Source = id
		}
		for _, idx := range g.incoming[id] {
			g.transitions[idx].Target = id
		}
	}
	g.props = g.props[:last]
	g.outgoing = g.outgoing[:last]
	g.incoming = g.incoming[:last]

	return nil
}

// Outgoing returns a copy of the transitions leaving state id, in
// insertion order. The id must be valid.
// Complexity: O(outdeg(id)).
func (g *Graph[S, T]) Outgoing(id int) []Transition[T] {
	out := make([]Transition[T], len(g.outgoing[id]))
	for i, idx := range g.outgoing[id] {
		out[i] = g.transitions[idx]
	}

	return out
}

// Incoming returns a copy of the transitions entering state id, in
// insertion order. The id must be valid.
// Complexity: O(indeg(id)).
func (g *Graph[S, T]) Incoming(id int) []Transition[T] {
	in := make([]Transition[T], len(g.incoming[id]))
	for i, idx := range g.incoming[id] {
		in[i] = g.transitions[idx]
	}

	return in
}

// CountOutgoing returns the number of transitions leaving state id.
// Complexity: O(1).
func (g *Graph[S, T]) CountOutgoing(id int) int { return len(g.outgoing[id]) }

// CountIncoming returns the number of transitions entering state id.
// Complexity: O(1).
func (g *Graph[S, T]) CountIncoming(id int) int { return len(g.incoming[id]) }

// Transitions returns a copy of all transitions. Slot order is
// deterministic for a deterministic mutation history but otherwise
// unspecified; callers needing a canonical order must sort.
// Complexity: O(E).
func (g *Graph[S, T]) Transitions() []Transition[T] {
	out := make([]Transition[T], len(g.transitions))
	copy(out, g.transitions)

	return out
}

// removeTransitionAt deletes the transition in slot i, keeping the flat
// store dense by moving the last slot into i.
func (g *Graph[S, T]) removeTransitionAt(i int) {
	t := g.transitions[i]
	g.outgoing[t.Source] = dropIndex(g.outgoing[t.Source], i)
	g.incoming[t.Target] = dropIndex(g.incoming[t.Target], i)

	last := len(g.transitions) - 1
	if i != last {
		moved := g.transitions[last]
		g.transitions[i] = moved
		g.outgoing[moved.Source] = replaceIndex(g.outgoing[moved.Source], last, i)
		g.incoming[moved.Target] = replaceIndex(g.incoming[moved.Target], last, i)
	}
	g.transitions = g.transitions[:last]
}

// dropIndex removes the first occurrence of v from s, preserving order.
func dropIndex(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}

// replaceIndex rewrites the first occurrence of old in s to new.
func replaceIndex(s []int, old, new int) []int {
	for i, x := range s {
		if x == old {
			s[i] = new

			break
		}
	}

	return s
}
