// Package glts: central Graph and Transition types.
//
// This file declares the Transition triple, the Graph container with its
// adjacency indices, sentinel errors, and the New constructor. Method
// implementations live in methods.go and methods_clone.go.
package glts

import "errors"

// Sentinel errors for graph mutations.
var (
	// ErrStateNotFound indicates an operation referenced a state id
	// outside [0, Size()).
	ErrStateNotFound = errors.New("glts: state not found")

	// ErrTransitionNotFound indicates an operation referenced a
	// transition that is not present in the graph.
	ErrTransitionNotFound = errors.New("glts: transition not found")

	// ErrDuplicateTransition indicates an attempt to add a transition
	// whose (source, property, target) triple already exists.
	ErrDuplicateTransition = errors.New("glts: duplicate transition")
)

// Transition is an ordered (source, property, target) triple. Both
// endpoints are state ids of the owning graph. Transition values are
// compared by the whole triple: parallel transitions between the same
// endpoints are legal as long as their properties differ.
type Transition[T any] struct {
	// Source is the id of the state this transition leaves.
	Source int

	// Property is the transition payload (label, diff annotation, …).
	// It is treated as an immutable value.
	Property T

	// Target is the id of the state this transition enters.
	Target int
}

// Graph is a mutable directed multigraph with a property of type S on
// every state and a property of type T on every transition.
//
// States are identified by dense ids in [0, Size()); ids stay dense
// across removals (see RemoveState). Adjacency indices give O(deg)
// access to a state's incoming and outgoing transitions.
type Graph[S, T any] struct {
	// props[id] is the property of state id.
	props []S

	// transitions is the flat transition store; slots are reused via
	// swap-remove, so slot order is deterministic but not sorted.
	transitions []Transition[T]

	// outgoing[id] / incoming[id] hold indices into transitions for the
	// transitions leaving / entering state id, in insertion order.
	outgoing [][]int
	incoming [][]int
}

// New creates an empty Graph.
// Complexity: O(1).
func New[S, T any]() *Graph[S, T] {
	return &Graph[S, T]{}
}
