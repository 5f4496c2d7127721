// Package glts: structural cloning.
package glts

// Clone returns a structurally independent copy of g: same state ids,
// same transitions, fresh backing storage. Properties are copied as
// values; they are immutable by contract, so sharing any pointed-to data
// is safe.
// Complexity: O(V + E).
func (g *Graph[S, T]) Clone() *Graph[S, T] {
	c := &Graph[S, T]{
		props:       append([]S(nil), g.props...),
		transitions: append([]Transition[T](nil), g.transitions...),
		outgoing:    make([][]int, len(g.outgoing)),
		incoming:    make([][]int, len(g.incoming)),
	}
	for i, idxs := range g.outgoing {
		c.outgoing[i] = append([]int(nil), idxs...)
	}
	for i, idxs := range g.incoming {
		c.incoming[i] = append([]int(nil), idxs...)
	}

	return c
}
