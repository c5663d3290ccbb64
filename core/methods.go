package core

// Dual returns the reverse arc associated with a by flipping DualBit.
// dual(dual(a)) == a always holds, so this never needs a lookup.
//
// Complexity: O(1).
func (g *Graph) Dual(a ArcId) ArcId {
	return a ^ ArcId(uint32(1)<<g.dualBit)
}

// IsDual reports whether a is a dual (reverse) arc, i.e. bit DualBit
// of its id is set.
func (g *Graph) IsDual(a ArcId) bool {
	return (uint32(a)>>g.dualBit)&1 == 1
}

// Tail returns the tail node of arc a.
//
// Complexity: O(1).
func (g *Graph) Tail(a ArcId) NodeId {
	return g.arcTail[a]
}

// Head returns the head node of arc a, defined as the tail of its
// dual.
//
// Complexity: O(1).
func (g *Graph) Head(a ArcId) NodeId {
	return g.arcTail[g.Dual(a)]
}

// ArcEnabled reports whether arc a has been added to the graph. An
// arc is enabled iff its tail is not InvalidNodeID; any other arc id
// is logically absent.
func (g *Graph) ArcEnabled(a ArcId) bool {
	return g.arcTail[a] != InvalidNodeID
}

// AddArc adds forward arc a between from and to, and links its dual
// into to's adjacency list pointing back at from.
//
// Preconditions: a < MaxArcs, bit DualBit of a is clear (callers
// always add the forward arc, never its dual), from < MaxNodes and
// to < MaxNodes. Re-adding an id already in use is a usage error and
// is not re-validated, matching the source contract this is grounded
// on.
//
// Complexity: O(1).
func (g *Graph) AddArc(a ArcId, from, to NodeId) error {
	if uint32(a) >= g.maxArcs {
		return ErrArcOutOfRange
	}
	if g.IsDual(a) {
		return ErrDualArcID
	}
	if uint32(from) >= g.maxNodes || uint32(to) >= g.maxNodes {
		return ErrNodeOutOfRange
	}

	g.pushOutboundArc(a, from)
	g.pushOutboundArc(g.Dual(a), to)

	return nil
}

// pushOutboundArc prepends arc a onto tail's adjacency list.
func (g *Graph) pushOutboundArc(a ArcId, tail NodeId) {
	g.arcTail[a] = tail
	g.adjacencyNext[a] = g.adjacencyFirst[tail]
	g.adjacencyFirst[tail] = a
}

// AdjacencyFirst returns the first outgoing arc of node n, or
// InvalidArcID if n has none.
func (g *Graph) AdjacencyFirst(n NodeId) ArcId {
	return g.adjacencyFirst[n]
}

// AdjacencyNext returns the next arc after a in the adjacency list
// that contains it, or InvalidArcID at the end of the list.
func (g *Graph) AdjacencyNext(a ArcId) ArcId {
	return g.adjacencyNext[a]
}
