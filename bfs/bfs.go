package bfs

import "github.com/katalvlaran/mcflow/core"

// BFSPath performs a breadth-first search from src, traversing only
// arcs a with capacity[a] >= threshold, and never revisiting a node.
//
// For every node n != src reached during the search, prev[n] is set
// to the arc used to arrive at n; src and every unreached node are
// set to core.InvalidArcID. BFSPath returns true iff dst is reached.
//
// The traversal queue never holds more than MaxNodes entries, so the
// search always terminates.
//
// Complexity: O(V + E).
func BFSPath(g *core.Graph, src, dst core.NodeId, capacity []int64, threshold int64, prev []core.ArcId) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if uint32(len(capacity)) < g.MaxArcs() {
		return false, ErrCapacityLength
	}
	if uint32(len(prev)) < g.MaxNodes() {
		return false, ErrPrevLength
	}
	if uint32(src) >= g.MaxNodes() {
		return false, ErrSourceOutOfRange
	}
	if uint32(dst) >= g.MaxNodes() {
		return false, ErrDestOutOfRange
	}
	if threshold < 1 {
		return false, ErrThresholdNonPositive
	}

	for n := range prev {
		prev[n] = core.InvalidArcID
	}

	visited := make([]bool, g.MaxNodes())
	visited[src] = true

	queue := make([]core.NodeId, 0, g.MaxNodes())
	queue = append(queue, src)

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == dst {
			return true, nil
		}

		for a := g.AdjacencyFirst(n); a != core.InvalidArcID; a = g.AdjacencyNext(a) {
			if capacity[a] < threshold {
				continue
			}
			m := g.Head(a)
			if visited[m] {
				continue
			}
			visited[m] = true
			prev[m] = a
			queue = append(queue, m)
		}
	}

	return visited[dst], nil
}
