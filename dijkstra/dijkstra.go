package dijkstra

import (
	"math"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/pqueue"
)

func validateArrays(g *core.Graph, capacity, cost, potential []int64, prev []core.ArcId, distance []int64) error {
	if g == nil {
		return ErrGraphNil
	}
	if uint32(len(capacity)) < g.MaxArcs() || uint32(len(cost)) < g.MaxArcs() {
		return ErrArrayLength
	}
	if uint32(len(potential)) < g.MaxNodes() || uint32(len(prev)) < g.MaxNodes() || uint32(len(distance)) < g.MaxNodes() {
		return ErrArrayLength
	}

	return nil
}

// reducedCost computes the SSP-convention reduced cost of arc a,
// given its tail and head node ids.
func reducedCost(cost, potential []int64, a core.ArcId, tail, head core.NodeId) int64 {
	return cost[a] - potential[tail] + potential[head]
}

// DijkstraPath computes shortest-path distances from src using
// reduced costs, traversing only arcs with capacity[a] >= threshold.
// It writes the final prev[n] and distance[n] for every node
// (unreached nodes get core.InvalidArcID and +infinity). When prune
// is true, it terminates as soon as dst is settled instead of
// continuing to exhaust the frontier.
//
// Every traversed arc's reduced cost must be non-negative; a
// violation is a programming error and panics.
//
// Complexity: O((V+E) log V).
func DijkstraPath(g *core.Graph, src, dst core.NodeId, prune bool, capacity []int64, threshold int64, cost, potential []int64, prev []core.ArcId, distance []int64) (bool, error) {
	if err := validateArrays(g, capacity, cost, potential, prev, distance); err != nil {
		return false, err
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

	for n := range distance {
		distance[n] = math.MaxInt64
	}
	for n := range prev {
		prev[n] = core.InvalidArcID
	}

	finalized := make([]bool, g.MaxNodes())
	pq := pqueue.New(g.MaxNodes())
	distance[src] = 0
	_ = pq.Update(uint32(src), 0)

	reached := false
	for !pq.Empty() {
		id, _ := pq.Top()
		_ = pq.Pop()
		n := core.NodeId(id)
		if finalized[n] {
			continue
		}
		finalized[n] = true

		if n == dst {
			reached = true
			if prune {
				break
			}
		}

		relax(g, n, capacity, threshold, cost, potential, finalized, distance, prev, pq)
	}

	return reached, nil
}

// relax scans n's outgoing admissible arcs and offers each head node
// a candidate distance through n, updating the priority queue when it
// improves on the head's current distance.
func relax(g *core.Graph, n core.NodeId, capacity []int64, threshold int64, cost, potential []int64, finalized []bool, distance []int64, prev []core.ArcId, pq *pqueue.IndexedPriorityQueue) {
	for a := g.AdjacencyFirst(n); a != core.InvalidArcID; a = g.AdjacencyNext(a) {
		if capacity[a] < threshold {
			continue
		}
		m := g.Head(a)
		if finalized[m] {
			continue
		}
		rc := reducedCost(cost, potential, a, n, m)
		invariant(rc >= 0, "negative reduced cost on traversed arc")

		nd := distance[n] + rc
		if nd < distance[m] {
			distance[m] = nd
			prev[m] = a
			_ = pq.Update(uint32(m), nd)
		}
	}
}

// DijkstraNearestSink runs Dijkstra from src and returns the first
// settled node whose nodeBalance is negative, or core.InvalidNodeID
// if none is reachable. It writes prev and distance exactly as
// DijkstraPath does.
//
// Precondition: every enabled arc with capacity[a] >= threshold must
// have a non-negative reduced cost; a violation fails with
// ErrNotOptimal before any search is performed.
//
// Complexity: O((V+E) log V).
func DijkstraNearestSink(g *core.Graph, src core.NodeId, nodeBalance, capacity []int64, threshold int64, cost, potential []int64, prev []core.ArcId, distance []int64) (core.NodeId, error) {
	if err := validateArrays(g, capacity, cost, potential, prev, distance); err != nil {
		return core.InvalidNodeID, err
	}
	if uint32(len(nodeBalance)) < g.MaxNodes() {
		return core.InvalidNodeID, ErrArrayLength
	}
	if uint32(src) >= g.MaxNodes() {
		return core.InvalidNodeID, ErrSourceOutOfRange
	}
	if threshold < 1 {
		return core.InvalidNodeID, ErrThresholdNonPositive
	}

	for a := core.ArcId(0); uint32(a) < g.MaxArcs(); a++ {
		if !g.ArcEnabled(a) || capacity[a] < threshold {
			continue
		}
		if reducedCost(cost, potential, a, g.Tail(a), g.Head(a)) < 0 {
			return core.InvalidNodeID, ErrNotOptimal
		}
	}

	for n := range distance {
		distance[n] = math.MaxInt64
	}
	for n := range prev {
		prev[n] = core.InvalidArcID
	}

	finalized := make([]bool, g.MaxNodes())
	pq := pqueue.New(g.MaxNodes())
	distance[src] = 0
	_ = pq.Update(uint32(src), 0)

	for !pq.Empty() {
		id, _ := pq.Top()
		_ = pq.Pop()
		n := core.NodeId(id)
		if finalized[n] {
			continue
		}
		finalized[n] = true

		if nodeBalance[n] < 0 {
			return n, nil
		}

		relax(g, n, capacity, threshold, cost, potential, finalized, distance, prev, pq)
	}

	return core.InvalidNodeID, nil
}
