package flow

import "github.com/katalvlaran/mcflow/core"

// SendFlow pushes f units of flow across arc, updating its residual
// capacity and its dual's. If nodeBalance is non-nil, it is also
// updated at both endpoints.
//
// Complexity: O(1).
func SendFlow(g *core.Graph, arc core.ArcId, f int64, capacity []int64, nodeBalance []int64) {
	capacity[arc] -= f
	capacity[g.Dual(arc)] += f
	if nodeBalance != nil {
		nodeBalance[g.Tail(arc)] -= f
		nodeBalance[g.Head(arc)] += f
	}
}

// AugmentFlow walks prev backward from dst to src, calling SendFlow
// with f on every arc along the way. If excess is non-nil, it is
// updated at every arc's endpoints.
//
// The walk is guaranteed to terminate within MaxNodes hops; a longer
// trace means prev does not encode a simple path to src and is
// reported as ErrCorruptPrev.
//
// Complexity: O(MaxNodes) worst case.
func AugmentFlow(g *core.Graph, src, dst core.NodeId, prev []core.ArcId, capacity []int64, excess []int64, f int64) error {
	n := dst
	for steps := uint32(0); n != src; steps++ {
		if steps >= g.MaxNodes() {
			return ErrCorruptPrev
		}
		a := prev[n]
		if a == core.InvalidArcID {
			return ErrCorruptPrev
		}
		SendFlow(g, a, f, capacity, excess)
		n = g.Tail(a)
	}

	return nil
}

// AugmentingFlowCapacity returns the minimum residual capacity along
// the path from src to dst reconstructed by walking prev backward
// from dst. The result is always positive for a valid path; a trace
// exceeding MaxNodes hops is reported as ErrCorruptPrev.
//
// Complexity: O(MaxNodes) worst case.
func AugmentingFlowCapacity(g *core.Graph, src, dst core.NodeId, capacity []int64, prev []core.ArcId) (int64, error) {
	var bottleneck int64 = -1
	n := dst
	for steps := uint32(0); n != src; steps++ {
		if steps >= g.MaxNodes() {
			return -1, ErrCorruptPrev
		}
		a := prev[n]
		if a == core.InvalidArcID {
			return -1, ErrCorruptPrev
		}
		if bottleneck == -1 || capacity[a] < bottleneck {
			bottleneck = capacity[a]
		}
		n = g.Tail(a)
	}

	return bottleneck, nil
}

// NodeBalance returns the residual imbalance of node n: the sum of
// residual capacities of dual arcs in its adjacency list, minus the
// sum of current flow (the dual's residual capacity) on forward arcs
// in its adjacency list.
//
// Complexity: O(deg(n)).
func NodeBalance(g *core.Graph, n core.NodeId, capacity []int64) int64 {
	var balance int64
	for a := g.AdjacencyFirst(n); a != core.InvalidArcID; a = g.AdjacencyNext(a) {
		if g.IsDual(a) {
			balance += capacity[a]
		} else {
			balance -= capacity[g.Dual(a)]
		}
	}

	return balance
}

// FlowCost sums cost[a] * currentFlow(a) over every enabled forward
// arc, where currentFlow(a) = capacity[dual(a)].
//
// Complexity: O(MaxArcs).
func FlowCost(g *core.Graph, capacity, cost []int64) int64 {
	var total int64
	for a := core.ArcId(0); uint32(a) < g.MaxArcs(); a++ {
		if g.IsDual(a) || !g.ArcEnabled(a) {
			continue
		}
		total += capacity[g.Dual(a)] * cost[a]
	}

	return total
}

// FlowCostWithCharge adds charge[a] to FlowCost's sum for every
// enabled forward arc whose current flow is positive.
//
// Complexity: O(MaxArcs).
func FlowCostWithCharge(g *core.Graph, capacity, cost, charge []int64) int64 {
	total := FlowCost(g, capacity, cost)
	for a := core.ArcId(0); uint32(a) < g.MaxArcs(); a++ {
		if g.IsDual(a) || !g.ArcEnabled(a) {
			continue
		}
		if capacity[g.Dual(a)] > 0 {
			total += charge[a]
		}
	}

	return total
}
