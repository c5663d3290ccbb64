package flow

import (
	"github.com/katalvlaran/mcflow/bfs"
	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/dijkstra"
)

func validate(g *core.Graph, capacity []int64, src, dst core.NodeId, amount int64) error {
	if g == nil {
		return ErrGraphNil
	}
	if uint32(len(capacity)) < g.MaxArcs() {
		return ErrArrayLength
	}
	if uint32(src) >= g.MaxNodes() {
		return ErrSourceOutOfRange
	}
	if uint32(dst) >= g.MaxNodes() {
		return ErrDestOutOfRange
	}
	if amount < 0 {
		return ErrNegativeAmount
	}

	return nil
}

// SimpleFeasibleFlow repeatedly BFS-augments from src to dst, pushing
// min(remaining, bottleneck) each round until amount is driven to
// zero or no augmenting path remains. It returns true iff the full
// amount was pushed.
//
// Complexity: O(amount-independent rounds * (V+E)), bounded by the
// number of distinct bottlenecks encountered.
func SimpleFeasibleFlow(g *core.Graph, src, dst core.NodeId, capacity []int64, amount int64) (bool, error) {
	if err := validate(g, capacity, src, dst, amount); err != nil {
		return false, err
	}

	prev := make([]core.ArcId, g.MaxNodes())
	remaining := amount
	for remaining > 0 {
		reached, err := bfs.BFSPath(g, src, dst, capacity, 1, prev)
		if err != nil {
			return false, err
		}
		if !reached {
			break
		}
		bottleneck, err := AugmentingFlowCapacity(g, src, dst, capacity, prev)
		if err != nil {
			return false, err
		}

		f := remaining
		if bottleneck < f {
			f = bottleneck
		}
		if err := AugmentFlow(g, src, dst, prev, capacity, nil, f); err != nil {
			return false, err
		}
		remaining -= f
	}

	return remaining == 0, nil
}

// MCFRefinement drives excess to zero everywhere via successive
// shortest paths. On success, excess[n] = 0 for every node,
// capacity[a] >= 0 for every arc, and the complementary-slackness
// condition (negative reduced cost implies zero residual capacity)
// holds for every enabled arc.
//
// Procedure: first saturate every enabled arc with negative reduced
// cost (this restores complementary slackness but may create
// excess); then, for every node with positive excess, repeatedly
// find the nearest deficit node via dijkstra.DijkstraNearestSink and
// augment, shifting every node's potential after each augmentation
// so traversed arcs keep non-negative reduced costs.
//
// Complexity: O(V * (V+E) log V) in the worst case.
func MCFRefinement(g *core.Graph, excess, capacity, cost, potential []int64) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if uint32(len(capacity)) < g.MaxArcs() || uint32(len(cost)) < g.MaxArcs() {
		return false, ErrArrayLength
	}
	if uint32(len(excess)) < g.MaxNodes() || uint32(len(potential)) < g.MaxNodes() {
		return false, ErrArrayLength
	}

	var totalExcess int64
	for _, e := range excess {
		totalExcess += e
	}
	if totalExcess != 0 {
		return false, ErrInfeasible
	}

	for a := core.ArcId(0); uint32(a) < g.MaxArcs(); a++ {
		if !g.ArcEnabled(a) {
			continue
		}
		rc := cost[a] - potential[g.Tail(a)] + potential[g.Head(a)]
		if rc < 0 && capacity[a] > 0 {
			SendFlow(g, a, capacity[a], capacity, excess)
		}
	}

	prev := make([]core.ArcId, g.MaxNodes())
	distance := make([]int64, g.MaxNodes())
	for n := core.NodeId(0); uint32(n) < g.MaxNodes(); n++ {
		for excess[n] > 0 {
			sink, err := dijkstra.DijkstraNearestSink(g, n, excess, capacity, 1, cost, potential, prev, distance)
			if err != nil {
				return false, err
			}
			if sink == core.InvalidNodeID {
				return false, ErrInfeasible
			}

			bottleneck, err := AugmentingFlowCapacity(g, n, sink, capacity, prev)
			if err != nil {
				return false, err
			}
			f := excess[n]
			if -excess[sink] < f {
				f = -excess[sink]
			}
			if bottleneck < f {
				f = bottleneck
			}
			if err := AugmentFlow(g, n, sink, prev, capacity, excess, f); err != nil {
				return false, err
			}

			for m := core.NodeId(0); uint32(m) < g.MaxNodes(); m++ {
				d := distance[sink]
				if distance[m] < d {
					d = distance[m]
				}
				potential[m] -= d
			}
		}
	}

	return true, nil
}

// SimpleMCF wraps MCFRefinement by setting excess[src] = amount,
// excess[dst] = -amount, and starting from zero potentials.
//
// Complexity: see MCFRefinement.
func SimpleMCF(g *core.Graph, src, dst core.NodeId, capacity []int64, amount int64, cost []int64) (bool, error) {
	if err := validate(g, capacity, src, dst, amount); err != nil {
		return false, err
	}

	excess := make([]int64, g.MaxNodes())
	potential := make([]int64, g.MaxNodes())
	excess[src] = amount
	excess[dst] = -amount

	return MCFRefinement(g, excess, capacity, cost, potential)
}
