package costscaling

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mcflow/core"
)

func validate(g *core.Graph, excess, capacity []int64) error {
	if g == nil {
		return ErrGraphNil
	}
	if uint32(len(capacity)) < g.MaxArcs() {
		return ErrArrayLength
	}
	if uint32(len(excess)) < g.MaxNodes() {
		return ErrArrayLength
	}

	return nil
}

// network bundles the mutable state shared by every push/relabel
// helper: the graph, the caller's residual-capacity and excess
// arrays (mutated in place), node potentials, the per-node
// current-arc cursor used during discharge, and (MCF phase only) the
// scaled per-arc cost.
type network struct {
	g          *core.Graph
	residual   []int64
	currentArc []core.ArcId
	excess     []int64
	potential  []int64
	cost       []int64
}

// push sends flow units of flow across arc a, updating its residual
// capacity and its dual's, and the excess of both endpoints.
func (gt *network) push(a core.ArcId, flow int64) {
	dual := gt.g.Dual(a)
	from := gt.g.Tail(a)
	to := gt.g.Head(a)

	gt.residual[a] -= flow
	gt.residual[dual] += flow
	gt.excess[from] -= flow
	gt.excess[to] += flow
}

// reducedCost computes the Goldberg-Tarjan convention reduced cost of
// arc a: cost[a] + potential[head(a)] - potential[tail(a)]. This is
// the mirror image of the SSP convention used by the dijkstra/flow
// packages and must never be mixed with it.
func (gt *network) reducedCost(a core.ArcId) int64 {
	return gt.cost[a] + gt.potential[gt.g.Head(a)] - gt.potential[gt.g.Tail(a)]
}

// labelDischarge is the push/relabel auxiliary used by Feasible: it
// treats potential as an integer label bounded by maxLabel and pushes
// flow downhill (from a higher label to a lower one), relabeling n
// when no downhill residual arc remains.
func labelDischarge(n core.NodeId, gt *network, active *activeSet, maxLabel int64) {
	for gt.potential[n] < maxLabel && gt.excess[n] > 0 {
		minLabel := int64(math.MaxInt64)

		for a := gt.g.AdjacencyFirst(n); a != core.InvalidArcID && gt.excess[n] > 0; a = gt.g.AdjacencyNext(a) {
			if gt.residual[a] <= 0 {
				continue
			}
			next := gt.g.Head(a)

			if gt.potential[n] > gt.potential[next] {
				flow := gt.excess[n]
				if gt.residual[a] < flow {
					flow = gt.residual[a]
				}
				oldExcess := gt.excess[next]
				gt.push(a, flow)

				if gt.excess[next] > 0 && oldExcess <= 0 && gt.potential[next] < maxLabel {
					active.insert(uint32(next))
				}
			} else if gt.potential[next] < minLabel {
				minLabel = gt.potential[next]
			}
		}

		if gt.excess[n] > 0 {
			if minLabel < math.MaxInt64 && minLabel >= gt.potential[n] {
				gt.potential[n] = minLabel + 1
			} else {
				gt.potential[n]++
			}
		}
	}
}

// Feasible runs a Goldberg-Tarjan push/relabel variant of max-flow
// labelling to find any flow satisfying excess: nodes with positive
// excess push flow downhill (by label) towards nodes with negative
// excess. On success every entry of excess is zero and capacity
// encodes the resulting residual network.
//
// Complexity: O(V^2 * E) worst case, the standard push/relabel bound.
func Feasible(g *core.Graph, excess, capacity []int64, opts ...Option) (bool, error) {
	if err := validate(g, excess, capacity); err != nil {
		return false, err
	}
	o := resolveOptions(opts)

	gt := &network{
		g:         g,
		residual:  capacity,
		excess:    excess,
		potential: make([]int64, g.MaxNodes()),
	}

	maxLabel := int64(g.MaxNodes())
	active := newActiveSet(o.ActiveSet)
	for n := core.NodeId(0); uint32(n) < g.MaxNodes(); n++ {
		if gt.excess[n] > 0 {
			gt.potential[n] = 1
			active.insert(uint32(n))
		}
	}

	for !active.empty() {
		n := core.NodeId(active.pop())
		labelDischarge(n, gt, active, maxLabel)
	}

	solved := true
	for n := core.NodeId(0); uint32(n) < g.MaxNodes(); n++ {
		if gt.excess[n] != 0 {
			solved = false
			break
		}
	}

	return solved, nil
}

// hasAdmissibleArcs reports whether n has a residual arc with
// negative reduced cost reachable from its current-arc cursor onward,
// advancing the cursor to it if found. Used by the lookahead
// heuristic to relabel a node before flow is pushed into it.
func (gt *network) hasAdmissibleArcs(n core.NodeId) bool {
	for a := gt.currentArc[n]; a != core.InvalidArcID; a = gt.g.AdjacencyNext(a) {
		if gt.residual[a] > 0 && gt.reducedCost(a) < 0 {
			gt.currentArc[n] = a

			return true
		}
	}

	return false
}

// relabel raises n's potential by epsilon via the max-relabel
// heuristic: it searches every residual out-arc for the smallest
// cost + potential[head], and jumps straight to that value plus
// epsilon when no admissible arc is found along the way, instead of
// the conservative += epsilon fallback.
func (gt *network) relabel(n core.NodeId, epsilon int64) {
	gt.potential[n] += epsilon
	gt.currentArc[n] = gt.g.AdjacencyFirst(n)

	smallestCost := int64(math.MaxInt64)
	firstResidualArc := core.InvalidArcID
	for a := gt.g.AdjacencyFirst(n); a != core.InvalidArcID; a = gt.g.AdjacencyNext(a) {
		if gt.residual[a] <= 0 {
			continue
		}
		next := gt.g.Head(a)
		rcost := gt.cost[a] + gt.potential[next]

		if smallestCost == math.MaxInt64 {
			firstResidualArc = a
		}
		if rcost < gt.potential[n] {
			gt.currentArc[n] = a

			return
		}
		if rcost < smallestCost {
			smallestCost = rcost
		}
	}

	if smallestCost < math.MaxInt64 {
		gt.potential[n] = smallestCost + epsilon
		gt.currentArc[n] = firstResidualArc
	}
}

// discharge pushes n's excess along admissible residual arcs starting
// at its current-arc cursor, applying the lookahead heuristic before
// pushing into a deficit-free node with no admissible outgoing arc,
// and relabels n whenever the scan reaches the end of its adjacency
// list with excess still left to push. It
// returns the number of relabels performed, which the caller uses to
// decide when to run setRelabel.
func (gt *network) discharge(active *activeSet, epsilon int64, n core.NodeId) int {
	numRelabels := 0

	for gt.excess[n] > 0 {
		var a core.ArcId
		for a = gt.currentArc[n]; a != core.InvalidArcID && gt.excess[n] > 0; a = gt.g.AdjacencyNext(a) {
			next := gt.g.Head(a)
			if gt.residual[a] <= 0 {
				continue
			}
			rcost := gt.reducedCost(a)
			if rcost >= 0 {
				continue
			}

			flow := gt.excess[n]
			if gt.residual[a] < flow {
				flow = gt.residual[a]
			}
			invariant(flow > 0, "non-positive push amount on admissible arc")

			oldExcess := gt.excess[next]
			if oldExcess >= 0 && !gt.hasAdmissibleArcs(next) {
				numRelabels++
				gt.relabel(next, epsilon)

				rcost = gt.reducedCost(a)
				if rcost >= 0 {
					continue
				}
			}

			gt.push(a, flow)
			if gt.excess[next] > 0 && oldExcess <= 0 {
				active.insert(uint32(next))
			}
			if gt.excess[n] == 0 {
				break
			}
		}
		gt.currentArc[n] = a

		if gt.excess[n] > 0 {
			numRelabels++
			gt.relabel(n, epsilon)
		}
	}

	return numRelabels
}

// setRelabel applies the set-relabel heuristic: a reverse BFS from
// every deficit node along admissible residual arcs collects the set
// of nodes that can still reach a sink. If that set's total excess is
// strictly negative, every node outside it is relabeled by +epsilon,
// which lets discharge make forward progress instead of thrashing. It
// returns whether a relabel actually happened.
func setRelabel(gt *network, epsilon int64) bool {
	maxNodes := gt.g.MaxNodes()
	visited := make([]bool, maxNodes)
	pending := make([]core.NodeId, 0, maxNodes)

	var setExcess int64
	for n := core.NodeId(0); uint32(n) < maxNodes; n++ {
		if gt.excess[n] < 0 {
			visited[n] = true
			pending = append(pending, n)
			setExcess += gt.excess[n]
		}
	}

	for len(pending) > 0 && setExcess < 0 {
		n := pending[0]
		pending = pending[1:]

		for a := gt.g.AdjacencyFirst(n); a != core.InvalidArcID; a = gt.g.AdjacencyNext(a) {
			dual := gt.g.Dual(a)
			next := gt.g.Head(a)

			if gt.residual[dual] <= 0 || gt.reducedCost(dual) >= 0 {
				continue
			}
			if !visited[next] {
				visited[next] = true
				pending = append(pending, next)
				setExcess += gt.excess[next]
			}
		}
	}
	invariant(setExcess <= 0, "set-relabel found positive excess in deficit closure")

	if setExcess == 0 {
		return false
	}

	didRelabel := false
	for n := core.NodeId(0); uint32(n) < maxNodes; n++ {
		if !visited[n] {
			gt.potential[n] += epsilon
			didRelabel = true
			gt.currentArc[n] = gt.g.AdjacencyFirst(n)
		}
	}

	return didRelabel
}

// refine saturates every negative-reduced-cost arc, then discharges
// every node left with positive excess until none remains, running
// setRelabel whenever the cumulative relabel count since the last
// pass reaches MaxNodes.
func refine(gt *network, epsilon int64, o Options) {
	maxNodes := gt.g.MaxNodes()
	maxArcs := gt.g.MaxArcs()

	for n := core.NodeId(0); uint32(n) < maxNodes; n++ {
		gt.currentArc[n] = gt.g.AdjacencyFirst(n)
	}

	for a := core.ArcId(0); uint32(a) < maxArcs; a++ {
		if !gt.g.ArcEnabled(a) {
			continue
		}
		if flow := gt.residual[a]; gt.reducedCost(a) < 0 && flow > 0 {
			gt.push(a, flow)
		}
	}

	active := newActiveSet(o.ActiveSet)
	for n := core.NodeId(0); uint32(n) < maxNodes; n++ {
		if gt.excess[n] > 0 {
			active.insert(uint32(n))
		}
	}

	numRelabels := 0
	for !active.empty() {
		if numRelabels >= int(maxNodes) {
			numRelabels = 0
			for setRelabel(gt, epsilon) {
			}
		}

		n := core.NodeId(active.pop())
		numRelabels += gt.discharge(active, epsilon, n)
	}
}

// circulation drives a feasible flow to optimality for the scaled
// costs by running refine at a strictly decreasing sequence of
// epsilon values until epsilon reaches 1, at which point the
// complementary-slackness condition holds for the unscaled costs too.
func circulation(gt *network, epsilon int64, o Options) {
	for epsilon > 1 {
		epsilon /= o.RefinementFactor
		if epsilon < 1 {
			epsilon = 1
		}
		if o.Verbose {
			fmt.Printf("costscaling: refine at epsilon=%d\n", epsilon)
		}
		refine(gt, epsilon, o)
	}
}

// MCF finds the Minimum-Cost Flow satisfying excess via Goldberg and
// Tarjan's cost-scaling push/relabel: it first establishes any
// feasible flow via Feasible, then runs epsilon-scaling circulation
// refinement on the scaled integer costs until epsilon reaches 1,
// which is exact for int64 costs within range.
//
// Reduced-cost convention: cost[a] + potential[head(a)] -
// potential[tail(a)] (see the dijkstra/flow packages for the opposite
// SSP convention).
//
// Complexity: O(V^2 * E * log(V*C)) in the worst case, where C is the
// largest arc cost.
func MCF(g *core.Graph, excess, capacity, cost []int64, opts ...Option) (bool, error) {
	if err := validate(g, excess, capacity); err != nil {
		return false, err
	}
	if uint32(len(cost)) < g.MaxArcs() {
		return false, ErrArrayLength
	}
	o := resolveOptions(opts)

	feasible, err := Feasible(g, excess, capacity, opts...)
	if err != nil {
		return false, err
	}
	if !feasible {
		return false, ErrInfeasible
	}

	scaleFactor := int64(g.MaxNodes())
	var maxCost int64
	scaledCost := make([]int64, g.MaxArcs())
	for a := core.ArcId(0); uint32(a) < g.MaxArcs(); a++ {
		if !g.ArcEnabled(a) {
			continue
		}
		if cost[a] > maxCost {
			maxCost = cost[a]
		}
		scaledCost[a] = cost[a] * scaleFactor
	}
	if float64(maxCost)*float64(scaleFactor)*float64(scaleFactor) > math.MaxInt64 {
		return false, ErrCostOverflow
	}

	gt := &network{
		g:          g,
		residual:   capacity,
		currentArc: make([]core.ArcId, g.MaxNodes()),
		excess:     excess,
		potential:  make([]int64, g.MaxNodes()),
		cost:       scaledCost,
	}

	circulation(gt, maxCost*scaleFactor, o)

	return true, nil
}
