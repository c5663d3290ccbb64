package fcnfp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/flow"
)

func validate(g *core.Graph, excess, capacity, cost, charge []int64) error {
	if g == nil {
		return ErrGraphNil
	}
	if uint32(len(capacity)) < g.MaxArcs() || uint32(len(cost)) < g.MaxArcs() || uint32(len(charge)) < g.MaxArcs() {
		return ErrArrayLength
	}
	if uint32(len(excess)) < g.MaxNodes() {
		return ErrArrayLength
	}

	return nil
}

// initialModifiedCost computes the first slope-scaling iteration's
// linearized cost: c'[a] = c[a] + charge[a]/x when arc a already
// carries flow x = capacity[dual(a)] > 0, otherwise c[a] +
// charge[a]/cap0(a), where cap0(a) is the initial total capacity
// (falling back to 1 when that is zero).
func initialModifiedCost(g *core.Graph, capacity, cost, charge, modCost, lastNonzero []int64) {
	for a := core.ArcId(0); uint32(a) < g.MaxArcs(); a++ {
		if !g.ArcEnabled(a) || g.IsDual(a) {
			continue
		}
		dual := g.Dual(a)

		cap0 := capacity[a] + capacity[dual]
		if cap0 == 0 {
			cap0 = 1
		}
		x := capacity[dual]

		if x > 0 {
			modCost[a] = cost[a] + charge[a]/x
		} else {
			modCost[a] = cost[a] + charge[a]/cap0
		}
		lastNonzero[a] = cost[a]
		modCost[dual] = -modCost[a]
	}
}

// updateModifiedCost re-linearizes every arc's cost from the flow
// left by the previous round: x = capacity[dual(a)] is the current
// flow; when x > 0 the cost is re-derived and remembered in
// lastNonzero, otherwise the last remembered nonzero-flow cost is
// reused verbatim.
func updateModifiedCost(g *core.Graph, capacity, cost, charge, modCost, lastNonzero []int64) {
	for a := core.ArcId(0); uint32(a) < g.MaxArcs(); a++ {
		if !g.ArcEnabled(a) || g.IsDual(a) {
			continue
		}
		dual := g.Dual(a)
		x := capacity[dual]

		if x > 0 {
			modCost[a] = cost[a] + charge[a]/x
			lastNonzero[a] = modCost[a]
		} else {
			modCost[a] = lastNonzero[a]
		}
		modCost[dual] = -modCost[a]
	}
}

func capacitiesEqual(a, b []int64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// SolveApproximate approximately minimizes the fixed-charge network
// flow objective sum(cost[a]*x[a] + charge[a]*[x[a]>0]) subject to
// capacity and the flow-conservation constraints encoded by excess,
// via Kim and Pardalos's dynamic slope scaling: each round
// linearizes the charge into a per-arc unit cost derived from the
// previous round's flow and re-solves with flow.MCFRefinement, until
// the residual capacity stops changing or MaxIterations is reached.
//
// Returns true iff at least one feasible iteration completed; on a
// true return, capacity and excess hold the best flow found so far
// even if MaxIterations was reached before convergence (the
// IterationLimit case documented in this module's error design: no
// error, the best-known solution is already written back).
//
// Complexity: O(MaxIterations * cost of flow.MCFRefinement).
func SolveApproximate(g *core.Graph, excess, capacity, cost, charge []int64, opts Options) (bool, error) {
	if err := validate(g, excess, capacity, cost, charge); err != nil {
		return false, err
	}

	maxArcs := g.MaxArcs()
	potential := make([]int64, g.MaxNodes())
	modCost := make([]int64, maxArcs)
	prevCapacity := make([]int64, maxArcs)
	lastNonzero := make([]int64, maxArcs)

	initialModifiedCost(g, capacity, cost, charge, modCost, lastNonzero)

	solved := false
	var bestCost int64
	bestCapacity := make([]int64, maxArcs)
	for i := 0; i < opts.MaxIterations; i++ {
		_, err := flow.MCFRefinement(g, excess, capacity, modCost, potential)
		if err != nil {
			if errors.Is(err, flow.ErrInfeasible) {
				invariant(i == 0, "FCNFP subproblem became infeasible after an earlier round succeeded")

				return false, nil
			}

			return false, err
		}

		roundCost := flow.FlowCostWithCharge(g, capacity, cost, charge)
		if !solved || roundCost < bestCost {
			bestCost = roundCost
			copy(bestCapacity, capacity)
		}
		solved = true
		if opts.Verbose {
			fmt.Printf("fcnfp: round %d cost=%d\n", i, roundCost)
		}

		if capacitiesEqual(prevCapacity, capacity) {
			break
		}
		copy(prevCapacity, capacity)
		updateModifiedCost(g, capacity, cost, charge, modCost, lastNonzero)
	}

	if solved {
		copy(capacity, bestCapacity)
	}

	return solved, nil
}

// SolveExact is a brute-force reference solver: it enumerates every
// subset of the graph's forward arcs, solves the linear-cost MCF
// restricted to each subset (arcs outside the subset are disabled),
// and keeps the cheapest feasible result under the true
// charge-inclusive objective. It exists to check SolveApproximate's
// quality on small fixtures and fails with
// ErrTooManyArcsForBruteForce beyond BruteForceArcLimit forward arcs.
//
// Complexity: O(2^n * cost of flow.MCFRefinement), n = number of
// forward arcs.
func SolveExact(g *core.Graph, excess, capacity, cost, charge []int64) (bool, error) {
	if err := validate(g, excess, capacity, cost, charge); err != nil {
		return false, err
	}

	var arcs []core.ArcId
	for a := core.ArcId(0); uint32(a) < g.MaxArcs(); a++ {
		if g.ArcEnabled(a) && !g.IsDual(a) {
			arcs = append(arcs, a)
		}
	}
	if len(arcs) > BruteForceArcLimit {
		return false, ErrTooManyArcsForBruteForce
	}

	origCapacity := append([]int64(nil), capacity...)
	origExcess := append([]int64(nil), excess...)

	haveBest := false
	var bestCost int64
	bestCapacity := make([]int64, g.MaxArcs())

	n := len(arcs)
	for mask := 0; mask < (1 << uint(n)); mask++ {
		trialCapacity := append([]int64(nil), origCapacity...)
		for i, a := range arcs {
			if mask&(1<<uint(i)) == 0 {
				trialCapacity[a] = 0
				trialCapacity[g.Dual(a)] = 0
			}
		}
		trialExcess := append([]int64(nil), origExcess...)
		potential := make([]int64, g.MaxNodes())

		solved, err := flow.MCFRefinement(g, trialExcess, trialCapacity, cost, potential)
		if err != nil || !solved {
			continue
		}

		total := flow.FlowCostWithCharge(g, trialCapacity, cost, charge)
		if !haveBest || total < bestCost {
			haveBest = true
			bestCost = total
			copy(bestCapacity, trialCapacity)
		}
	}

	if haveBest {
		copy(capacity, bestCapacity)
		for n := range excess {
			excess[n] = 0
		}
	}

	return haveBest, nil
}
