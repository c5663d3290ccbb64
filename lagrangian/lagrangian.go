package lagrangian

import (
	"math"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/fcnfp"
	"github.com/katalvlaran/mcflow/flow"
)

func validate(g *core.Graph, excess, capacity []int64, problem Problem) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(problem.Cost) == 0 {
		return ErrNoConstraints
	}
	if len(problem.Bound) != problem.numSideConstraints() {
		return ErrBoundLength
	}
	if uint32(len(capacity)) < g.MaxArcs() {
		return ErrArrayLength
	}
	if uint32(len(excess)) < g.MaxNodes() {
		return ErrArrayLength
	}
	for k := range problem.Cost {
		if uint32(len(problem.Cost[k])) < g.MaxArcs() || uint32(len(problem.Charge[k])) < g.MaxArcs() {
			return ErrArrayLength
		}
	}

	return nil
}

// FlowSatisfiesConstraints counts how many of Problem's side
// constraints (k=1..len(Cost)-1) the flow currently encoded by
// capacity satisfies, i.e. how many k have
// flow.FlowCostWithCharge(g, capacity, Cost[k], Charge[k]) <= Bound[k-1].
//
// Complexity: O(numSideConstraints * MaxArcs).
func FlowSatisfiesConstraints(g *core.Graph, capacity []int64, problem Problem) int {
	count := 0
	for k := 1; k < len(problem.Cost); k++ {
		f := flow.FlowCostWithCharge(g, capacity, problem.Cost[k], problem.Charge[k])
		if f <= problem.Bound[k-1] {
			count++
		}
	}

	return count
}

// computeModifiedCost linearly combines every cost/charge function by
// multiplier into a single modified cost/charge pair, one Lagrangian
// round's substitute objective.
func computeModifiedCost(g *core.Graph, outCost, outCharge []int64, cost, charge [][]int64, multiplier []float64) {
	for a := core.ArcId(0); uint32(a) < g.MaxArcs(); a++ {
		if !g.ArcEnabled(a) || g.IsDual(a) {
			continue
		}
		dual := g.Dual(a)

		outCost[a] = 0
		outCharge[a] = 0
		for k := range cost {
			outCost[a] += int64(float64(cost[k][a]) * multiplier[k])
			outCharge[a] += int64(float64(charge[k][a]) * multiplier[k])
		}
		outCost[dual] = -outCost[a]
		outCharge[dual] = 0
	}
}

// SolveConstrained minimizes Problem's objective (Cost[0]/Charge[0])
// subject to capacity, the flow-conservation constraints encoded by
// excess, and the side constraints in Problem (Cost[k]/Charge[k] <=
// Bound[k-1] for k=1..len(Cost)-1), via Lagrangian relaxation: the
// unconstrained objective is solved first; if every side constraint
// already holds there, that is the answer; otherwise each round raises
// or lowers a per-constraint multiplier by a decaying step according to
// whether the constraint currently holds, folds all constraints into one modified cost via
// computeModifiedCost, and re-solves with fcnfp.SolveApproximate,
// keeping the best feasible (all side constraints satisfied) iterate
// seen. The loop stops early once the gap between the best feasible
// cost and the Lagrangian lower bound is within opts.Tolerance.
//
// Returns false, ErrInfeasible only if the unconstrained objective
// itself has no feasible flow; otherwise returns true with capacity
// holding the best solution found, which may not satisfy every side
// constraint if opts.MaxIterations was reached before one was found
// (matching fcnfp's "return the best-known solution" IterationLimit
// behavior, no error).
//
// Complexity: O(MaxIterations * cost of fcnfp.SolveApproximate).
func SolveConstrained(g *core.Graph, excess, capacity []int64, problem Problem, opts Options) (bool, error) {
	if err := validate(g, excess, capacity, problem); err != nil {
		return false, err
	}

	feasible, err := fcnfp.SolveApproximate(g, excess, capacity, problem.Cost[0], problem.Charge[0], fcnfp.Options{
		MaxIterations: opts.FirstRoundFCNFPIterations,
	})
	if err != nil {
		return false, err
	}
	if !feasible {
		return false, ErrInfeasible
	}

	numSide := problem.numSideConstraints()
	if numSide == 0 {
		return true, nil
	}

	solutionLowerBound := flow.FlowCostWithCharge(g, capacity, problem.Cost[0], problem.Charge[0])
	lowerBound0 := solutionLowerBound

	if FlowSatisfiesConstraints(g, capacity, problem) == numSide {
		return true, nil
	}

	numConstraints := len(problem.Cost)
	multiplier := make([]float64, numConstraints)
	modCost := make([]int64, g.MaxArcs())
	modCharge := make([]int64, g.MaxArcs())

	haveBest := false
	var bestSolution int64
	bestCapacity := make([]int64, g.MaxArcs())

	for i := 1; i < opts.MaxIterations; i++ {
		multiplier[0] = 1
		for k := 1; k < numConstraints; k++ {
			bound := problem.Bound[k-1]
			scaleFactor := float64(lowerBound0) / float64(bound)

			featureCost := flow.FlowCostWithCharge(g, capacity, problem.Cost[k], problem.Charge[k])
			delta := opts.SlackDelta
			if featureCost > bound {
				delta = opts.ViolationDelta
			}

			multiplier[k] += scaleFactor * delta / math.Pow(float64(i), opts.DecayExponent)
			if multiplier[k] < 0 {
				multiplier[k] = 0
			}
		}

		computeModifiedCost(g, modCost, modCharge, problem.Cost, problem.Charge, multiplier)

		solved, err := fcnfp.SolveApproximate(g, excess, capacity, modCost, modCharge, fcnfp.Options{
			MaxIterations: opts.FCNFPIterations,
		})
		if err != nil {
			return false, err
		}
		invariant(solved, "constrained subproblem became infeasible after the unconstrained solve already succeeded")

		totalCost := flow.FlowCostWithCharge(g, capacity, problem.Cost[0], problem.Charge[0])

		modTotalCost := flow.FlowCostWithCharge(g, capacity, modCost, modCharge)
		for k := 1; k < numConstraints; k++ {
			modTotalCost -= int64(multiplier[k] * float64(problem.Bound[k-1]))
		}
		if solutionLowerBound < modTotalCost {
			solutionLowerBound = modTotalCost
		}

		if FlowSatisfiesConstraints(g, capacity, problem) == numSide {
			if !haveBest || bestSolution > totalCost {
				bestSolution = totalCost
				haveBest = true
				copy(bestCapacity, capacity)
			}
		}

		if haveBest && solutionLowerBound != 0 &&
			float64(bestSolution-solutionLowerBound)/float64(solutionLowerBound) <= opts.Tolerance {
			break
		}
	}

	if haveBest {
		copy(capacity, bestCapacity)
	}

	return true, nil
}
