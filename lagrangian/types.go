// This file declares the sentinel errors, Options, and Problem types
// for the lagrangian package.
//
// Errors:
//
//	ErrGraphNil        - graph argument is nil.
//	ErrArrayLength     - a per-arc or per-node array is too short.
//	ErrNoConstraints   - Problem.Cost has no entries (not even the objective).
//	ErrBoundLength     - Problem.Bound does not cover every side constraint.
//	ErrInfeasible      - the unconstrained objective itself has no feasible flow.
package lagrangian

import "errors"

// Sentinel errors for lagrangian operations.
var (
	// ErrGraphNil indicates a nil *core.Graph was passed in.
	ErrGraphNil = errors.New("lagrangian: graph is nil")

	// ErrArrayLength indicates a per-arc or per-node array is shorter
	// than MaxArcs/MaxNodes.
	ErrArrayLength = errors.New("lagrangian: array shorter than graph capacity")

	// ErrNoConstraints indicates Problem.Cost is empty; every Problem
	// needs at least the objective at index 0.
	ErrNoConstraints = errors.New("lagrangian: problem has no cost functions")

	// ErrBoundLength indicates Problem.Bound's length does not equal
	// len(Problem.Cost)-1, the number of side constraints.
	ErrBoundLength = errors.New("lagrangian: bound count does not match side constraint count")

	// ErrInfeasible indicates the unconstrained fixed-charge objective
	// itself has no feasible flow; side constraints are never reached.
	ErrInfeasible = errors.New("lagrangian: no feasible flow exists for the objective")
)

// Options configures SolveConstrained's Lagrangian relaxation loop.
//
// Tolerance                - stop once (best-LB)/LB <= Tolerance.
// MaxIterations             - upper bound on multiplier-update rounds.
// DecayExponent             - multiplier step decays as 1/i^DecayExponent.
// ViolationDelta            - step direction applied when a constraint
//                              is violated (increases its multiplier).
// SlackDelta                - step direction applied when a constraint
//                              already holds (relaxes its multiplier).
// FCNFPIterations           - slope-scaling iteration budget for every
//                              round after the first.
// FirstRoundFCNFPIterations - slope-scaling iteration budget for the
//                              initial unconstrained solve.
type Options struct {
	Tolerance                 float64
	MaxIterations             int
	DecayExponent             float64
	ViolationDelta            float64
	SlackDelta                float64
	FCNFPIterations           int
	FirstRoundFCNFPIterations int
}

// DefaultOptions returns the original solver's hard-coded step
// schedule: a 10% tolerance, 0.5 decay exponent, +2/-1 multiplier
// steps, 10 slope-scaling iterations per round after a 100-iteration
// first round.
func DefaultOptions() Options {
	return Options{
		Tolerance:                 0.10,
		MaxIterations:             100,
		DecayExponent:             0.5,
		ViolationDelta:            2,
		SlackDelta:                -1,
		FCNFPIterations:           10,
		FirstRoundFCNFPIterations: 100,
	}
}

// Problem bundles an objective and any number of side constraints
// sharing one graph. Cost[0]/Charge[0] are the objective's per-arc
// proportional and fixed costs; Cost[k]/Charge[k] for k >= 1 are the
// k-th side constraint's cost functions, bounded by Bound[k-1] (Bound
// has no slot for the objective, which carries no bound of its own).
type Problem struct {
	Cost, Charge [][]int64
	Bound        []int64
}

// numSideConstraints returns len(Cost)-1, the count of bounded side
// constraints (excluding the objective at index 0).
func (p Problem) numSideConstraints() int {
	return len(p.Cost) - 1
}

// invariant panics with msg if cond is false. Guards documented
// internal invariants, as opposed to the sentinel errors above which
// cover ordinary caller-input validation.
func invariant(cond bool, msg string) {
	if !cond {
		panic("lagrangian: " + msg)
	}
}
