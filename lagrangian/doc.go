// Package lagrangian solves the Fixed Charge Network Flow Problem
// under additional linear side constraints by Lagrangian relaxation:
// SolveConstrained first solves the unconstrained objective with
// fcnfp.SolveApproximate, then repeatedly folds the violated side
// constraints into a single modified cost/charge pair via multipliers
// whose update step decays as 1/i^Options.DecayExponent, and
// re-solves, keeping the best
// feasible iterate found and stopping once the gap to the Lagrangian
// lower bound falls within Options.Tolerance.
package lagrangian
