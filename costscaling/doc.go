// Package costscaling implements the Goldberg-Tarjan cost-scaling
// algorithm for Minimum-Cost Flow: Feasible checks and establishes
// feasibility via push/relabel on integer node labels, and MCF runs
// epsilon-scaling circulation refinement on top of a feasible flow to
// reach an optimal one.
//
// MCF uses the opposite reduced-cost sign convention from the
// dijkstra package: c̄(a) = cost[a] + potential[head(a)] -
// potential[tail(a)]. The two conventions must never be mixed within
// a single computation.
package costscaling
