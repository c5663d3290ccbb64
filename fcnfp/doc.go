// Package fcnfp implements an approximate solver for the Fixed
// Charge Network Flow Problem (minimizing a proportional cost plus a
// per-arc activation charge incurred whenever that arc carries flow)
// via dynamic slope scaling: SolveApproximate repeatedly linearizes
// the charge into a per-arc unit cost derived from the previous
// iteration's flow, and re-solves with flow.MCFRefinement until the
// residual capacity stops changing.
//
// SolveExact is a brute-force reference solver over every 2^n
// arc-active/inactive subset, capped at BruteForceArcLimit arcs; it
// exists to check SolveApproximate's solution quality on small
// fixtures, not as a production entry point.
package fcnfp
