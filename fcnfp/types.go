// This file declares the sentinel errors and the Options struct for
// the fcnfp package.
//
// Errors:
//
//	ErrGraphNil                 - graph argument is nil.
//	ErrArrayLength              - a per-arc or per-node array is too short.
//	ErrTooManyArcsForBruteForce - more forward arcs than BruteForceArcLimit.
package fcnfp

import "errors"

// Sentinel errors for fcnfp operations.
var (
	// ErrGraphNil indicates a nil *core.Graph was passed in.
	ErrGraphNil = errors.New("fcnfp: graph is nil")

	// ErrArrayLength indicates a per-arc or per-node array is shorter
	// than MaxArcs/MaxNodes.
	ErrArrayLength = errors.New("fcnfp: array shorter than graph capacity")

	// ErrTooManyArcsForBruteForce indicates the graph has more
	// forward arcs than BruteForceArcLimit, making the 2^n enumeration
	// in SolveExact impractical.
	ErrTooManyArcsForBruteForce = errors.New("fcnfp: too many arcs for brute-force enumeration")
)

// BruteForceArcLimit caps the number of forward arcs SolveExact will
// enumerate subsets over. This is the original spec's arbitrary
// small-n cap, kept as a named constant rather than a magic number.
const BruteForceArcLimit = 20

// Options configures SolveApproximate.
//
// MaxIterations – upper bound on slope-scaling rounds.
// Verbose       – gate plain fmt.Printf diagnostics of each round's cost.
type Options struct {
	MaxIterations int
	Verbose       bool
}

// DefaultOptions returns a 100-iteration, non-verbose Options value.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 100,
		Verbose:       false,
	}
}

// invariant panics with msg if cond is false. Guards documented
// internal invariants, as opposed to the sentinel errors above which
// cover ordinary caller-input validation.
func invariant(cond bool, msg string) {
	if !cond {
		panic("fcnfp: " + msg)
	}
}
