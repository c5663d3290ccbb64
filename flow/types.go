// This file declares the sentinel errors the flow package can
// return.
//
// Errors:
//
//	ErrGraphNil          - graph argument is nil.
//	ErrArrayLength       - a per-arc or per-node array is too short.
//	ErrSourceOutOfRange  - src >= MaxNodes.
//	ErrDestOutOfRange    - dst >= MaxNodes.
//	ErrNegativeAmount    - amount < 0.
//	ErrCorruptPrev       - a prev trace exceeded MaxNodes hops.
//	ErrInfeasible        - total excess is nonzero, or no augmenting
//	                       path exists for a node with positive excess.
package flow

import "errors"

var (
	// ErrGraphNil indicates a nil *core.Graph was passed in.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrArrayLength indicates a per-arc or per-node array is shorter
	// than MaxArcs/MaxNodes.
	ErrArrayLength = errors.New("flow: array shorter than graph capacity")

	// ErrSourceOutOfRange indicates src >= MaxNodes.
	ErrSourceOutOfRange = errors.New("flow: source out of range")

	// ErrDestOutOfRange indicates dst >= MaxNodes.
	ErrDestOutOfRange = errors.New("flow: destination out of range")

	// ErrNegativeAmount indicates a negative flow amount was requested.
	ErrNegativeAmount = errors.New("flow: amount must be non-negative")

	// ErrCorruptPrev indicates walking a prev trace exceeded MaxNodes
	// hops without reaching src, which can only happen if prev does
	// not encode a simple path.
	ErrCorruptPrev = errors.New("flow: prev trace exceeds MaxNodes hops")

	// ErrInfeasible indicates MCFRefinement cannot balance every
	// node's excess to zero.
	ErrInfeasible = errors.New("flow: no feasible flow exists")
)
