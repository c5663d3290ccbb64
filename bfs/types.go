// This file declares the sentinel errors BFSPath can return.
//
// Errors:
//
//	ErrGraphNil          - graph argument is nil.
//	ErrCapacityLength    - capacity slice shorter than MaxArcs.
//	ErrPrevLength        - prev slice shorter than MaxNodes.
//	ErrSourceOutOfRange  - src >= MaxNodes.
//	ErrDestOutOfRange    - dst >= MaxNodes.
//	ErrThresholdNonPositive - threshold < 1.
package bfs

import "errors"

var (
	// ErrGraphNil indicates a nil *core.Graph was passed to BFSPath.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrCapacityLength indicates capacity is shorter than MaxArcs.
	ErrCapacityLength = errors.New("bfs: capacity slice too short")

	// ErrPrevLength indicates prev is shorter than MaxNodes.
	ErrPrevLength = errors.New("bfs: prev slice too short")

	// ErrSourceOutOfRange indicates src >= MaxNodes.
	ErrSourceOutOfRange = errors.New("bfs: source out of range")

	// ErrDestOutOfRange indicates dst >= MaxNodes.
	ErrDestOutOfRange = errors.New("bfs: destination out of range")

	// ErrThresholdNonPositive indicates threshold < 1, violating the
	// caller contract that traversal always requires positive capacity.
	ErrThresholdNonPositive = errors.New("bfs: threshold must be >= 1")
)
