// Package core defines the NodeId/ArcId handle types and the Graph
// representation shared by every solver in this module: a directed
// graph with an implicit reverse ("dual") arc for every forward arc,
// stored as a flat arc array with per-node intrusive adjacency lists.
//
// The dual of an arc is its index with the dual bit flipped, so the
// reverse-arc relationship never needs a second array or a pointer:
// dual(dual(a)) == a always holds. Callers own the per-arc and
// per-node numeric arrays (capacity, cost, charge, excess, potential)
// that solvers in sibling packages read and mutate; Graph itself only
// tracks topology.
//
// This package is single-threaded: Graph carries no internal
// synchronization, matching the rest of this module's cooperative,
// non-concurrent execution model.
package core
