// Package flow implements flow primitives over a core.Graph
// (SendFlow, AugmentFlow, AugmentingFlowCapacity, NodeBalance,
// FlowCost, FlowCostWithCharge) and Minimum-Cost Flow via successive
// shortest paths (SimpleFeasibleFlow, MCFRefinement, SimpleMCF).
//
// MCFRefinement repeatedly saturates negative-reduced-cost arcs and
// augments along the nearest deficit-reachable node found by
// dijkstra.DijkstraNearestSink, shifting every node's potential after
// each augmentation so traversed arcs keep non-negative reduced
// costs. See the costscaling package for the alternative
// Goldberg-Tarjan cost-scaling MCF solver.
package flow
