// Package dijkstra implements reduced-cost shortest-path search over
// a core.Graph: DijkstraPath finds a shortest path to a single
// destination (optionally terminating as soon as it is settled), and
// DijkstraNearestSink finds the closest node with negative balance
// from a single source, the primitive the successive-shortest-path
// MCF solver in the flow package drives repeatedly.
//
// Both use the SSP reduced-cost convention c̄(a) = cost[a] -
// potential[tail(a)] + potential[head(a)]; the cost-scaling solver in
// the costscaling package uses the opposite sign convention and the
// two must never be mixed.
package dijkstra
