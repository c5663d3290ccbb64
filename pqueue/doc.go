// Package pqueue implements IndexedPriorityQueue, a decrease-key
// min-heap over a fixed id space in [0, maxSize). It is the only
// primitive the dijkstra package relies on for its O((V+E) log V)
// bound.
//
// The heap is built on container/heap with a parallel position index
// (id -> heap slot) so Update can fix an existing entry in place
// instead of pushing a duplicate.
package pqueue
