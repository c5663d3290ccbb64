// Package bfs implements capacity-thresholded reachability search
// over a core.Graph: BFSPath finds whether dst is reachable from src
// using only arcs whose residual capacity meets a threshold, and
// records the arc used to reach every node so the path can be
// reconstructed by walking Tail(prev[n]) back to src.
package bfs
