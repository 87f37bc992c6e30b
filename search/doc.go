// Package search implements the reachability and circuit analyzer shared by
// both graph representations.
//
// All functions operate over the core.Traverser accessor, so the same
// depth-first logic serves the dense matrix and the sparse list: Reach
// collects the set of vertices reachable from a start vertex (also the flood
// primitive behind the list representation's incremental connectivity),
// Reachable answers point-to-point reachability with early exit, and
// HasCircuit detects a back-edge returning to its start vertex.
//
// Complexity: every function is a single DFS, O(V + E) time, O(V) space.
package search
