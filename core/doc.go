// Package core defines the shared data model for duograph: the Vertex and
// Edge records, the Graph capability contract both representations implement,
// construction flags, the density policy, and path formatting.
//
// A Graph is keyed by a user-supplied totally-ordered value type (any
// cmp.Ordered type): no two vertices may compare equal. Two interchangeable
// representations implement the contract:
//
//   - adjmatrix.Matrix  — dense, auto-expanding slot grid; O(1) edge test.
//   - adjlist.List      — sparse per-vertex arc chains; O(degree) edge test,
//     incrementally maintained connectivity.
//
// Shortest paths, reachability and circuit detection are shared algorithms
// (packages dijkstra and search) that operate over the Traverser accessor
// rather than being duplicated per representation.
//
// Error taxonomy:
//
//   - Not-found and duplicate conditions surface as a boolean false or a
//     nil/empty result, never as an error value.
//   - Adding a sub-threshold weight to a weighted graph (or a non-zero
//     weight to an unweighted one) is caller misuse and panics with
//     ErrBadWeight.
//   - Shortest-path preconditions not met (unweighted or disconnected graph,
//     missing source) report false/nil and mutate nothing.
//
// Concurrency:
//
//	A graph is a single mutable resource with no internal locking; the
//	design assumes exclusive, sequential access by one caller. Concurrent
//	mutation is undefined.
package core
