// Package dijkstra implements the shared single-source shortest-path engine
// used by both graph representations.
//
// Run executes classic Dijkstra over the core.Traverser accessor: a
// min-priority queue keyed by tentative distance with the lazy-decrease-key
// strategy (duplicate enqueues are allowed; the first dequeue at which a
// vertex is still unvisited is authoritative, later stale dequeues are
// skipped). Relaxation uses strict <, so equal-distance ties settle in
// queue-insertion order.
//
// The result is a Tree: a per-run side table of distances and predecessors
// keyed by vertex value. Keeping the scratch state in the Tree rather than
// on the vertex records decouples algorithm state from the persistent data
// model; the representations cache the Tree and invalidate it on every
// mutation.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each vertex is settled at most once, each
//     relaxation may push one heap entry, each heap operation is O(log N).
//   - Space: O(V + E) — distance/predecessor maps plus worst-case heap
//     entries under lazy-decrease-key.
package dijkstra
