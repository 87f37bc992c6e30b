// File: contract.go
// Role: The Graph capability set both representations implement, plus the
//       Traverser accessor the shared algorithms (dijkstra, search) operate
//       over.
//
// Determinism:
//   - Order() enumerates vertices in slot/insertion order, so every
//     algorithm built on Traverser inherits a stable visiting order.
package core

import (
	"cmp"
	"io"
)

// Neighbor is one outgoing arc as seen through the Traverser accessor.
type Neighbor[T cmp.Ordered] struct {
	// To is the value of the target vertex.
	To T

	// Weight is the weight of the connecting edge (0 on unweighted graphs).
	Weight float64
}

// Traverser is the traversal primitive shared algorithms are parameterized
// over: a stable vertex enumeration plus a neighbors-of accessor. Both
// representations implement it against their own storage.
type Traverser[T cmp.Ordered] interface {
	// Order returns all vertex values in slot/insertion order.
	Order() []T

	// OutNeighbors returns the arcs leaving the given vertex, in adjacency
	// order. For undirected graphs the mirror arcs are included, so the
	// accessor always answers "where can I step from here". Unknown vertices
	// yield nil.
	OutNeighbors(of T) []Neighbor[T]
}

// Graph is the capability set shared by the matrix and list representations:
// vertex/edge CRUD, property queries, and the shortest-path contract.
//
// Mutations report false (never an error) on not-found or duplicate
// conditions; adding a policy-violating weight panics with ErrBadWeight.
// No operation performs partial mutation on failure: an undirected AddEdge
// commits both directional records or none.
type Graph[T cmp.Ordered] interface {
	Traverser[T]

	// AddVertex inserts a vertex; false if a vertex with an equal value exists.
	AddVertex(v T) bool
	// AddEdge connects a to b (both directions when undirected); false on a
	// missing endpoint, an already-populated direction, or a == b.
	AddEdge(a, b T, weight float64) bool
	// DeleteVertex removes a vertex and every incident edge; false if absent.
	DeleteVertex(v T) bool
	// DeleteEdge removes the edge a->b (and its mirror when undirected);
	// false if either endpoint or the edge is absent.
	DeleteEdge(a, b T) bool

	// HasVertex reports whether a vertex with the given value exists.
	HasVertex(v T) bool
	// HasEdge reports whether an edge a->b exists (either orientation
	// reaches it on undirected graphs).
	HasEdge(a, b T) bool
	// GetVertex returns the vertex record, or nil when absent.
	GetVertex(v T) *Vertex[T]
	// GetEdge returns the edge record for a->b, or nil when absent.
	GetEdge(a, b T) *Edge

	// HasCircuit reports whether a depth-first search from start can return
	// to start along traversable edges.
	HasCircuit(start T) bool
	// IsConnected reports whether the graph forms a single component.
	IsConnected() bool
	// IsFullyConnected reports whether every distinct vertex pair is joined
	// by an edge (edge count equals MaxEdges); false on an empty graph.
	IsFullyConnected() bool
	// IsSparse reports density <= SparseRatio (see IsSparseCount).
	IsSparse() bool
	// IsDense reports density >= DenseRatio (see IsDenseCount).
	IsDense() bool

	VertexCount() int
	EdgeCount() int
	Directed() bool
	Weighted() bool

	// ShortestPaths runs the shortest-path engine from source, refreshing
	// the per-run distance/predecessor table. False when the graph is
	// unweighted or disconnected, or source is missing; nothing is mutated
	// on failure.
	ShortestPaths(source T) bool
	// ShortestPath returns the vertices along the shortest route [a, ..., b],
	// re-running the engine if the cached run is stale or sourced elsewhere.
	// Nil when b is unreachable or preconditions fail; [a] when a == b.
	ShortestPath(a, b T) []*Vertex[T]
	// Distance returns the distance to v computed by the most recent
	// ShortestPaths run, or +Inf when no fresh run covers v.
	Distance(v T) float64
	// PermuteShortestPaths writes the shortest path from source to every
	// vertex in slot/insertion order. False under the ShortestPaths
	// preconditions.
	PermuteShortestPaths(source T, w io.Writer) bool
}
