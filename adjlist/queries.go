// File: queries.go
// Role: Read-only queries and the Traverser accessor the shared algorithms
//       run against.
package adjlist

import (
	"github.com/vrelian/duograph/core"
)

// HasVertex reports whether a vertex with the given value exists.
// Complexity: O(1).
func (l *List[T]) HasVertex(v T) bool {
	_, ok := l.index[v]

	return ok
}

// GetVertex returns the vertex record for v, or nil when absent.
// Complexity: O(1).
func (l *List[T]) GetVertex(v T) *core.Vertex[T] {
	idx, ok := l.index[v]
	if !ok {
		return nil
	}

	return l.entries[idx].vertex
}

// GetEdge returns the edge record for a->b, or nil when absent. Undirected
// edges are mirrored, so either orientation resolves.
// Complexity: O(degree).
func (l *List[T]) GetEdge(a, b T) *core.Edge {
	ia, okA := l.index[a]
	ib, okB := l.index[b]
	if !okA || !okB {
		return nil
	}
	if rec := l.arcTo(ia, ib); rec != nil {
		return rec.edge
	}

	return nil
}

// HasEdge reports whether an edge a->b exists. Complexity: O(degree).
func (l *List[T]) HasEdge(a, b T) bool { return l.GetEdge(a, b) != nil }

// IsConnected reports whether every vertex has a path to the root; O(1) via
// the eagerly maintained state counter. An empty graph is not connected.
func (l *List[T]) IsConnected() bool { return l.state == 0 }

// IsFullyConnected reports whether every distinct vertex pair is joined by
// an edge; false on an empty graph.
func (l *List[T]) IsFullyConnected() bool {
	if l.numVertices == 0 {
		return false
	}

	return float64(l.numEdges) == core.MaxEdges(l.numVertices, l.cfg.Directed)
}

// IsSparse reports density at or below core.SparseRatio.
func (l *List[T]) IsSparse() bool {
	return core.IsSparseCount(l.numEdges, l.numVertices, l.cfg.Directed)
}

// IsDense reports density at or above core.DenseRatio.
func (l *List[T]) IsDense() bool {
	return core.IsDenseCount(l.numEdges, l.numVertices, l.cfg.Directed)
}

// Order returns all vertex values in insertion order.
// Complexity: O(V).
func (l *List[T]) Order() []T {
	out := make([]T, 0, l.numVertices)
	for _, ent := range l.entries {
		if ent != nil {
			out = append(out, ent.vertex.Value)
		}
	}

	return out
}

// OutNeighbors returns the arcs leaving of, in adjacency (insertion) order;
// nil for unknown vertices. Mirror arcs make undirected edges walkable from
// both ends.
// Complexity: O(degree).
func (l *List[T]) OutNeighbors(of T) []core.Neighbor[T] {
	idx, ok := l.index[of]
	if !ok {
		return nil
	}

	out := l.entries[idx].out
	nbs := make([]core.Neighbor[T], 0, len(out))
	for _, a := range out {
		nbs = append(nbs, core.Neighbor[T]{
			To:     l.entries[a.to].vertex.Value,
			Weight: a.edge.Weight,
		})
	}

	return nbs
}
