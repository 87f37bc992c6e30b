// File: queries.go
// Role: Read-only queries, the Traverser accessor, and the connectivity
//       sweep over the weak adjacency view.
package adjmatrix

import (
	"cmp"

	"github.com/vrelian/duograph/core"
	"github.com/vrelian/duograph/search"
)

// HasVertex reports whether a vertex with the given value exists.
// Complexity: O(1).
func (m *Matrix[T]) HasVertex(v T) bool {
	_, ok := m.index[v]

	return ok
}

// GetVertex returns the vertex record for v, or nil when absent.
// Complexity: O(1).
func (m *Matrix[T]) GetVertex(v T) *core.Vertex[T] {
	idx, ok := m.index[v]
	if !ok {
		return nil
	}

	return m.slots[idx]
}

// GetEdge returns the edge record for a->b, or nil when absent. Undirected
// edges occupy both mirror cells, so either orientation resolves.
// Complexity: O(1).
func (m *Matrix[T]) GetEdge(a, b T) *core.Edge {
	ia, okA := m.index[a]
	ib, okB := m.index[b]
	if !okA || !okB {
		return nil
	}

	return m.cells[ia][ib]
}

// HasEdge reports whether an edge a->b exists. Complexity: O(1).
func (m *Matrix[T]) HasEdge(a, b T) bool { return m.GetEdge(a, b) != nil }

// IsConnected reports whether the graph forms a single weakly-connected
// component: one reachability sweep from the first occupied slot over the
// either-direction adjacency view, refreshing every vertex's Connected flag
// along the way. Graphs with fewer than two vertices are connected.
// Complexity: O(capacity^2).
func (m *Matrix[T]) IsConnected() bool {
	root := m.rootSlot()
	if m.numVertices < 2 {
		if root >= 0 {
			m.slots[root].Connected = true
		}

		return true
	}

	reached := search.Reach[T](weakView[T]{m}, m.slots[root].Value)
	for _, v := range m.slots {
		if v != nil {
			_, v.Connected = reached[v.Value]
		}
	}

	return len(reached) == m.numVertices
}

// IsFullyConnected reports whether every distinct vertex pair is joined by
// an edge; false on an empty graph.
func (m *Matrix[T]) IsFullyConnected() bool {
	if m.numVertices == 0 {
		return false
	}

	return float64(m.numEdges) == core.MaxEdges(m.numVertices, m.cfg.Directed)
}

// IsSparse reports density at or below core.SparseRatio.
func (m *Matrix[T]) IsSparse() bool {
	return core.IsSparseCount(m.numEdges, m.numVertices, m.cfg.Directed)
}

// IsDense reports density at or above core.DenseRatio.
func (m *Matrix[T]) IsDense() bool {
	return core.IsDenseCount(m.numEdges, m.numVertices, m.cfg.Directed)
}

// Order returns all vertex values in slot order.
// Complexity: O(capacity).
func (m *Matrix[T]) Order() []T {
	out := make([]T, 0, m.numVertices)
	for _, v := range m.slots {
		if v != nil {
			out = append(out, v.Value)
		}
	}

	return out
}

// OutNeighbors returns the edges leaving of, in slot order; nil for unknown
// vertices. Undirected mirror cells make every edge walkable from both ends.
// Complexity: O(capacity).
func (m *Matrix[T]) OutNeighbors(of T) []core.Neighbor[T] {
	idx, ok := m.index[of]
	if !ok {
		return nil
	}

	nbs := make([]core.Neighbor[T], 0, m.numVertices)
	for j, e := range m.cells[idx] {
		if e != nil {
			nbs = append(nbs, core.Neighbor[T]{To: m.slots[j].Value, Weight: e.Weight})
		}
	}

	return nbs
}

// weakView exposes the matrix with edge direction erased: an arc i~j exists
// when either cell of the pair is populated. The connectivity sweep runs
// over this view so a directed graph is judged weakly, the way the
// either-direction edge probe always answered.
type weakView[T cmp.Ordered] struct {
	m *Matrix[T]
}

func (w weakView[T]) Order() []T { return w.m.Order() }

func (w weakView[T]) OutNeighbors(of T) []core.Neighbor[T] {
	idx, ok := w.m.index[of]
	if !ok {
		return nil
	}

	nbs := make([]core.Neighbor[T], 0, w.m.numVertices)
	for j := range w.m.cells[idx] {
		e := w.m.cells[idx][j]
		if e == nil {
			e = w.m.cells[j][idx]
		}
		if e != nil {
			nbs = append(nbs, core.Neighbor[T]{To: w.m.slots[j].Value, Weight: e.Weight})
		}
	}

	return nbs
}
