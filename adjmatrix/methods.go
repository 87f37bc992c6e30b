// File: methods.go
// Role: Mutating operations over the slot table and the edge grid.
//
// Invariants after every public mutation:
//   - vertex values pairwise distinct;
//   - undirected edges occupy both mirror cells with a shared edge record;
//   - the diagonal stays empty;
//   - numEdges equals the number of logical edges present;
//   - the shortest-path side table is discarded.
package adjmatrix

import (
	"github.com/vrelian/duograph/core"
)

// AddVertex inserts a vertex into the lowest free slot, expanding the grid
// when full; false when a vertex with an equal value already exists. The
// first vertex is connected by definition.
// Complexity: O(capacity) slot scan; O(capacity^2) on expansion.
func (m *Matrix[T]) AddVertex(v T) bool {
	if _, dup := m.index[v]; dup {
		return false
	}

	i := m.freeSlot()
	m.slots[i] = &core.Vertex[T]{Value: v, Connected: m.numVertices == 0}
	m.index[v] = i
	m.numVertices++

	m.invalidate()

	return true
}

// AddEdge connects a to b. False on a missing endpoint, a == b, or an
// already-populated cell (either mirror cell on undirected graphs). A
// weight below core.MinEdgeWeight on a weighted graph — or a non-zero
// weight on an unweighted one — panics with core.ErrBadWeight. Undirected
// edges write the same edge record into both mirror cells.
// Complexity: O(1).
func (m *Matrix[T]) AddEdge(a, b T, weight float64) bool {
	m.checkWeight(weight)

	ia, okA := m.index[a]
	ib, okB := m.index[b]
	if !okA || !okB || a == b {
		return false
	}
	if m.cells[ia][ib] != nil || (!m.cfg.Directed && m.cells[ib][ia] != nil) {
		return false
	}

	e := &core.Edge{Weight: weight}
	m.cells[ia][ib] = e
	if !m.cfg.Directed {
		m.cells[ib][ia] = e
	}
	m.numEdges++

	m.invalidate()

	return true
}

// DeleteEdge clears the cell a->b and, on undirected graphs, its mirror.
// False when an endpoint or the edge itself is absent.
// Complexity: O(1).
func (m *Matrix[T]) DeleteEdge(a, b T) bool {
	ia, okA := m.index[a]
	ib, okB := m.index[b]
	if !okA || !okB || m.cells[ia][ib] == nil {
		return false
	}

	m.cells[ia][ib] = nil
	if !m.cfg.Directed {
		m.cells[ib][ia] = nil
	}
	m.numEdges--

	m.invalidate()

	return true
}

// DeleteVertex frees a vertex's slot and clears its entire row and column,
// decrementing the edge count once per logical edge actually present. False
// when absent. The slot becomes reusable; capacity is retained.
// Complexity: O(capacity).
func (m *Matrix[T]) DeleteVertex(v T) bool {
	idx, ok := m.index[v]
	if !ok {
		return false
	}

	// Row cells are idx's outgoing edges; each is one logical edge. Column
	// cells are the mirrors of those same edges on undirected graphs and
	// count only when directed.
	for j := range m.cells[idx] {
		if m.cells[idx][j] != nil {
			m.cells[idx][j] = nil
			m.numEdges--
		}
		if m.cells[j][idx] != nil {
			m.cells[j][idx] = nil
			if m.cfg.Directed {
				m.numEdges--
			}
		}
	}

	m.slots[idx] = nil
	delete(m.index, v)
	m.numVertices--

	m.invalidate()

	return true
}

// checkWeight panics with core.ErrBadWeight when the weight violates the
// graph's weight policy. Misuse, not a normal failure.
func (m *Matrix[T]) checkWeight(weight float64) {
	if m.cfg.Weighted && weight < core.MinEdgeWeight {
		panic(core.ErrBadWeight)
	}
	if !m.cfg.Weighted && weight != 0 {
		panic(core.ErrBadWeight)
	}
}
