// File: shortestpath.go
// Role: Shortest-path surface and circuit detection, delegating to the
//       shared engines; mirrors the list representation's caching pattern.
package adjmatrix

import (
	"fmt"
	"io"
	"math"

	"github.com/vrelian/duograph/core"
	"github.com/vrelian/duograph/dijkstra"
	"github.com/vrelian/duograph/search"
)

// ShortestPaths computes shortest distances from source to every vertex and
// caches the result until the next mutation. False — with no state change —
// when the graph is unweighted, not connected, or source is absent.
// Complexity: O(capacity^2 + (V + E) log V) including the connectivity sweep.
func (m *Matrix[T]) ShortestPaths(source T) bool {
	if !m.cfg.Weighted || m.numVertices == 0 || !m.IsConnected() {
		return false
	}
	if _, ok := m.index[source]; !ok {
		return false
	}

	t, err := dijkstra.Run[T](m, source)
	if err != nil {
		return false
	}
	m.paths = t
	m.pathsFresh = true

	return true
}

// ShortestPath returns the vertex records along the shortest route
// [a, ..., b]. A stale or differently-sourced cache triggers a fresh
// ShortestPaths(a) run first. Nil when the run preconditions fail or b is
// unreachable; [a] when a == b.
func (m *Matrix[T]) ShortestPath(a, b T) []*core.Vertex[T] {
	if !m.pathsFresh || m.paths.Source() != a {
		if !m.ShortestPaths(a) {
			return nil
		}
	}

	values := m.paths.PathTo(b)
	if values == nil {
		return nil
	}

	path := make([]*core.Vertex[T], 0, len(values))
	for _, v := range values {
		path = append(path, m.slots[m.index[v]])
	}

	return path
}

// Distance returns the distance to v computed by the most recent
// ShortestPaths run, or +Inf when no fresh run covers v.
// Complexity: O(1).
func (m *Matrix[T]) Distance(v T) float64 {
	if !m.pathsFresh {
		return math.Inf(1)
	}

	return m.paths.Distance(v)
}

// PermuteShortestPaths writes one "shortestPath <source> to <target>" header
// and rendered route per vertex, in slot order. False under the
// ShortestPaths preconditions.
func (m *Matrix[T]) PermuteShortestPaths(source T, w io.Writer) bool {
	if !m.ShortestPaths(source) {
		return false
	}

	for _, target := range m.Order() {
		fmt.Fprintf(w, "shortestPath %v to %v\n", source, target)
		core.WritePath(w, m.ShortestPath(source, target), m.paths.Distance(target))
	}

	return true
}

// HasCircuit reports whether a depth-first walk from start can traverse
// edges back to start. False for an unknown start vertex.
func (m *Matrix[T]) HasCircuit(start T) bool {
	if _, ok := m.index[start]; !ok {
		return false
	}

	return search.HasCircuit[T](m, start, m.cfg.Directed)
}
