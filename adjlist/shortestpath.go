// File: shortestpath.go
// Role: Shortest-path surface (single run, path reconstruction, permutation
//       report) plus circuit detection, all delegating to the shared engines.
package adjlist

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
// Complexity: O((V + E) log V).
func (l *List[T]) ShortestPaths(source T) bool {
	if !l.cfg.Weighted || !l.IsConnected() {
		return false
	}
	if _, ok := l.index[source]; !ok {
		return false
	}

	t, err := dijkstra.Run[T](l, source)
	if err != nil {
		return false
	}
	l.paths = t
	l.pathsFresh = true

	return true
}

// ShortestPath returns the vertex records along the shortest route
// [a, ..., b]. A stale or differently-sourced cache triggers a fresh
// ShortestPaths(a) run first. Nil when the run preconditions fail or b is
// unreachable; [a] when a == b.
func (l *List[T]) ShortestPath(a, b T) []*core.Vertex[T] {
	if !l.pathsFresh || l.paths.Source() != a {
		if !l.ShortestPaths(a) {
			return nil
		}
	}

	values := l.paths.PathTo(b)
	if values == nil {
		return nil
	}

	path := make([]*core.Vertex[T], 0, len(values))
	for _, v := range values {
		path = append(path, l.entries[l.index[v]].vertex)
	}

	return path
}

// Distance returns the distance to v computed by the most recent
// ShortestPaths run, or +Inf when no fresh run covers v.
// Complexity: O(1).
func (l *List[T]) Distance(v T) float64 {
	if !l.pathsFresh {
		return math.Inf(1)
	}

	return l.paths.Distance(v)
}

// PermuteShortestPaths writes one "shortestPath <source> to <target>" header
// and rendered route per vertex, in insertion order. False under the
// ShortestPaths preconditions.
func (l *List[T]) PermuteShortestPaths(source T, w io.Writer) bool {
	if !l.ShortestPaths(source) {
		return false
	}

	for _, target := range l.Order() {
		fmt.Fprintf(w, "shortestPath %v to %v\n", source, target)
		core.WritePath(w, l.ShortestPath(source, target), l.paths.Distance(target))
	}

	return true
}

// HasCircuit reports whether a depth-first walk from start can traverse
// edges back to start. False for an unknown start vertex.
func (l *List[T]) HasCircuit(start T) bool {
	if _, ok := l.index[start]; !ok {
		return false
	}

	return search.HasCircuit[T](l, start, l.cfg.Directed)
}
