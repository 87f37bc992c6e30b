// File: search.go
// Role: Iterative depth-first reachability and circuit detection over
//       core.Traverser.
package search

import (
	"cmp"

	"github.com/vrelian/duograph/core"
)

// Reach returns the set of vertices reachable from start, including start
// itself. Unknown start values yield a set containing only start's frontier
// (empty neighbor list), i.e. {start}.
//
// Stage 1 (Prepare): seed the stack and visited set with start.
// Stage 2 (Execute): pop, expand out-neighbors, push unseen.
// Stage 3 (Finalize): return the visited set.
// Complexity: O(V + E) time, O(V) space.
func Reach[T cmp.Ordered](s core.Traverser[T], start T) map[T]struct{} {
	visited := map[T]struct{}{start: {}}
	stack := []T{start}

	var cur T
	for len(stack) > 0 {
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, nb := range s.OutNeighbors(cur) {
			if _, seen := visited[nb.To]; seen {
				continue
			}
			visited[nb.To] = struct{}{}
			stack = append(stack, nb.To)
		}
	}

	return visited
}

// Reachable reports whether a path exists from from to to. A vertex reaches
// itself trivially (zero-length path).
// Complexity: O(V + E) time with early exit on discovery.
func Reachable[T cmp.Ordered](s core.Traverser[T], from, to T) bool {
	if from == to {
		return true
	}

	visited := map[T]struct{}{from: {}}
	stack := []T{from}

	var cur T
	for len(stack) > 0 {
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, nb := range s.OutNeighbors(cur) {
			if nb.To == to {
				return true
			}
			if _, seen := visited[nb.To]; seen {
				continue
			}
			visited[nb.To] = struct{}{}
			stack = append(stack, nb.To)
		}
	}

	return false
}

// HasCircuit reports whether a depth-first search from start can traverse
// edges back to start itself.
//
// Directed graphs count any back-edge to start, so a two-cycle A->B->A is a
// circuit. Undirected graphs skip the immediate backtrack across the edge
// just taken (the mirror arc to the parent), so a lone edge A-B is not a
// circuit and the smallest undirected circuit is a triangle.
//
// The search recurses so each vertex keeps its true DFS parent; a vertex
// lies on a circuit through start exactly when one of its subtrees carries
// a back-edge to start.
//
// Complexity: O(V + E) time, O(V) space (recursion stack + visited set).
func HasCircuit[T cmp.Ordered](s core.Traverser[T], start T, directed bool) bool {
	visited := map[T]struct{}{start: {}}

	var visit func(v, parent T, hasParent bool) bool
	visit = func(v, parent T, hasParent bool) bool {
		for _, nb := range s.OutNeighbors(v) {
			// Trivial backtrack across the arc just taken (undirected only).
			if !directed && hasParent && nb.To == parent {
				continue
			}
			if nb.To == start {
				return true
			}
			if _, seen := visited[nb.To]; seen {
				continue
			}
			visited[nb.To] = struct{}{}
			if visit(nb.To, v, true) {
				return true
			}
		}

		return false
	}

	var zero T

	return visit(start, zero, false)
}
