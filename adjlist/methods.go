// File: methods.go
// Role: Mutating operations (vertex/edge add and delete) and the incremental
//       connectivity bookkeeping they maintain.
//
// Invariants after every public mutation:
//   - vertex values pairwise distinct;
//   - undirected arcs mirrored with a shared edge record;
//   - numEdges equals the number of logical edges present;
//   - state equals numVertices minus the number of connected-flagged
//     vertices (stateEmpty when no vertices remain);
//   - the shortest-path side table is discarded.
package adjlist

import (
	"github.com/vrelian/duograph/core"
	"github.com/vrelian/duograph/search"
)

// AddVertex inserts a vertex; false when a vertex with an equal value
// already exists. The very first vertex becomes the root and is connected
// by definition.
// Complexity: O(1) amortized.
func (l *List[T]) AddVertex(v T) bool {
	if _, dup := l.index[v]; dup {
		return false
	}

	vert := &core.Vertex[T]{Value: v, Connected: l.numVertices == 0}

	l.index[v] = len(l.entries)
	l.entries = append(l.entries, &entry[T]{vertex: vert})
	l.numVertices++
	l.state++ // the root lifts state from stateEmpty to 0; others count as unrooted

	l.invalidate()

	return true
}

// AddEdge connects a to b, appending at the tail of a's arc chain (and b's
// mirror chain when undirected; both arcs share one edge record). False on
// a missing endpoint, a == b, or an already-populated direction. A weight
// below core.MinEdgeWeight on a weighted graph — or a non-zero weight on an
// unweighted one — panics with core.ErrBadWeight.
//
// After a successful insert the connectivity cache is updated incrementally:
// when exactly one endpoint was rooted, a reachability check decides whether
// the other side's component now connects to the root, and if so the whole
// component is flood-marked.
// Complexity: O(degree) insert + O(V+E) worst case for the update.
func (l *List[T]) AddEdge(a, b T, weight float64) bool {
	l.checkWeight(weight)

	ia, okA := l.index[a]
	ib, okB := l.index[b]
	if !okA || !okB || a == b {
		return false
	}
	if l.arcTo(ia, ib) != nil {
		return false
	}

	e := &core.Edge{Weight: weight}
	l.entries[ia].out = append(l.entries[ia].out, arc{to: ib, edge: e})
	if !l.cfg.Directed {
		l.entries[ib].out = append(l.entries[ib].out, arc{to: ia, edge: e})
	}
	l.numEdges++

	// Incremental connectivity: only a rooted/unrooted boundary edge can
	// change anything.
	ca := l.entries[ia].vertex.Connected
	cb := l.entries[ib].vertex.Connected
	if ca != cb {
		if !ca && l.reachesRoot(ia) {
			l.markAllConnected(ia)
		} else if !cb && l.reachesRoot(ib) {
			l.markAllConnected(ib)
		}
	}

	l.invalidate()

	return true
}

// DeleteEdge removes the edge a->b and, on undirected graphs, its mirror.
// False when an endpoint or the edge itself is absent. Endpoints that may
// have lost their path to the root are rechecked and their flags flipped.
// Complexity: O(degree) unlink + O(V+E) recheck.
func (l *List[T]) DeleteEdge(a, b T) bool {
	ia, okA := l.index[a]
	ib, okB := l.index[b]
	if !okA || !okB {
		return false
	}
	if !l.removeArc(ia, ib) {
		return false
	}
	if !l.cfg.Directed {
		l.removeArc(ib, ia)
	}
	l.numEdges--

	// A directed edge only carried a's outbound reachability; undirected
	// removal can strand either endpoint.
	l.refreshConnectivity(ia)
	if !l.cfg.Directed {
		l.refreshConnectivity(ib)
	}

	l.invalidate()

	return true
}

// DeleteVertex removes a vertex, its out-arcs, and every incoming arc that
// refers to it (one scan over the remaining arena). False when absent.
// Former neighbors are rechecked against the root; deleting the root itself
// promotes the next live entry and recomputes every flag.
// Complexity: O(V + E).
func (l *List[T]) DeleteVertex(v T) bool {
	idx, ok := l.index[v]
	if !ok {
		return false
	}

	wasRoot := idx == l.rootIdx()
	wasConnected := l.entries[idx].vertex.Connected

	// Remember both arc directions touching idx; they are the only vertices
	// whose root-path could run through the removed arcs.
	neighbors := make(map[int]struct{})
	for _, a := range l.entries[idx].out {
		neighbors[a.to] = struct{}{}
	}

	// Unlink every incoming arc. On undirected graphs these are the mirrors
	// of idx's own arcs and already account for each logical edge; directed
	// in-arcs are logical edges of their own.
	for j, ent := range l.entries {
		if ent == nil || j == idx {
			continue
		}
		if l.removeArc(j, idx) {
			neighbors[j] = struct{}{}
			l.numEdges--
		}
	}
	if l.cfg.Directed {
		l.numEdges -= len(l.entries[idx].out)
	}

	l.entries[idx] = nil
	delete(l.index, v)
	l.numVertices--
	if !wasConnected {
		l.state-- // an unrooted vertex left the census
	}

	if l.numVertices == 0 {
		l.state = stateEmpty
		l.invalidate()

		return true
	}

	if wasRoot {
		l.recomputeConnectivity()
	} else {
		for j := range neighbors {
			if l.entries[j] != nil {
				l.refreshConnectivity(j)
			}
		}
	}

	l.invalidate()

	return true
}

// checkWeight panics with core.ErrBadWeight when the weight violates the
// graph's weight policy. Misuse, not a normal failure.
func (l *List[T]) checkWeight(weight float64) {
	if l.cfg.Weighted && weight < core.MinEdgeWeight {
		panic(core.ErrBadWeight)
	}
	if !l.cfg.Weighted && weight != 0 {
		panic(core.ErrBadWeight)
	}
}

// arcTo returns the arc from slot from to slot to, or nil.
// Complexity: O(degree).
func (l *List[T]) arcTo(from, to int) *arc {
	out := l.entries[from].out
	for i := range out {
		if out[i].to == to {
			return &out[i]
		}
	}

	return nil
}

// removeArc unlinks the arc from->to, reporting whether it existed.
// Complexity: O(degree).
func (l *List[T]) removeArc(from, to int) bool {
	out := l.entries[from].out
	for i := range out {
		if out[i].to == to {
			l.entries[from].out = append(out[:i], out[i+1:]...)

			return true
		}
	}

	return false
}

// reachesRoot reports whether the vertex in the given slot has a path to
// the root vertex.
func (l *List[T]) reachesRoot(idx int) bool {
	root := l.rootIdx()
	if root < 0 {
		return false
	}

	return search.Reachable[T](l, l.entries[idx].vertex.Value, l.entries[root].vertex.Value)
}

// markAllConnected flood-marks the component of the given slot as rooted,
// adjusting state once per flag flip.
func (l *List[T]) markAllConnected(idx int) {
	for v := range search.Reach[T](l, l.entries[idx].vertex.Value) {
		j := l.index[v]
		if !l.entries[j].vertex.Connected {
			l.entries[j].vertex.Connected = true
			l.state--
		}
	}
}

// refreshConnectivity re-runs the reachability-to-root check for one slot
// and flips its flag (adjusting state exactly once) when it lost the root.
func (l *List[T]) refreshConnectivity(idx int) {
	ent := l.entries[idx]
	if ent.vertex.Connected && !l.reachesRoot(idx) {
		ent.vertex.Connected = false
		l.state++
	}
}

// recomputeConnectivity rebuilds every flag and state from the current
// root; used after the root vertex itself is deleted.
func (l *List[T]) recomputeConnectivity() {
	connected := 0
	for i, ent := range l.entries {
		if ent == nil {
			continue
		}
		ent.vertex.Connected = l.reachesRoot(i)
		if ent.vertex.Connected {
			connected++
		}
	}
	l.state = l.numVertices - connected
}
