// File: dijkstra.go
// Role: The Run entry point, the Tree side table, and the min-heap.
package dijkstra

import (
	"cmp"
	"container/heap"
	"errors"
	"math"

	"github.com/vrelian/duograph/core"
)

// Sentinel errors returned by Run.
var (
	// ErrNilSpace indicates a nil traversal space was passed to Run.
	ErrNilSpace = errors.New("dijkstra: traversal space is nil")

	// ErrSourceNotFound indicates the source vertex is not part of the space.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found")
)

// Tree is the per-run side table produced by Run: distances and predecessor
// links from a single source. It is valid only for the graph snapshot it was
// computed on; representations discard it on any mutation.
type Tree[T cmp.Ordered] struct {
	source T
	dist   map[T]float64
	pred   map[T]T
	known  map[T]struct{} // vertices with a predecessor link
}

// Source returns the vertex this tree was computed from.
func (t *Tree[T]) Source() T { return t.source }

// Distance returns the shortest distance from the source to v, or +Inf when
// v is unreachable or unknown.
// Complexity: O(1).
func (t *Tree[T]) Distance(v T) float64 {
	d, ok := t.dist[v]
	if !ok {
		return math.Inf(1)
	}

	return d
}

// PathTo reconstructs the ordered vertex sequence [source, ..., v] by
// walking predecessor links backward from v and reversing the collected
// stack. Returns [source] when v == source and nil when v is unreachable.
// Complexity: O(len(path)).
func (t *Tree[T]) PathTo(v T) []T {
	if v == t.source {
		return []T{v}
	}
	if math.IsInf(t.Distance(v), 1) {
		return nil
	}

	// Collect v, pred(v), pred(pred(v)), ... down to the source.
	stack := []T{v}
	cur := v
	for {
		p, ok := t.pred[cur]
		if !ok {
			break
		}
		stack = append(stack, p)
		cur = p
	}
	if cur != t.source {
		// Broken chain: v was relaxed from a vertex outside this run.
		return nil
	}

	// Pop the stack to yield source-first order.
	path := make([]T, 0, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		path = append(path, stack[i])
	}

	return path
}

// Run computes shortest distances from source to every vertex of s.
//
// Stage 1 (Validate): s non-nil, source present in s.Order().
// Stage 2 (Prepare): reset scratch — every distance +Inf, no predecessors,
// nothing visited; source distance 0, enqueued at key 0.
// Stage 3 (Execute): repeatedly dequeue the minimum key; skip already
// visited vertices (stale entries); relax every outgoing arc with strict <;
// re-enqueue improved neighbors; mark the vertex visited.
// Stage 4 (Finalize): return the completed Tree.
//
// Unweighted arcs (weight 0) are traversed at zero cost; callers that
// require weighted semantics enforce that precondition before Run.
func Run[T cmp.Ordered](s core.Traverser[T], source T) (*Tree[T], error) {
	if s == nil {
		return nil, ErrNilSpace
	}

	order := s.Order()
	t := &Tree[T]{
		source: source,
		dist:   make(map[T]float64, len(order)),
		pred:   make(map[T]T, len(order)),
		known:  make(map[T]struct{}, len(order)),
	}

	found := false
	for _, v := range order {
		t.dist[v] = math.Inf(1)
		if v == source {
			found = true
		}
	}
	if !found {
		return nil, ErrSourceNotFound
	}

	visited := make(map[T]struct{}, len(order))

	pq := make(nodePQ[T], 0, len(order))
	heap.Init(&pq)
	t.dist[source] = 0
	heap.Push(&pq, &nodeItem[T]{value: source, dist: 0})

	var cur T
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem[T])
		cur = item.value

		// First unvisited dequeue is authoritative; later entries are stale.
		if _, done := visited[cur]; done {
			continue
		}

		for _, nb := range s.OutNeighbors(cur) {
			if _, done := visited[nb.To]; done {
				continue
			}
			candidate := t.dist[cur] + nb.Weight
			if candidate < t.dist[nb.To] {
				t.dist[nb.To] = candidate
				t.pred[nb.To] = cur
				t.known[nb.To] = struct{}{}
				heap.Push(&pq, &nodeItem[T]{value: nb.To, dist: candidate})
			}
		}

		visited[cur] = struct{}{}
	}

	return t, nil
}

// nodeItem pairs a vertex with its tentative distance inside the heap.
type nodeItem[T cmp.Ordered] struct {
	value T
	dist  float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Equal-key
// order is unspecified, which is harmless: relaxation is strict <, so
// whichever equal entry settles first fixes the result.
type nodePQ[T cmp.Ordered] []*nodeItem[T]

func (pq nodePQ[T]) Len() int { return len(pq) }

func (pq nodePQ[T]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by container/heap.
func (pq *nodePQ[T]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[T])) }

// Pop removes and returns the last element; called by container/heap.
func (pq *nodePQ[T]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
