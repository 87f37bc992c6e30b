// SPDX-License-Identifier: MIT

// File: adjlist.go
// Role: List type, constructor, arena primitives and textual rendering.
package adjlist

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/vrelian/duograph/core"
	"github.com/vrelian/duograph/dijkstra"
)

// stateEmpty is the state value of a graph with no vertices.
const stateEmpty = -1

// arc is one directional adjacency record: the arena slot of the target
// vertex plus the edge connecting to it. Mirror arcs of an undirected edge
// share the same *core.Edge.
type arc struct {
	to   int
	edge *core.Edge
}

// entry is one arena slot: the vertex record plus its ordered out-arcs.
type entry[T cmp.Ordered] struct {
	vertex *core.Vertex[T]
	out    []arc
}

// List is the sparse adjacency-list representation of core.Graph.
type List[T cmp.Ordered] struct {
	cfg core.Config

	entries []*entry[T] // insertion order; nil marks a deleted slot
	index   map[T]int   // vertex value -> arena slot

	numVertices int
	numEdges    int

	// state is numVertices minus the number of vertices flagged connected:
	// 0 means fully rooted, stateEmpty means no vertices at all.
	state int

	paths      *dijkstra.Tree[T] // side table of the most recent run
	pathsFresh bool              // false after any mutation
}

// Compile-time check: *List implements the full capability set.
var _ core.Graph[string] = (*List[string])(nil)

// New creates an empty adjacency-list graph with the given flags.
// Complexity: O(1).
func New[T cmp.Ordered](opts ...core.Option) *List[T] {
	return &List[T]{
		cfg:   core.NewConfig(opts...),
		index: make(map[T]int),
		state: stateEmpty,
	}
}

// Directed reports the construction-time directedness flag.
func (l *List[T]) Directed() bool { return l.cfg.Directed }

// Weighted reports the construction-time weight flag.
func (l *List[T]) Weighted() bool { return l.cfg.Weighted }

// VertexCount returns the number of vertices. Complexity: O(1).
func (l *List[T]) VertexCount() int { return l.numVertices }

// EdgeCount returns the number of logical edges (undirected pairs counted
// once). Complexity: O(1).
func (l *List[T]) EdgeCount() int { return l.numEdges }

// IsEmpty reports whether the graph holds no vertices.
func (l *List[T]) IsEmpty() bool { return l.state == stateEmpty }

// rootIdx returns the arena slot of the root vertex (first live entry in
// insertion order), or -1 when the graph is empty.
func (l *List[T]) rootIdx() int {
	for i, e := range l.entries {
		if e != nil {
			return i
		}
	}

	return -1
}

// invalidate discards the shortest-path side table; called by every
// mutating operation.
func (l *List[T]) invalidate() {
	l.paths = nil
	l.pathsFresh = false
}

// String renders the graph as its header lines followed by one adjacency
// line per vertex in insertion order, e.g. "Denver -> Boulder-30 Pueblo-80".
func (l *List[T]) String() string {
	var b strings.Builder
	if l.cfg.Weighted {
		b.WriteString("Weighted\n")
	} else {
		b.WriteString("Unweighted\n")
	}
	if l.cfg.Directed {
		b.WriteString("Digraph\n")
	} else {
		b.WriteString("Undigraph\n")
	}

	for _, e := range l.entries {
		if e == nil {
			continue
		}
		fmt.Fprintf(&b, "%v ->", e.vertex.Value)
		for _, a := range e.out {
			if l.cfg.Weighted {
				fmt.Fprintf(&b, " %v-%g", l.entries[a.to].vertex.Value, a.edge.Weight)
			} else {
				fmt.Fprintf(&b, " %v", l.entries[a.to].vertex.Value)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
