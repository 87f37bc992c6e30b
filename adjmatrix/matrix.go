// SPDX-License-Identifier: MIT

// File: matrix.go
// Role: Matrix type, constructor, slot/grid primitives and textual rendering.
package adjmatrix

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/vrelian/duograph/core"
	"github.com/vrelian/duograph/dijkstra"
)

// DefaultExpansion is the number of slots added whenever the grid runs out
// of free capacity.
const DefaultExpansion = 5

// Matrix is the dense adjacency-matrix representation of core.Graph.
type Matrix[T cmp.Ordered] struct {
	cfg core.Config

	slots []*core.Vertex[T] // slot -> vertex; nil marks a free slot
	index map[T]int         // vertex value -> slot
	cells [][]*core.Edge    // cells[i][j] = edge i->j; diagonal unused

	numVertices int
	numEdges    int

	paths      *dijkstra.Tree[T] // side table of the most recent run
	pathsFresh bool              // false after any mutation
}

// Compile-time check: *Matrix implements the full capability set.
var _ core.Graph[string] = (*Matrix[string])(nil)

// New creates an empty adjacency-matrix graph with the given flags and
// DefaultExpansion slots of initial capacity.
// Complexity: O(DefaultExpansion^2).
func New[T cmp.Ordered](opts ...core.Option) *Matrix[T] {
	m := &Matrix[T]{
		cfg:   core.NewConfig(opts...),
		index: make(map[T]int),
	}
	m.grow()

	return m
}

// Directed reports the construction-time directedness flag.
func (m *Matrix[T]) Directed() bool { return m.cfg.Directed }

// Weighted reports the construction-time weight flag.
func (m *Matrix[T]) Weighted() bool { return m.cfg.Weighted }

// VertexCount returns the number of vertices. Complexity: O(1).
func (m *Matrix[T]) VertexCount() int { return m.numVertices }

// EdgeCount returns the number of logical edges (undirected pairs counted
// once). Complexity: O(1).
func (m *Matrix[T]) EdgeCount() int { return m.numEdges }

// Capacity returns the current slot capacity of the grid.
func (m *Matrix[T]) Capacity() int { return len(m.slots) }

// freeSlot returns the lowest free slot, growing the grid when none remain.
func (m *Matrix[T]) freeSlot() int {
	for i, v := range m.slots {
		if v == nil {
			return i
		}
	}

	i := len(m.slots)
	m.grow()

	return i
}

// grow extends the slot table and the grid by DefaultExpansion in both
// dimensions, preserving existing cells.
func (m *Matrix[T]) grow() {
	next := len(m.slots) + DefaultExpansion

	m.slots = append(m.slots, make([]*core.Vertex[T], DefaultExpansion)...)
	for i := range m.cells {
		m.cells[i] = append(m.cells[i], make([]*core.Edge, DefaultExpansion)...)
	}
	for len(m.cells) < next {
		m.cells = append(m.cells, make([]*core.Edge, next))
	}
}

// rootSlot returns the first occupied slot, or -1 when the graph is empty.
func (m *Matrix[T]) rootSlot() int {
	for i, v := range m.slots {
		if v != nil {
			return i
		}
	}

	return -1
}

// invalidate discards the shortest-path side table; called by every
// mutating operation.
func (m *Matrix[T]) invalidate() {
	m.paths = nil
	m.pathsFresh = false
}

// String renders the graph as its header lines followed by one adjacency
// line per occupied slot, matching the list representation's rendering.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	if m.cfg.Weighted {
		b.WriteString("Weighted\n")
	} else {
		b.WriteString("Unweighted\n")
	}
	if m.cfg.Directed {
		b.WriteString("Digraph\n")
	} else {
		b.WriteString("Undigraph\n")
	}

	for i, v := range m.slots {
		if v == nil {
			continue
		}
		fmt.Fprintf(&b, "%v ->", v.Value)
		for j, e := range m.cells[i] {
			if e == nil {
				continue
			}
			if m.cfg.Weighted {
				fmt.Fprintf(&b, " %v-%g", m.slots[j].Value, e.Weight)
			} else {
				fmt.Fprintf(&b, " %v", m.slots[j].Value)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
