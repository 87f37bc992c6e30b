// Package adjmatrix_test validates the matrix representation: slot
// expansion and reuse, vertex/edge CRUD with counter invariants, the
// connectivity sweep, and the shortest-path surface.
package adjmatrix_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrelian/duograph/adjmatrix"
	"github.com/vrelian/duograph/core"
)

// cities builds the weighted undirected Colorado fixture:
// Denver-Boulder(30), Denver-Pueblo(80), Boulder-Pueblo(150).
func cities(t *testing.T) *adjmatrix.Matrix[string] {
	t.Helper()

	g := adjmatrix.New[string](core.WithWeighted())
	for _, v := range []string{"Denver", "Boulder", "Pueblo"} {
		require.True(t, g.AddVertex(v))
	}
	require.True(t, g.AddEdge("Denver", "Boulder", 30))
	require.True(t, g.AddEdge("Denver", "Pueblo", 80))
	require.True(t, g.AddEdge("Boulder", "Pueblo", 150))

	return g
}

// ------------------------------------------------------------------------
// 1. Slot management: expansion and reuse.
// ------------------------------------------------------------------------

func TestMatrix_ExpansionGrowth(t *testing.T) {
	g := adjmatrix.New[int]()
	assert.Equal(t, adjmatrix.DefaultExpansion, g.Capacity())

	for i := 0; i < adjmatrix.DefaultExpansion; i++ {
		require.True(t, g.AddVertex(i))
	}
	assert.Equal(t, adjmatrix.DefaultExpansion, g.Capacity(), "no growth while slots remain")

	// The sixth vertex forces one expansion step.
	require.True(t, g.AddVertex(99))
	assert.Equal(t, 2*adjmatrix.DefaultExpansion, g.Capacity())
	assert.Equal(t, adjmatrix.DefaultExpansion+1, g.VertexCount())
}

func TestMatrix_SlotReuse(t *testing.T) {
	g := adjmatrix.New[string]()
	for _, v := range []string{"A", "B", "C", "D", "E"} {
		g.AddVertex(v)
	}

	// Freeing a slot lets the next insert reuse it instead of growing.
	require.True(t, g.DeleteVertex("C"))
	require.True(t, g.AddVertex("F"))
	assert.Equal(t, adjmatrix.DefaultExpansion, g.Capacity())
	assert.Equal(t, []string{"A", "B", "F", "D", "E"}, g.Order(), "F takes C's slot")
}

func TestMatrix_EdgesSurviveExpansion(t *testing.T) {
	g := adjmatrix.New[int](core.WithWeighted())
	for i := 0; i < adjmatrix.DefaultExpansion; i++ {
		g.AddVertex(i)
	}
	require.True(t, g.AddEdge(0, 4, 7))

	g.AddVertex(99) // triggers growth

	assert.True(t, g.HasEdge(0, 4), "existing cells must survive the regrow")
	assert.Equal(t, 7.0, g.GetEdge(0, 4).Weight)
}

// ------------------------------------------------------------------------
// 2. CRUD and the weight policy.
// ------------------------------------------------------------------------

func TestMatrix_AddVertex_Duplicate(t *testing.T) {
	g := adjmatrix.New[string]()

	assert.True(t, g.AddVertex("A"))
	assert.False(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestMatrix_AddEdge_Rejections(t *testing.T) {
	g := adjmatrix.New[string](core.WithWeighted())
	g.AddVertex("A")
	g.AddVertex("B")

	assert.False(t, g.AddEdge("A", "X", 1), "missing endpoint")
	assert.False(t, g.AddEdge("A", "A", 1), "self-loop")
	assert.True(t, g.AddEdge("A", "B", 5))
	assert.False(t, g.AddEdge("B", "A", 7), "mirror cell of an undirected edge")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestMatrix_UndirectedSymmetry(t *testing.T) {
	g := cities(t)

	assert.True(t, g.HasEdge("Boulder", "Denver"))
	if g.GetEdge("Denver", "Boulder") != g.GetEdge("Boulder", "Denver") {
		t.Error("mirror cells must share one edge record")
	}
}

func TestMatrix_DirectedEdgesAreOneWay(t *testing.T) {
	g := adjmatrix.New[string](core.WithDirected(), core.WithWeighted())
	g.AddVertex("A")
	g.AddVertex("B")
	g.AddEdge("A", "B", 3)

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.True(t, g.AddEdge("B", "A", 4))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestMatrix_WeightPolicyPanics(t *testing.T) {
	g := adjmatrix.New[string](core.WithWeighted())
	g.AddVertex("A")
	g.AddVertex("B")

	assert.PanicsWithValue(t, core.ErrBadWeight, func() {
		g.AddEdge("A", "B", 0.25)
	})
}

func TestMatrix_DeleteVertex_CountsLogicalEdges(t *testing.T) {
	g := cities(t)

	// Denver touches two of the three edges; both mirror cells of each must
	// count once.
	require.True(t, g.DeleteVertex("Denver"))
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("Boulder", "Pueblo"))
	assert.False(t, g.HasVertex("Denver"))
}

func TestMatrix_DeleteVertex_Directed(t *testing.T) {
	g := adjmatrix.New[string](core.WithDirected())
	for _, v := range []string{"A", "B", "C"} {
		g.AddVertex(v)
	}
	g.AddEdge("A", "B", 0)
	g.AddEdge("C", "B", 0)
	g.AddEdge("B", "C", 0)

	require.True(t, g.DeleteVertex("B"))
	assert.Equal(t, 0, g.EdgeCount())
}

func TestMatrix_DeleteEdge(t *testing.T) {
	g := cities(t)

	require.True(t, g.DeleteEdge("Denver", "Boulder"))
	assert.False(t, g.DeleteEdge("Denver", "Boulder"))
	assert.False(t, g.HasEdge("Boulder", "Denver"), "mirror cell cleared too")
	assert.Equal(t, 2, g.EdgeCount())
}

// ------------------------------------------------------------------------
// 3. Connectivity sweep and density.
// ------------------------------------------------------------------------

func TestMatrix_IsConnected_Sweep(t *testing.T) {
	g := adjmatrix.New[string]()
	for _, v := range []string{"A", "B", "C"} {
		g.AddVertex(v)
	}
	assert.False(t, g.IsConnected())

	g.AddEdge("A", "B", 0)
	assert.False(t, g.IsConnected())
	assert.False(t, g.GetVertex("C").Connected, "the sweep refreshes the flags")

	g.AddEdge("B", "C", 0)
	assert.True(t, g.IsConnected())
	assert.True(t, g.GetVertex("C").Connected)
}

func TestMatrix_IsConnected_SkipsAdjacentSlotPairs(t *testing.T) {
	// A and B share no edge; both hang off C. Judging connectivity by
	// consecutive slot pairs would miss this shape; the sweep does not.
	g := adjmatrix.New[string]()
	for _, v := range []string{"A", "B", "C"} {
		g.AddVertex(v)
	}
	g.AddEdge("A", "C", 0)
	g.AddEdge("B", "C", 0)

	assert.True(t, g.IsConnected())
}

func TestMatrix_IsConnected_DirectedIsWeak(t *testing.T) {
	// A->C and B->C: no directed path joins A and B, but the component is
	// one piece when direction is erased.
	g := adjmatrix.New[string](core.WithDirected())
	for _, v := range []string{"A", "B", "C"} {
		g.AddVertex(v)
	}
	g.AddEdge("A", "C", 0)
	g.AddEdge("B", "C", 0)

	assert.True(t, g.IsConnected())
}

func TestMatrix_IsConnected_Degenerate(t *testing.T) {
	g := adjmatrix.New[string]()
	assert.True(t, g.IsConnected(), "empty graph")

	g.AddVertex("A")
	assert.True(t, g.IsConnected(), "single vertex")
	assert.True(t, g.GetVertex("A").Connected)
}

func TestMatrix_Density(t *testing.T) {
	g := adjmatrix.New[string]()
	for _, v := range []string{"A", "B", "C", "D"} {
		g.AddVertex(v)
	}

	assert.True(t, g.IsSparse(), "0 of 6 edges")
	g.AddEdge("A", "B", 0)
	assert.False(t, g.IsSparse(), "1/6 sits above the 0.15 threshold")

	for _, p := range [][2]string{{"A", "C"}, {"A", "D"}, {"B", "C"}, {"B", "D"}, {"C", "D"}} {
		g.AddEdge(p[0], p[1], 0)
	}
	assert.True(t, g.IsDense())
	assert.True(t, g.IsFullyConnected())
	assert.LessOrEqual(t, float64(g.EdgeCount()), core.MaxEdges(g.VertexCount(), g.Directed()))
}

// ------------------------------------------------------------------------
// 4. Shortest paths and circuits.
// ------------------------------------------------------------------------

func TestMatrix_ShortestPaths_Preconditions(t *testing.T) {
	unweighted := adjmatrix.New[string]()
	unweighted.AddVertex("A")
	assert.False(t, unweighted.ShortestPaths("A"), "unweighted graph")

	g := adjmatrix.New[string](core.WithWeighted())
	g.AddVertex("A")
	g.AddVertex("B")
	assert.False(t, g.ShortestPaths("A"), "disconnected graph")

	g.AddEdge("A", "B", 1)
	assert.False(t, g.ShortestPaths("X"), "missing source")
	assert.True(t, g.ShortestPaths("A"))
}

func TestMatrix_ShortestPath_Cities(t *testing.T) {
	g := cities(t)

	path := g.ShortestPath("Pueblo", "Boulder")
	require.Len(t, path, 3)
	assert.Equal(t, "Pueblo", path[0].Value)
	assert.Equal(t, "Denver", path[1].Value)
	assert.Equal(t, "Boulder", path[2].Value)
	assert.Equal(t, 110.0, g.Distance("Boulder"))
}

func TestMatrix_Distance_StaleAfterMutation(t *testing.T) {
	g := cities(t)

	require.True(t, g.ShortestPaths("Denver"))
	require.Equal(t, 30.0, g.Distance("Boulder"))

	g.AddVertex("Aspen")
	if !math.IsInf(g.Distance("Boulder"), 1) {
		t.Fatalf("Distance after mutation = %g; want +Inf", g.Distance("Boulder"))
	}
}

func TestMatrix_PermuteShortestPaths(t *testing.T) {
	g := cities(t)

	var b strings.Builder
	require.True(t, g.PermuteShortestPaths("Pueblo", &b))

	out := b.String()
	assert.Contains(t, out, "shortestPath Pueblo to Boulder\n|{Pueblo, Denver, Boulder}| = 110")
	assert.Contains(t, out, "shortestPath Pueblo to Pueblo\nNo Path Found")
}

func TestMatrix_HasCircuit(t *testing.T) {
	g := cities(t)
	assert.True(t, g.HasCircuit("Denver"))
	assert.False(t, g.HasCircuit("Aspen"), "unknown start")

	g.DeleteEdge("Boulder", "Pueblo")
	assert.False(t, g.HasCircuit("Denver"))
}

func TestMatrix_HasCircuit_Directed(t *testing.T) {
	g := adjmatrix.New[string](core.WithDirected())
	for _, v := range []string{"A", "B", "C"} {
		g.AddVertex(v)
	}
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	assert.False(t, g.HasCircuit("A"), "a directed path is not a circuit")

	g.AddEdge("C", "A", 0)
	assert.True(t, g.HasCircuit("A"))
}

func TestMatrix_String(t *testing.T) {
	g := cities(t)

	out := g.String()
	assert.True(t, strings.HasPrefix(out, "Weighted\nUndigraph\n"))
	assert.Contains(t, out, "Denver -> Boulder-30 Pueblo-80")
}
