// Package adjmatrix implements the dense matrix representation of the
// duograph contract.
//
// Storage is a square grid of edge cells (cells[i][j] holds the edge i->j,
// the diagonal stays empty), a slot table of vertex records (nil marks a
// free slot), and an index from vertex value to slot. When every slot is
// taken the three structures grow by DefaultExpansion; capacity never
// shrinks, and freed slots are reused first.
//
// Unlike the list representation there is no incremental connectivity
// cache: IsConnected performs one reachability sweep from the first
// occupied slot over the weak (either-direction) adjacency view and
// refreshes every vertex's Connected flag as it goes.
//
// Cost profile: vertex and edge lookup are O(1) through the index map and
// the grid; OutNeighbors and per-vertex mutations scan one row/column,
// O(capacity).
package adjmatrix
