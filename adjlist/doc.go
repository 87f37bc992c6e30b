// Package adjlist implements the sparse adjacency-list representation of the
// duograph contract.
//
// Storage is an arena of vertex entries kept in insertion order (deleted
// slots are tombstoned), an index from vertex value to arena slot, and per
// entry an ordered slice of out-arcs. Arcs append at the tail, so adjacency
// order is insertion order; undirected edges add a mirror arc sharing the
// same edge record.
//
// Connectivity is an eagerly maintained cache measured against the root
// vertex (the first vertex inserted; on its deletion the next live entry in
// insertion order is promoted and every flag is recomputed). A single
// integer state tracks vertex count minus connected count: 0 means
// connected, -1 means empty, anything positive counts vertices with no path
// to the root. Edge mutations update the cache incrementally — a flood mark
// when a component gains the root, per-endpoint reachability rechecks when
// an edge or vertex disappears.
//
// Cost profile: vertex lookup resolves through the index map in O(1);
// duplicate and edge tests are O(degree); IsConnected is O(1).
package adjlist
