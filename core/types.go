// SPDX-License-Identifier: MIT

// File: types.go
// Role: Vertex and Edge records, sentinel errors, construction flags and the
//       density policy shared by both representations.
package core

import (
	"cmp"
	"errors"
	"math"
)

// ErrBadWeight indicates a weight that violates the graph's weight policy:
// a weight below MinEdgeWeight on a weighted graph, or a non-zero weight
// on an unweighted one. This is caller misuse; mutating operations panic
// with this sentinel rather than returning false.
var ErrBadWeight = errors.New("core: edge weight violates graph weight policy")

// Weight policy and density thresholds.
const (
	// MinEdgeWeight is the smallest weight a weighted graph accepts.
	// Weight 0 denotes "no weight" and is reserved for unweighted graphs.
	MinEdgeWeight = 1.0

	// SparseRatio is the density at or below which a graph is sparse.
	SparseRatio = 0.15

	// DenseRatio is the density at or above which a graph is dense.
	DenseRatio = 0.85
)

// Vertex wraps a user-supplied totally-ordered value.
//
// Value is the unique key within its graph; no two vertices compare equal.
// Connected caches whether a path exists from this vertex to the graph's
// root vertex. The list representation maintains it eagerly on every
// mutation; the matrix representation refreshes it during each on-demand
// connectivity sweep. Treat both fields as read-only.
type Vertex[T cmp.Ordered] struct {
	// Value is the unique identifier for this Vertex.
	Value T

	// Connected reports reachability to the root vertex (list representation).
	Connected bool
}

// Edge carries an optional positive weight; 0 means "unweighted".
//
// An undirected edge is one logical entity materialized as two directional
// records: both directions hold the same *Edge, so the equal-weight
// invariant is structural rather than maintained.
type Edge struct {
	// Weight is the cost of traversing this edge.
	Weight float64
}

// Config holds the construction-time flags of a graph. Both flags are fixed
// at construction and never change afterward.
type Config struct {
	Directed bool // edges are one-way
	Weighted bool // edges carry weights >= MinEdgeWeight
}

// Option configures a graph representation before creation.
type Option func(*Config)

// WithDirected makes new graphs directed (edges are one-way).
func WithDirected() Option {
	return func(c *Config) { c.Directed = true }
}

// WithWeighted makes new graphs weighted (weights must be >= MinEdgeWeight).
func WithWeighted() Option {
	return func(c *Config) { c.Weighted = true }
}

// NewConfig applies opts to a zero Config (undirected, unweighted) and
// returns the result.
func NewConfig(opts ...Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// MaxEdges returns the maximum number of edges a simple graph on n vertices
// can hold: n(n-1) directed, n(n-1)/2 undirected.
// Complexity: O(1).
func MaxEdges(n int, directed bool) float64 {
	denom := float64(n) * float64(n-1)
	if directed {
		return denom
	}

	return denom / 2
}

// IsSparseCount reports whether edges/MaxEdges <= SparseRatio for n vertices.
// Boundary policy: a single-vertex graph is not sparse; an empty graph is
// neither sparse nor dense (MaxEdges is 0 in both cases, so the ratio is
// undefined and the answer is fixed by convention).
func IsSparseCount(edges, n int, directed bool) bool {
	if n <= 1 {
		return false
	}

	return float64(edges)/MaxEdges(n, directed) <= SparseRatio
}

// IsDenseCount reports whether edges/MaxEdges >= DenseRatio for n vertices.
// A single-vertex graph is dense by convention; an empty graph is not.
func IsDenseCount(edges, n int, directed bool) bool {
	if n == 0 {
		return false
	}
	if n == 1 {
		return true
	}

	return float64(edges)/MaxEdges(n, directed) >= DenseRatio
}

// Inf is the distance assigned to unreachable vertices by the shortest-path
// engine: positive infinity.
func Inf() float64 { return math.Inf(1) }
