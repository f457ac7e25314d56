package bmssp

import "github.com/arrakis-graph/bmssp/graph"

// Map is the mutable vertex -> tentative distance mapping threaded through
// a single query's recursion. Its zero default for any unseen vertex is
// +Inf; it is mutated only by Relax and relaxLE and read by every component of
// the engine. A Map is owned by the query that created it — a recursive
// callee never retains a reference to it past return, and no instance
// outlives its query.
//
// Distances are monotone non-increasing over the lifetime of a query:
// Relax and relaxLE never raise dist[v].
type Map struct {
	dist map[graph.VertexID]graph.Weight
}

// NewMap returns an empty distance map; every vertex reads as +Inf until
// relaxed.
func NewMap() *Map {
	return &Map{dist: make(map[graph.VertexID]graph.Weight)}
}

// Get returns the current tentative distance for v, or +Inf if v has never
// been relaxed.
func (m *Map) Get(v graph.VertexID) graph.Weight {
	if d, ok := m.dist[v]; ok {
		return d
	}

	return graph.Inf
}

// Relax sets dist[v] = d and reports true if d is strictly smaller than
// the current tentative distance; otherwise it leaves dist unmodified and
// reports false.
func (m *Map) Relax(v graph.VertexID, d graph.Weight) bool {
	if d < m.Get(v) {
		m.dist[v] = d

		return true
	}

	return false
}

// relaxLE sets dist[v] = d whenever d <= the current tentative distance,
// including ties, and reports whether it did. It exists only for the
// recursive engine's three-zone relaxation sweep, which deliberately uses
// <= rather than < at the interval boundaries (see bmssp.go); every other
// caller wants Relax's strict semantics instead.
func (m *Map) relaxLE(v graph.VertexID, d graph.Weight) bool {
	if d <= m.Get(v) {
		m.dist[v] = d

		return true
	}

	return false
}
