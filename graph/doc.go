// Package graph provides the minimal directed, weighted graph representation
// consumed by the bmssp engine.
//
// A Graph is a mapping from a vertex to an ordered sequence of outgoing
// (neighbour, weight) pairs. Vertices are opaque int64 handles; no value
// carries meaning beyond identity. Edge weights are non-negative finite
// float64 values — +Inf is reserved as the "no known path" sentinel used by
// distance maps and must never be assigned to an edge.
//
// Graph is built once by the caller and then treated as immutable for the
// duration of a query: consumers of this package only ever iterate a
// vertex's outgoing edges or test whether a vertex has any record at all.
// Mutations after construction are safe (AddVertex/AddEdge may be called at
// any time) but are not expected to interleave with an in-flight query.
package graph
