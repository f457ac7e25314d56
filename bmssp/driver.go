package bmssp

import "github.com/arrakis-graph/bmssp/graph"

// ShortestPaths computes the shortest-path distance from source to every
// vertex reachable in g. It initializes dist[v] = +Inf for every vertex,
// dist[source] = 0, computes the recursion depth l, and invokes BMSSP with
// the whole graph as a single bounded frame.
//
// ShortestPaths never fails on a well-formed graph: every vertex of g ends
// up in the returned map, with +Inf recorded for anything unreachable from
// source. Malformed input — here, a source absent from g — is rejected
// with ErrSourceNotFound rather than silently producing an all-+Inf map.
func ShortestPaths(g *graph.Graph, source graph.VertexID, opts ...Option) (map[graph.VertexID]graph.Weight, error) {
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}

	dist := NewMap()
	vertices := g.Vertices()
	n := len(vertices)

	dist.Relax(source, 0)

	t := deriveParams(n).t
	l := deriveLevel(n, t)

	BMSSP(g, dist, l, graph.Inf, []graph.VertexID{source}, n, opts...)

	out := make(map[graph.VertexID]graph.Weight, n)
	for _, v := range vertices {
		out[v] = dist.Get(v)
	}

	return out, nil
}
