package algorithms

import "github.com/arrakis-graph/bmssp/graph"

// DistanceReader is the read-only distance view BoundedWalk needs. It is
// satisfied structurally by any distance map that exposes Get; BoundedWalk
// never calls a mutator, matching its "read-only, purely exploratory"
// contract.
type DistanceReader interface {
	Get(v graph.VertexID) graph.Weight
}

// BoundedWalk expands outward from roots for up to maxRounds rounds,
// visiting u only while dist.Get(u) < bound, and discovering v across edge
// (u -> v, w) only when dist.Get(u)+w < bound. Every root is discovered
// unconditionally, even one whose distance is already >= bound.
//
// The walk stops early once a round's frontier is empty. Discovery order
// is deterministic: roots in the order given, then each round's new
// vertices in the order their discovering edge was visited.
//
// BoundedWalk does not mutate dist; it is pure discovery over a read-only
// distance snapshot.
func BoundedWalk(g *graph.Graph, dist DistanceReader, roots []graph.VertexID, bound graph.Weight, maxRounds int) []graph.VertexID {
	if maxRounds < 1 {
		maxRounds = 1
	}

	discovered := make([]graph.VertexID, 0, len(roots))
	seen := make(map[graph.VertexID]struct{}, len(roots))
	for _, r := range roots {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		discovered = append(discovered, r)
	}

	frontier := append([]graph.VertexID(nil), discovered...)

	for round := 0; round < maxRounds && len(frontier) > 0; round++ {
		var next []graph.VertexID
		for _, u := range frontier {
			if dist.Get(u) >= bound {
				continue
			}
			for _, e := range g.Neighbors(u) {
				if _, ok := seen[e.To]; ok {
					continue
				}
				if dist.Get(u)+e.Weight >= bound {
					continue
				}
				seen[e.To] = struct{}{}
				discovered = append(discovered, e.To)
				next = append(next, e.To)
			}
		}
		frontier = next
	}

	return discovered
}
