package bmssp

import (
	"sort"

	"github.com/arrakis-graph/bmssp/algorithms"
	"github.com/arrakis-graph/bmssp/graph"
)

// findPivots implements C3: from a candidate source set s and an exclusive
// bound b, it produces a pivot set p (p subset of s) and a witness set w of
// vertices reachable within kSteps bounded relaxations of p whose tentative
// distance stays below b.
//
// findPivots only reads dist; it never relaxes it. Tie-breaking among
// equal distances sorts by ascending vertex ID, which the spec leaves
// implementation-defined but requires to be deterministic.
func findPivots(g *graph.Graph, dist *Map, s []graph.VertexID, b graph.Weight, kSteps, pLimit int) (p, w []graph.VertexID) {
	sBelow := make([]graph.VertexID, 0, len(s))
	for _, v := range s {
		if dist.Get(v) < b {
			sBelow = append(sBelow, v)
		}
	}

	if len(sBelow) == 0 {
		p = takeSorted(s, func(a, b graph.VertexID) bool { return a < b }, pLimit)
	} else {
		p = takeSorted(sBelow, func(a, bv graph.VertexID) bool {
			if dist.Get(a) != dist.Get(bv) {
				return dist.Get(a) < dist.Get(bv)
			}

			return a < bv
		}, pLimit)
	}

	roots := p
	if len(roots) == 0 {
		roots = s
	}

	w = algorithms.BoundedWalk(g, dist, roots, b, kSteps)

	if len(p) == 0 && len(s) > 0 {
		p = []graph.VertexID{smallest(s)}
	}

	return p, w
}

// takeSorted returns up to max(1, min(len(items), limit)) elements of
// items, sorted ascending by less, without mutating the caller's slice.
func takeSorted(items []graph.VertexID, less func(a, b graph.VertexID) bool, limit int) []graph.VertexID {
	if len(items) == 0 {
		return nil
	}

	sorted := append([]graph.VertexID(nil), items...)
	sort.Slice(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	n := maxInt(1, minInt(len(sorted), limit))

	return sorted[:n]
}

func smallest(vs []graph.VertexID) graph.VertexID {
	best := vs[0]
	for _, v := range vs[1:] {
		if v < best {
			best = v
		}
	}

	return best
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
