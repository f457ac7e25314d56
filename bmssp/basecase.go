package bmssp

import (
	"container/heap"

	"github.com/arrakis-graph/bmssp/graph"
)

// basecaseItem is a single (vertex, distance) slot in basecase's min-heap.
// Like the recursive engine's D, basecase uses lazy deletion: a popped item
// is stale, and skipped, whenever dist no longer agrees with the priority
// it was pushed with.
type basecaseItem struct {
	vertex graph.VertexID
	dist   graph.Weight
}

type basecaseHeap []basecaseItem

func (h basecaseHeap) Len() int            { return len(h) }
func (h basecaseHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h basecaseHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *basecaseHeap) Push(x interface{}) { *h = append(*h, x.(basecaseItem)) }
func (h *basecaseHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// basecase is C4's l=0 specialization: a k-limited Dijkstra variant seeded
// from the single closest member of s. It settles vertices strictly below
// b until it has k+1 of them or runs out of reachable vertices, whichever
// comes first.
func basecase(g *graph.Graph, dist *Map, b graph.Weight, s []graph.VertexID, k int, opts Options) (graph.Weight, []graph.VertexID) {
	if len(s) == 0 {
		return b, nil
	}

	x := s[0]
	for _, v := range s[1:] {
		dv, dx := dist.Get(v), dist.Get(x)
		if dv < dx || (dv == dx && v < x) {
			x = v
		}
	}

	limit := k + 1
	settled := make(map[graph.VertexID]struct{}, limit)
	order := make([]graph.VertexID, 0, limit)

	h := basecaseHeap{{vertex: x, dist: dist.Get(x)}}
	heap.Init(&h)
	opts.counters.addHeapOp()

	for h.Len() > 0 && len(order) < limit {
		item := heap.Pop(&h).(basecaseItem)
		opts.counters.addHeapOp()
		if _, ok := settled[item.vertex]; ok {
			continue // stale: already settled via a smaller priority
		}
		if item.dist > dist.Get(item.vertex) {
			continue // stale: a better distance has since been recorded
		}

		settled[item.vertex] = struct{}{}
		order = append(order, item.vertex)
		if len(order) >= limit {
			break
		}

		u := item.vertex
		for _, e := range g.Neighbors(u) {
			nd := dist.Get(u) + e.Weight
			if nd >= b {
				continue
			}
			opts.counters.addRelaxation()
			if dist.Relax(e.To, nd) {
				heap.Push(&h, basecaseItem{vertex: e.To, dist: nd})
				opts.counters.addHeapOp()
			}
		}
	}

	if len(order) <= k {
		return b, order
	}

	dMax := graph.Weight(0)
	found := false
	for _, v := range order {
		if d := dist.Get(v); d < graph.Inf {
			if !found || d > dMax {
				dMax = d
			}
			found = true
		}
	}
	if !found {
		return b, nil
	}

	u0 := make([]graph.VertexID, 0, len(order))
	for _, v := range order {
		if dist.Get(v) < dMax {
			u0 = append(u0, v)
		}
	}

	return dMax, u0
}
