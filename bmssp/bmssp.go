package bmssp

import (
	"sort"

	"github.com/arrakis-graph/bmssp/graph"
	"github.com/arrakis-graph/bmssp/queue"
)

// BMSSP is C4: the level-parameterized recursive bounded multi-source
// shortest-path solver. Given a level l, a bound b, and a source set s, it
// lowers every vertex distance reachable with total distance < b and
// returns an updated bound b' <= b together with the set u of vertices
// this call guarantees are settled (dist[v] < b') within the region
// bounded by b.
//
// dist is mutated in place; g is read-only for the duration of the call.
// BMSSP may be called directly by advanced consumers wishing to bound a
// search — ShortestPaths is the usual single-source entry point.
func BMSSP(g *graph.Graph, dist *Map, l int, b graph.Weight, s []graph.VertexID, n int, opts ...Option) (graph.Weight, []graph.VertexID) {
	o := newOptions(opts...)

	return bmsspLevel(g, dist, l, b, s, n, o)
}

func bmsspLevel(g *graph.Graph, dist *Map, l int, b graph.Weight, s []graph.VertexID, n int, o Options) (graph.Weight, []graph.VertexID) {
	p := deriveParams(n)

	if l == 0 {
		return basecase(g, dist, b, s, p.k, o)
	}

	pivots, witnesses := findPivots(g, dist, s, b, p.kSteps, p.pLimit)

	m := 1 << maxInt(0, (l-1)*p.t)
	blockSize := maxInt(1, minInt(len(pivots), 64))
	d := queue.New(m, blockSize)
	for _, x := range pivots {
		d.Insert(x, dist.Get(x))
		o.counters.addHeapOp()
	}

	bPrimeFinal := b
	if len(pivots) > 0 {
		bPrimeFinal = dist.Get(pivots[0])
		for _, x := range pivots[1:] {
			if dx := dist.Get(x); dx < bPrimeFinal {
				bPrimeFinal = dx
			}
		}
	}

	settled := make(map[graph.VertexID]struct{})
	limit := mainLoopLimit(p, l)

	guard := 0
	for len(settled) < limit && !d.Empty() && guard <= o.loopGuard {
		guard++

		bi, si, err := d.Pull()
		o.counters.addHeapOp()
		if err != nil {
			break // D signalled empty: clean end of this frame's work
		}

		bSub, ui := bmsspLevel(g, dist, l-1, bi, si, n, o)
		if bSub < bPrimeFinal {
			bPrimeFinal = bSub
		}
		for _, v := range ui {
			settled[v] = struct{}{}
		}

		batch := relaxationSweep(g, dist, d, ui, bi, bSub, b, &o)
		batch = append(batch, boundarySweep(dist, si, bSub, bi)...)
		if len(batch) > 0 {
			d.BatchPrepend(batch)
		}
	}

	return bPrimeFinal, finalizeSettled(dist, settled, witnesses, bPrimeFinal)
}

// mainLoopLimit is the cap on |U| the main loop drains toward before
// stopping on its own, independent of the safety loop guard.
func mainLoopLimit(p params, l int) int {
	return p.k * (1 << (l * maxInt(1, p.t)))
}

// relaxationSweep relaxes every edge out of ui and routes each improved
// distance into one of three half-open zones: [bi, b) is fed straight into
// this frame's D, [bSub, bi) is staged for batch prepend (returned to the
// caller), and >= b only updates dist for outer frames. It deliberately
// uses <= (not <) so that ties at a zone boundary still route correctly;
// duplicate entries fed into D are harmless thanks to lazy deletion.
func relaxationSweep(g *graph.Graph, dist *Map, d *queue.D, ui []graph.VertexID, bi, bSub, b graph.Weight, o *Options) []queue.Pair {
	var batch []queue.Pair
	for _, u := range ui {
		du := dist.Get(u)
		if du >= graph.Inf {
			continue
		}
		for _, e := range g.Neighbors(u) {
			nd := du + e.Weight
			if !dist.relaxLE(e.To, nd) {
				continue
			}
			o.counters.addRelaxation()

			switch {
			case nd >= bi && nd < b:
				d.Insert(e.To, nd)
				o.counters.addHeapOp()
			case nd >= bSub && nd < bi:
				batch = append(batch, queue.Pair{Vertex: e.To, Key: nd})
			}
		}
	}

	return batch
}

// boundarySweep re-stages members of si whose distance slipped into
// [bSub, bi) — out-of-order artifacts of the child frame's own recursion —
// so they are re-presented to this frame's D with priority.
func boundarySweep(dist *Map, si []graph.VertexID, bSub, bi graph.Weight) []queue.Pair {
	var batch []queue.Pair
	for _, x := range si {
		if dx := dist.Get(x); dx >= bSub && dx < bi {
			batch = append(batch, queue.Pair{Vertex: x, Key: dx})
		}
	}

	return batch
}

func finalizeSettled(dist *Map, settled map[graph.VertexID]struct{}, witnesses []graph.VertexID, bound graph.Weight) []graph.VertexID {
	out := make([]graph.VertexID, 0, len(settled))
	for v := range settled {
		out = append(out, v)
	}
	for _, x := range witnesses {
		if _, ok := settled[x]; ok {
			continue
		}
		if dist.Get(x) < bound {
			out = append(out, x)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
