package bmssp_test

import (
	"math/rand"
	"testing"

	"github.com/arrakis-graph/bmssp/bmssp"
	"github.com/arrakis-graph/bmssp/graph"
)

// generateRandomGraph builds a random directed graph with n vertices and
// approximately m edges, weights uniform in [1, maxWeight+1).
func generateRandomGraph(n, m int, maxWeight float64, seed int64) *graph.Graph {
	r := rand.New(rand.NewSource(seed))
	g := graph.NewGraph()
	for v := 0; v < n; v++ {
		g.AddVertex(graph.VertexID(v))
	}

	for i := 0; i < m; i++ {
		u := graph.VertexID(r.Intn(n))
		v := graph.VertexID(r.Intn(n))
		if u == v {
			continue
		}
		w := graph.Weight(r.Float64()*maxWeight + 1)
		g.AddEdge(u, v, w)
	}

	return g
}

// generateGridGraph builds a width x height grid with unit-weight compass
// edges in both directions.
func generateGridGraph(width, height int) *graph.Graph {
	g := graph.NewGraph()
	idx := func(i, j int) graph.VertexID { return graph.VertexID(i*width + j) }

	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			g.AddVertex(idx(i, j))
		}
	}
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			if j < width-1 {
				g.AddEdge(idx(i, j), idx(i, j+1), 1)
				g.AddEdge(idx(i, j+1), idx(i, j), 1)
			}
			if i < height-1 {
				g.AddEdge(idx(i, j), idx(i+1, j), 1)
				g.AddEdge(idx(i+1, j), idx(i, j), 1)
			}
		}
	}

	return g
}

func BenchmarkShortestPathsRandom100(b *testing.B) {
	g := generateRandomGraph(100, 500, 10.0, 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bmssp.ShortestPaths(g, 0)
	}
}

func BenchmarkShortestPathsRandom500(b *testing.B) {
	g := generateRandomGraph(500, 2500, 10.0, 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bmssp.ShortestPaths(g, 0)
	}
}

func BenchmarkShortestPathsRandom2000(b *testing.B) {
	g := generateRandomGraph(2000, 10000, 10.0, 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bmssp.ShortestPaths(g, 0)
	}
}

func BenchmarkShortestPathsGrid20x20(b *testing.B) {
	g := generateGridGraph(20, 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bmssp.ShortestPaths(g, 0)
	}
}

func BenchmarkShortestPathsGrid50x50(b *testing.B) {
	g := generateGridGraph(50, 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bmssp.ShortestPaths(g, 0)
	}
}

// BenchmarkBMSSPDirectWithInstrumentation measures a direct level-4 BMSSP
// call on a 500-vertex random graph with WithInstrumentation's counters
// attached.
func BenchmarkBMSSPDirectWithInstrumentation(b *testing.B) {
	g := generateRandomGraph(500, 2500, 10.0, 7)
	counters := &bmssp.Counters{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dist := bmssp.NewMap()
		dist.Relax(0, 0)
		bmssp.BMSSP(g, dist, 4, graph.Inf, []graph.VertexID{0}, 500, bmssp.WithInstrumentation(counters))
	}
}
