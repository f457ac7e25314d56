package queue

import (
	"container/heap"
	"errors"

	"github.com/arrakis-graph/bmssp/graph"
)

// ErrEmptyPull is returned by Pull when D holds no live entry. Callers treat
// it as a clean "no more work" signal, not a failure: the recursive main
// loop converts it directly into a break out of the pull/recurse cycle.
var ErrEmptyPull = errors.New("queue: pull on empty D")

// Pair is a (vertex, key) entry accepted by Insert and BatchPrepend.
type Pair struct {
	Vertex graph.VertexID
	Key    graph.Weight
}

// entry is a single heap slot. A heap entry is "live" as long as best[v]
// still equals key; once a smaller key for v is recorded, or v has been
// pulled, the entry is a tombstone and is discarded on pop.
type entry struct {
	vertex graph.VertexID
	key    graph.Weight
}

type minHeap []entry

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// D is the block priority structure described in package doc. Its zero
// value is not usable; construct one with New.
type D struct {
	blockSize int
	heap      minHeap
	best      map[graph.VertexID]graph.Weight
}

// New constructs a D parameterized by a capacity hint m (m >= 1) and a
// block size. A non-positive blockSize defaults to max(1, m/8); m itself
// is otherwise advisory and is never enforced as a hard cap.
func New(m int, blockSize int) *D {
	if m < 1 {
		m = 1
	}
	if blockSize <= 0 {
		blockSize = m / 8
		if blockSize < 1 {
			blockSize = 1
		}
	}

	return &D{
		blockSize: blockSize,
		best:      make(map[graph.VertexID]graph.Weight),
	}
}

// Insert records key as v's new best if D has no live entry for v or v's
// current best strictly exceeds key. The previous entry, if any, is left
// in the heap as a lazy tombstone.
func (d *D) Insert(v graph.VertexID, key graph.Weight) {
	if cur, ok := d.best[v]; ok && cur <= key {
		return
	}
	d.best[v] = key
	heap.Push(&d.heap, entry{vertex: v, key: key})
}

// BatchPrepend accepts a batch of (vertex, key) pairs expected to carry
// keys small relative to what D already holds. It is semantically
// equivalent to calling Insert on every pair.
func (d *D) BatchPrepend(pairs []Pair) {
	for _, p := range pairs {
		d.Insert(p.Vertex, p.Key)
	}
}

// cleanTop discards tombstoned entries from the heap's top until either the
// heap is empty or its top entry is live (its key matches best[vertex]).
func (d *D) cleanTop() {
	for len(d.heap) > 0 {
		top := d.heap[0]
		if cur, ok := d.best[top.vertex]; ok && cur == top.key {
			return
		}
		heap.Pop(&d.heap)
	}
}

// Empty reports whether D holds any live entry, after discarding stale
// tombstones from the heap's top.
func (d *D) Empty() bool {
	d.cleanTop()

	return len(d.heap) == 0
}

// Pull removes and returns up to blockSize of the currently smallest-keyed
// live vertices, along with Bi, the smallest live key before the pull.
// Every returned vertex is no longer live in D. Pull returns ErrEmptyPull
// if D holds no live entry.
func (d *D) Pull() (graph.Weight, []graph.VertexID, error) {
	d.cleanTop()
	if len(d.heap) == 0 {
		return 0, nil, ErrEmptyPull
	}

	bi := d.heap[0].key
	s := make([]graph.VertexID, 0, d.blockSize)

	for len(s) < d.blockSize && len(d.heap) > 0 {
		e := heap.Pop(&d.heap).(entry)
		cur, ok := d.best[e.vertex]
		if !ok || cur != e.key {
			continue // stale tombstone
		}
		delete(d.best, e.vertex)
		s = append(s, e.vertex)
	}

	return bi, s, nil
}
