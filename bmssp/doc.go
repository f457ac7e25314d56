// Package bmssp implements the Bounded Multi-Source Shortest Path engine: a
// recursive, level-structured single-source shortest-path algorithm for
// sparse directed graphs with non-negative edge weights.
//
// ShortestPaths is the entry point most callers want: it seeds a Map,
// derives a recursion depth from the graph's vertex count, and runs BMSSP
// once from the given source. BMSSP itself is exported for callers that
// want to bound a search directly — given a level l, an exclusive bound b,
// and a source set s, it lowers every reachable vertex's distance below b
// and returns a tightened bound together with the set of vertices it
// guarantees are now settled.
//
// At level 0, BMSSP delegates to basecase, a k-limited Dijkstra variant
// seeded from the single closest member of s. At higher levels it calls
// findPivots once to choose a pivot set and discover a witness set, then
// repeatedly pulls a block of smallest-distance vertices from a queue.D,
// recurses one level down on that block, and relaxes outward from the
// result — routing newly improved distances into one of three half-open
// zones depending on how they compare to the block's own bound and the
// frame's bound.
//
// Complexity, parameter derivation (t, k, the pivot cap, the per-frame
// loop limit) and the zone-routing rules are all dictated by the numbers
// baked into params.go and bmssp.go; they are not tunable beyond the
// Options this package exposes (instrumentation counters and a loop-guard
// override).
package bmssp
