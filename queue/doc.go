// Package queue implements D, the block priority structure BMSSP uses to
// pull groups of smallest-key vertices instead of one at a time.
//
// D is an ordered multiset of (key, vertex) pairs keyed by graph.VertexID
// and graph.Weight. It supports insert-with-decrease, batched prepend of
// small-key pairs, an emptiness test, and pull, which hands back a bounded
// block of the currently-smallest-keyed vertices together with the key
// threshold they were pulled under.
//
// Internally D is a single min-heap of (key, vertex) entries plus a side
// map recording each vertex's current best (smallest) key. Inserting a
// vertex that is already live with a larger key leaves the stale heap
// entry in place as a lazy tombstone: it is discarded the next time it
// would otherwise reach the top, rather than hunted down and fixed in
// place. This trades heap-decrease-key cost for occasional wasted pops,
// which is the structural trick the block-pull relies on.
package queue
