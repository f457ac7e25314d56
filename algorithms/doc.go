// Package algorithms implements graph traversal primitives shared by the
// bmssp engine.
//
// BoundedWalk is a breadth-limited, bound-limited frontier walk: it expands
// outward from a root set for a fixed number of rounds, discovering every
// vertex reachable within that many relaxations whose candidate distance
// stays strictly below a caller-supplied bound. It never mutates the
// distance estimates it reads — discovery is purely exploratory, the same
// way a reconnaissance BFS probes a frontier without committing to it.
package algorithms
