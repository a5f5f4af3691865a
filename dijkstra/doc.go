// SPDX-License-Identifier: MIT

// Package dijkstra finds the shortest path between two points of a planar
// graph given as raw point and edge lists.
//
// Overview:
//
//   - FindShortestPath builds a fresh undirected adjacency (core.Build) with a
//     caller-supplied distance function, then runs single-source Dijkstra
//     from the start point with early exit when the end point is popped.
//   - The frontier is a pq.MinHeap without decrease-key. Improved distances
//     are pushed as new entries and stale ones are discarded on extraction
//     by the visited-set check (“lazy deletion”).
//   - The call is synchronous and owns all of its state, so independent
//     queries may run on separate goroutines as long as the input slices are
//     not mutated meanwhile.
//
// Result contract:
//
//   - start == end:  Path [start], Cost 0, NodesExplored 0, Reachable true.
//   - unreachable:   Path nil, Cost +Inf, Reachable false.
//   - NodesExplored never exceeds the number of points.
//   - Elapsed covers graph construction and search in one span.
//   - SkippedEdges counts edges dropped for an unknown endpoint.
//
// Tie-breaking between equal-cost paths is whatever the heap pops first; it
// is deterministic for a fixed input order but not otherwise specified.
//
// Error handling (sentinel errors):
//
//   - ErrNoPoints:        the point list is empty.
//   - ErrVertexNotFound:  start or end is not a point ID.
//   - core.ErrDuplicatePoint, core.ErrNilDistanceFunc, core.ErrNegativeWeight:
//     surfaced from graph construction, wrapped with %w.
//   - ErrBadMaxDistance:  panic from WithMaxDistance on a negative value.
//
// Options:
//
//   - WithMaxDistance(d): stop exploring past distance d.
//   - WithLogger(l):      zap logger for diagnostics (default no-op).
//   - WithOnExplore(fn):  hook run for each settled point.
//   - WithClock(now):     clock used for Elapsed.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holding up to E stale entries.
//
// For much larger graphs an indexed heap with decrease-key would bound the
// heap at V entries; at the sizes this package targets the lazy heap is
// simpler and fast enough.
package dijkstra
