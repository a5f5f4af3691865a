// Package polyroute finds shortest paths across planar point/edge graphs
// read from ".poly" files.
//
// 🚀 What is polyroute?
//
//	A small routing toolkit built around one engine:
//		• Graph construction: points + undirected edges → weighted adjacency
//		• Shortest paths: Dijkstra over a hand-written binary min-heap
//		• Statistics: cost, settled-node count, elapsed time, skipped edges
//		• I/O: both .poly dialects (tabular and labelled)
//		• Picking: nearest point to a coordinate via an R-tree
//
// ✨ Guarantees
//
//   - Deterministic – adjacency keeps input order, ties resolve by heap order
//   - Stateless – every query builds its own graph; callers may run in parallel
//   - Honest results – an unreachable target is a Result, not an error
//
// Packages:
//
//	core/      — Point, Edge, Graph construction and distance functions
//	pq/        — binary min-heap of (id, distance) entries
//	dijkstra/  — FindShortestPath and its Result
//	bfs/       — hop-count traversal and connected components
//	builder/   — deterministic grid, path, cycle and random-geometric fixtures
//	poly/      — .poly parser and encoder, plus the 10-point sample
//	report/    — highlighted edges, path text and the statistics block
//	spatial/   — nearest-point and rectangle lookup
//	cmd/polyroute — the command-line front end
//
// The sample graph (poly.Sample) is the ring 0-9-8-7-6-5-4-3-2-1-0 with
// chords from 1 to 8, 6 and 5; the route 0 → 2 runs 0 → 1 → 2.
//
//	go install github.com/katalvlaran/polyroute/cmd/polyroute@latest
package polyroute
