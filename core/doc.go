// SPDX-License-Identifier: MIT

// Package core defines the planar graph types (Point, Edge, Neighbor) and
// the per-query weighted adjacency built from raw point and edge lists.
//
// A Graph is derived data: Build turns an ordered point list, an ordered
// edge list and a DistanceFunc into an undirected adjacency where every
// edge contributes one Neighbor entry to each endpoint. Graphs are never
// cached or shared between queries; build a fresh one per search.
//
// Build rules:
//
//   - Every point gets an adjacency entry, isolated points included.
//   - Point IDs must be unique (ErrDuplicatePoint).
//   - An edge whose endpoint is not among the points is skipped and
//     recorded (Graph.Skipped); it is a data-quality condition, not an error.
//   - Parallel edges are kept as separate Neighbor entries.
//   - The DistanceFunc must return a finite, non-negative weight
//     (ErrNegativeWeight otherwise).
//
// Iteration order is deterministic: IDs() follows the input point order and
// each neighbor list follows the input edge order.
//
// Distance functions:
//
//	Euclidean  planar distance between (X, Y) pairs.
//	Haversine  great-circle metres, reading X as longitude and Y as latitude.
//
// A built Graph is read-only and may be shared by concurrent readers.
package core
