// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrNilDistanceFunc indicates that Build was called without a distance function.
	ErrNilDistanceFunc = errors.New("core: distance function is nil")

	// ErrDuplicatePoint indicates that two input points share an ID.
	ErrDuplicatePoint = errors.New("core: duplicate point id")

	// ErrNegativeWeight indicates that the distance function produced a
	// negative, NaN or infinite weight for some edge.
	ErrNegativeWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrPointNotFound indicates a lookup of an ID that is not in the graph.
	ErrPointNotFound = errors.New("core: point not found")
)

// Point is a uniquely identified 2-D coordinate. X and Y are opaque to the
// graph and only interpreted by the DistanceFunc.
type Point struct {
	ID int     `json:"id" yaml:"id"`
	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
}

// String renders the point as "id(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("%d(%g, %g)", p.ID, p.X, p.Y)
}

// Edge is an undirected connection between two point IDs.
type Edge struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// Connects reports whether e joins a and b in either orientation.
func (e Edge) Connects(a, b int) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// Neighbor is one adjacency entry: the adjacent point and the edge weight.
type Neighbor struct {
	ID     int
	Weight float64
}

// DistanceFunc returns the weight of the edge joining a and b.
// It must be pure and return a finite, non-negative number.
type DistanceFunc func(a, b Point) float64
