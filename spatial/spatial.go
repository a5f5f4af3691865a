// SPDX-License-Identifier: MIT

// Package spatial indexes points in an R-tree so a coordinate can be
// resolved to a point ID, the way a click on a map selects a node.
//
// Distances here are planar in X/Y regardless of the DistanceFunc used for
// routing; for lon/lat data this is adequate for picking but not for costs.
package spatial

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/polyroute/core"
)

var (
	// ErrBadRect indicates a query rectangle with max < min or a NaN bound.
	ErrBadRect = errors.New("spatial: invalid rectangle")

	// ErrBadRadius indicates a negative or NaN pick radius.
	ErrBadRadius = errors.New("spatial: radius must be non-negative")
)

// tolerance gives every point a tiny non-empty box, since rtreego rejects
// zero-length rectangle sides.
const tolerance = 1e-9

// entry stores one point in the tree.
type entry struct {
	point core.Point
	box   rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect {
	return e.box
}

// Index is an immutable R-tree over a point set. Safe for concurrent reads.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// New indexes points. Points with NaN coordinates are not indexed.
func New(points []core.Point) *Index {
	tree := rtreego.NewTree(2, 25, 50)
	size := 0
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		tree.Insert(&entry{point: p, box: rtreego.Point{p.X, p.Y}.ToRect(tolerance)})
		size++
	}

	return &Index{tree: tree, size: size}
}

// Len returns the number of indexed points.
func (ix *Index) Len() int {
	return ix.size
}

// Nearest returns the point closest to (x, y). ok is false on an empty index.
func (ix *Index) Nearest(x, y float64) (p core.Point, ok bool) {
	if ix.size == 0 {
		return core.Point{}, false
	}
	hit := ix.tree.NearestNeighbor(rtreego.Point{x, y})
	if hit == nil {
		return core.Point{}, false
	}

	return hit.(*entry).point, true
}

// Pick returns the nearest point to (x, y) if it lies within radius.
func (ix *Index) Pick(x, y, radius float64) (core.Point, bool, error) {
	if radius < 0 || math.IsNaN(radius) {
		return core.Point{}, false, fmt.Errorf("%w: %v", ErrBadRadius, radius)
	}
	p, ok := ix.Nearest(x, y)
	if !ok || math.Hypot(p.X-x, p.Y-y) > radius {
		return core.Point{}, false, nil
	}

	return p, true, nil
}

// Within returns the points inside the closed rectangle
// [minX, maxX] x [minY, maxY], ordered by ID.
func (ix *Index) Within(minX, minY, maxX, maxY float64) ([]core.Point, error) {
	if !(minX <= maxX) || !(minY <= maxY) {
		return nil, fmt.Errorf("%w: (%v, %v)-(%v, %v)", ErrBadRect, minX, minY, maxX, maxY)
	}

	box, err := rtreego.NewRect(
		rtreego.Point{minX - tolerance, minY - tolerance},
		[]float64{maxX - minX + 2*tolerance, maxY - minY + 2*tolerance},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRect, err)
	}

	hits := ix.tree.SearchIntersect(box)
	out := make([]core.Point, 0, len(hits))
	for _, h := range hits {
		p := h.(*entry).point
		if p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
