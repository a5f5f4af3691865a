// SPDX-License-Identifier: MIT

package core

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// Euclidean is the conventional DistanceFunc: sqrt((x1-x2)^2 + (y1-y2)^2).
func Euclidean(a, b Point) float64 {
	return planar.Distance(a.Orb(), b.Orb())
}

// Haversine treats X as longitude and Y as latitude (degrees) and returns
// the great-circle distance in metres.
func Haversine(a, b Point) float64 {
	return geo.DistanceHaversine(a.Orb(), b.Orb())
}

// Orb converts p to an orb.Point (X, Y).
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}
