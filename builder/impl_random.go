// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodRandomGeometric = "RandomGeometric"
	methodDangling        = "Dangling"
	minRandomPoints       = 1
)

// RandomGeometric samples n points uniformly in the square
// [0, spacing)×[0, spacing) and joins every pair closer than radius.
// Requires an RNG (ErrNeedRandSource).
//
// Complexity: O(n²) pair checks.
func RandomGeometric(n int, radius float64) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < minRandomPoints {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodRandomGeometric, n, minRandomPoints, ErrTooFewVertices)
		}
		if !(radius > 0) {
			return fmt.Errorf("%s: radius=%g: %w", methodRandomGeometric, radius, ErrBadRadius)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGeometric, ErrNeedRandSource)
		}

		start := len(l.Points)
		for i := 0; i < n; i++ {
			l.addPoint(cfg.rng.Float64()*cfg.spacing, cfg.rng.Float64()*cfg.spacing)
		}

		r2 := radius * radius
		for i := start; i < len(l.Points); i++ {
			for j := i + 1; j < len(l.Points); j++ {
				dx := l.Points[i].X - l.Points[j].X
				dy := l.Points[i].Y - l.Points[j].Y
				if dx*dx+dy*dy < r2 {
					l.connect(l.Points[i].ID, l.Points[j].ID)
				}
			}
		}

		return nil
	}
}

// Dangling appends k edges whose far endpoint is an ID no point of the
// layout can receive: IDs below both the lowest existing point ID and the
// next free ID, which later constructors only count up from. Near
// endpoints are existing points round-robin. Useful for exercising
// skipped-edge diagnostics.
func Dangling(k int) Constructor {
	return func(l *Layout, _ builderConfig) error {
		if k < 0 {
			return fmt.Errorf("%s: k=%d: %w", methodDangling, k, ErrTooFewVertices)
		}

		floor := l.nextID
		for _, p := range l.Points {
			if p.ID < floor {
				floor = p.ID
			}
		}
		for i := 0; i < k; i++ {
			anchor := floor - 1 - k - i
			if len(l.Points) > 0 {
				anchor = l.Points[i%len(l.Points)].ID
			}
			l.connect(anchor, floor-1-i)
		}

		return nil
	}
}
