// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
)

const (
	methodGrid  = "Grid"
	methodPath  = "Path"
	methodCycle = "Cycle"

	minGridDim  = 1
	minPathLen  = 1
	minCycleLen = 3
)

// Grid lays out rows×cols points in row-major order, spacing apart, and
// joins each point to its right and bottom neighbours.
func Grid(rows, cols int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		ids := make([]int, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ids[r*cols+c] = l.addPoint(float64(c)*cfg.spacing, float64(r)*cfg.spacing)
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					l.connect(u, ids[r*cols+c+1])
				}
				if r+1 < rows {
					l.connect(u, ids[(r+1)*cols+c])
				}
			}
		}

		return nil
	}
}

// Path lays out n collinear points along the X axis joined in sequence.
func Path(n int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < minPathLen {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodPath, n, minPathLen, ErrTooFewVertices)
		}

		prev := l.addPoint(0, 0)
		for i := 1; i < n; i++ {
			id := l.addPoint(float64(i)*cfg.spacing, 0)
			l.connect(prev, id)
			prev = id
		}

		return nil
	}
}

// Cycle places n points on a circle of circumradius spacing and joins them
// into a ring.
func Cycle(n int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < minCycleLen {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodCycle, n, minCycleLen, ErrTooFewVertices)
		}

		first := -1
		prev := -1
		for i := 0; i < n; i++ {
			angle := 2 * math.Pi * float64(i) / float64(n)
			id := l.addPoint(cfg.spacing*math.Cos(angle), cfg.spacing*math.Sin(angle))
			if prev >= 0 {
				l.connect(prev, id)
			} else {
				first = id
			}
			prev = id
		}
		l.connect(prev, first)

		return nil
	}
}
