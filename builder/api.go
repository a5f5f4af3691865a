// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/polyroute/core"
)

// Layout is a generated point/edge set ready for dijkstra.FindShortestPath.
type Layout struct {
	Points []core.Point
	Edges  []core.Edge

	nextID int
}

// addPoint appends a point with the next free ID and returns that ID.
func (l *Layout) addPoint(x, y float64) int {
	id := l.nextID
	l.Points = append(l.Points, core.Point{ID: id, X: x, Y: y})
	l.nextID++

	return id
}

func (l *Layout) connect(a, b int) {
	l.Edges = append(l.Edges, core.Edge{From: a, To: b})
}

// Constructor appends points and edges to l using cfg.
type Constructor func(l *Layout, cfg builderConfig) error

// Build resolves opts and applies cons in order to an empty Layout.
// Constructor errors are wrapped with "Build: %w".
func Build(opts []BuilderOption, cons ...Constructor) (*Layout, error) {
	cfg := newBuilderConfig(opts...)
	l := &Layout{nextID: cfg.idOffset}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(l, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return l, nil
}
