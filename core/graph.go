// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"
)

// vertex is the adjacency record of one point.
type vertex struct {
	point Point
	adj   []Neighbor
}

// Graph is the weighted, undirected adjacency derived from points and edges.
// It is immutable after Build returns.
type Graph struct {
	vertices *orderedmap.OrderedMap[int, *vertex]
	edges    int
	skipped  []Edge
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	log *zap.Logger
}

// WithLogger routes data-quality diagnostics (skipped edges) to l.
// Panics on nil.
func WithLogger(l *zap.Logger) BuildOption {
	if l == nil {
		panic("core: WithLogger(nil)")
	}
	return func(c *buildConfig) { c.log = l }
}

// Build constructs the adjacency for points and edges, weighting every edge
// with dist. See the package documentation for the rules.
//
// Complexity: O(V + E) time and space, plus E calls to dist.
func Build(points []Point, edges []Edge, dist DistanceFunc, opts ...BuildOption) (*Graph, error) {
	if dist == nil {
		return nil, ErrNilDistanceFunc
	}
	cfg := buildConfig{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{vertices: orderedmap.New[int, *vertex]()}
	for _, p := range points {
		if _, dup := g.vertices.Get(p.ID); dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicatePoint, p.ID)
		}
		g.vertices.Set(p.ID, &vertex{point: p})
	}

	for i, e := range edges {
		from, okFrom := g.vertices.Get(e.From)
		to, okTo := g.vertices.Get(e.To)
		if !okFrom || !okTo {
			g.skipped = append(g.skipped, e)
			cfg.log.Debug("skipping edge with unknown endpoint",
				zap.Int("index", i),
				zap.Int("from", e.From),
				zap.Int("to", e.To),
				zap.Bool("from_known", okFrom),
				zap.Bool("to_known", okTo),
			)
			continue
		}

		w := dist(from.point, to.point)
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("%w: edge %d—%d weight=%g", ErrNegativeWeight, e.From, e.To, w)
		}

		from.adj = append(from.adj, Neighbor{ID: e.To, Weight: w})
		to.adj = append(to.adj, Neighbor{ID: e.From, Weight: w})
		g.edges++
	}

	if len(g.skipped) > 0 {
		cfg.log.Debug("graph built with skipped edges",
			zap.Int("points", g.vertices.Len()),
			zap.Int("edges", g.edges),
			zap.Int("skipped", len(g.skipped)),
		)
	}

	return g, nil
}

// Len returns the number of points.
func (g *Graph) Len() int { return g.vertices.Len() }

// EdgeCount returns the number of edges that made it into the adjacency.
func (g *Graph) EdgeCount() int { return g.edges }

// Has reports whether id is a point of the graph.
func (g *Graph) Has(id int) bool {
	_, ok := g.vertices.Get(id)
	return ok
}

// Point returns the point with the given id.
func (g *Graph) Point(id int) (Point, error) {
	v, ok := g.vertices.Get(id)
	if !ok {
		return Point{}, fmt.Errorf("%w: %d", ErrPointNotFound, id)
	}

	return v.point, nil
}

// Neighbors returns the adjacency list of id in edge-input order.
// The returned slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(id int) ([]Neighbor, error) {
	v, ok := g.vertices.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrPointNotFound, id)
	}

	return v.adj, nil
}

// Degree returns the number of adjacency entries of id, parallel edges
// counted separately. Unknown ids have degree 0.
func (g *Graph) Degree(id int) int {
	v, ok := g.vertices.Get(id)
	if !ok {
		return 0
	}

	return len(v.adj)
}

// IDs returns all point IDs in input order.
func (g *Graph) IDs() []int {
	ids := make([]int, 0, g.vertices.Len())
	for pair := g.vertices.Oldest(); pair != nil; pair = pair.Next() {
		ids = append(ids, pair.Key)
	}

	return ids
}

// Skipped returns the edges dropped because an endpoint was unknown,
// in input order.
func (g *Graph) Skipped() []Edge {
	out := make([]Edge, len(g.skipped))
	copy(out, g.skipped)

	return out
}
