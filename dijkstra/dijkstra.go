// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/polyroute/core"
	"github.com/katalvlaran/polyroute/pq"
)

// FindShortestPath builds the weighted graph from points and edges using
// dist and returns the shortest path from startID to endID.
//
// Preconditions and validation (in order):
//  1. points must be non-empty (ErrNoPoints).
//  2. Graph construction must succeed (core.ErrNilDistanceFunc,
//     core.ErrDuplicatePoint, core.ErrNegativeWeight).
//  3. startID and endID must be point IDs (ErrVertexNotFound).
//  4. Every path cost met during the search must stay finite
//     (ErrCostOverflow).
//
// An unreachable end is not an error: Result.Reachable is false, Cost is
// +Inf and Path is nil.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func FindShortestPath(startID, endID int, points []core.Point, edges []core.Edge, dist core.DistanceFunc, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(points) == 0 {
		return Result{}, ErrNoPoints
	}

	began := cfg.Now()

	g, err := core.Build(points, edges, dist, core.WithLogger(cfg.Logger))
	if err != nil {
		return Result{}, fmt.Errorf("dijkstra: build graph: %w", err)
	}
	if !g.Has(startID) {
		return Result{}, fmt.Errorf("%w: start %d", ErrVertexNotFound, startID)
	}
	if !g.Has(endID) {
		return Result{}, fmt.Errorf("%w: end %d", ErrVertexNotFound, endID)
	}

	r := newRunner(g, startID, endID, cfg)
	if err = r.process(); err != nil {
		return Result{}, err
	}

	res := r.result()
	res.SkippedEdges = len(g.Skipped())
	res.Elapsed = cfg.Now().Sub(began)

	cfg.Logger.Debug("shortest path search finished",
		zap.Int("start", startID),
		zap.Int("end", endID),
		zap.Bool("reachable", res.Reachable),
		zap.Float64("cost", res.Cost),
		zap.Int("nodes_explored", res.NodesExplored),
		zap.Int("skipped_edges", res.SkippedEdges),
		zap.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

// runner holds the mutable state of a single search.
type runner struct {
	g        *core.Graph
	opts     Options
	start    int
	end      int
	dist     map[int]float64 // tentative distance from start
	prev     map[int]int     // predecessor on the best known path
	visited  map[int]bool    // settled points
	pq       *pq.MinHeap
	explored int
}

func newRunner(g *core.Graph, start, end int, opts Options) *runner {
	n := g.Len()
	r := &runner{
		g:       g,
		opts:    opts,
		start:   start,
		end:     end,
		dist:    make(map[int]float64, n),
		prev:    make(map[int]int, n),
		visited: make(map[int]bool, n),
		pq:      pq.New(n),
	}

	for _, id := range g.IDs() {
		r.dist[id] = math.Inf(1)
	}
	r.dist[start] = 0
	r.pq.Insert(pq.Item{ID: start, Dist: 0})

	return r
}

// process pops the frontier until the target is popped, the frontier is
// exhausted or its minimum exceeds MaxDistance.
//
// The target check precedes the visited check, so start == end settles
// nothing and NodesExplored stays 0.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		cur, err := r.pq.ExtractMin()
		if err != nil {
			return fmt.Errorf("dijkstra: frontier: %w", err)
		}

		if cur.ID == r.end {
			return nil
		}
		if r.visited[cur.ID] {
			continue // stale entry
		}
		if cur.Dist > r.opts.MaxDistance {
			return nil
		}

		r.visited[cur.ID] = true
		r.explored++
		r.opts.OnExplore(cur.ID, r.dist[cur.ID])

		if err = r.relax(cur.ID); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the tentative distance of every neighbor of u reachable
// through u with a strictly shorter path.
func (r *runner) relax(u int) error {
	nbs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	base := r.dist[u]
	for _, nb := range nbs {
		if r.visited[nb.ID] {
			continue
		}
		alt := base + nb.Weight
		if math.IsInf(alt, 1) {
			return fmt.Errorf("%w: %d→%d", ErrCostOverflow, u, nb.ID)
		}
		if alt > r.opts.MaxDistance {
			continue
		}
		if alt >= r.dist[nb.ID] {
			continue
		}
		r.dist[nb.ID] = alt
		r.prev[nb.ID] = u
		r.pq.Insert(pq.Item{ID: nb.ID, Dist: alt})
	}

	return nil
}

// result reconstructs the path by walking prev back from the end.
func (r *runner) result() Result {
	cost := r.dist[r.end]
	res := Result{
		Cost:          cost,
		NodesExplored: r.explored,
		Reachable:     !math.IsInf(cost, 1),
	}
	if !res.Reachable {
		return res
	}

	var rev []int
	for id := r.end; ; {
		rev = append(rev, id)
		if id == r.start {
			break
		}
		id = r.prev[id]
	}

	res.Path = make([]int, len(rev))
	for i, id := range rev {
		res.Path[len(rev)-1-i] = id
	}

	return res
}
