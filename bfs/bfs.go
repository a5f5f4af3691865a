// SPDX-License-Identifier: MIT

// Package bfs provides hop-count breadth-first search and connected
// components over a core.Graph.
//
// Edge weights are ignored: BFS answers "how many hops" and "which points
// can reach each other", the latter being how callers tell an unreachable
// shortest-path target apart from a bad query.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/polyroute/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g from startID.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// ErrNeighbors, the context error, or any OnVisit error.
func BFS(g *core.Graph, startID int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Has(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.Len()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.res.Depth[startID] = 0
	w.queue = append(w.queue, queueItem{id: startID})

	return w.res, w.loop()
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor within MaxDepth.
// Parallel edges collapse because the first sighting marks the point seen.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nbs, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: %d: %v", ErrNeighbors, item.id, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nb := range nbs {
		if _, seen := w.res.Depth[nb.ID]; seen {
			continue
		}
		w.res.Depth[nb.ID] = next
		w.res.Parent[nb.ID] = item.id
		w.queue = append(w.queue, queueItem{id: nb.ID, depth: next})
	}

	return nil
}

// Components partitions the points of g into connected components.
// Components are ordered by their first point in g.IDs() order, and each
// component lists its points in BFS order from that first point.
//
// Time: O(V + E). Memory: O(V).
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[int]bool, g.Len())
	var comps [][]int
	for _, root := range g.IDs() {
		if seen[root] {
			continue
		}
		seen[root] = true
		comp := []int{root}
		for qi := 0; qi < len(comp); qi++ {
			nbs, err := g.Neighbors(comp[qi])
			if err != nil {
				return nil, fmt.Errorf("%w: %d: %v", ErrNeighbors, comp[qi], err)
			}
			for _, nb := range nbs {
				if !seen[nb.ID] {
					seen[nb.ID] = true
					comp = append(comp, nb.ID)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}
