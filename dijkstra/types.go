// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors returned by FindShortestPath.
var (
	// ErrNoPoints indicates that the point set is empty.
	ErrNoPoints = errors.New("dijkstra: point set is empty")

	// ErrVertexNotFound indicates that the start or end ID is not among the points.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found")

	// ErrCostOverflow indicates a path cost that exceeds math.MaxFloat64 even
	// though every edge weight is finite. Such a target is connected, so it is
	// reported as an error instead of as unreachable.
	ErrCostOverflow = errors.New("dijkstra: path cost overflows float64")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Result is the outcome of one shortest-path query. The caller owns it.
type Result struct {
	// Path lists point IDs from start to end. It is [start] when start == end
	// and nil when the end is unreachable.
	Path []int

	// Cost is the total weight of Path, or +Inf when unreachable.
	Cost float64

	// NodesExplored counts the points settled (marked visited) before the
	// target was popped or the frontier ran out.
	NodesExplored int

	// Elapsed is the wall-clock time of graph construction plus search.
	Elapsed time.Duration

	// Reachable is false when no path from start to end exists
	// (or none within MaxDistance).
	Reachable bool

	// SkippedEdges counts input edges dropped for an unknown endpoint.
	SkippedEdges int
}

// Options configures FindShortestPath.
//
// MaxDistance – stop once the frontier minimum exceeds this value.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// Logger      – receives build diagnostics and a per-search debug summary.
// OnExplore   – called each time a point is settled, with its final distance.
// Now         – clock used to measure Elapsed.
type Options struct {
	MaxDistance float64
	Logger      *zap.Logger
	OnExplore   func(id int, dist float64)
	Now         func() time.Time
}

// Option represents a functional option for FindShortestPath.
type Option func(*Options)

// WithMaxDistance caps the explored distance. Targets farther than max are
// reported unreachable. Panics on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("dijkstra: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnExplore registers a hook run for every settled point.
func WithOnExplore(fn func(id int, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExplore = fn
		}
	}
}

// WithClock replaces time.Now for Elapsed measurement. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("dijkstra: WithClock(nil)")
	}
	return func(o *Options) {
		o.Now = now
	}
}

// DefaultOptions returns the defaults: no distance cap, no-op logger,
// no-op hook and time.Now.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
		Logger:      zap.NewNop(),
		OnExplore:   func(int, float64) {},
		Now:         time.Now,
	}
}
