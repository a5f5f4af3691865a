// SPDX-License-Identifier: MIT

// Package metrics records shortest-path search statistics as Prometheus
// collectors on a private registry.
package metrics

import (
	"errors"
	"fmt"
	"math"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/polyroute/dijkstra"
)

const namespace = "polyroute"

// Outcome label values of polyroute_searches_total.
const (
	OutcomeReached     = "reached"
	OutcomeUnreachable = "unreachable"
	OutcomeInvalid     = "invalid"
)

// Recorder owns a registry and the search collectors registered on it.
// Safe for concurrent use.
type Recorder struct {
	reg *prometheus.Registry

	searches *prometheus.CounterVec
	explored prometheus.Histogram
	cost     prometheus.Histogram
	duration prometheus.Histogram
	skipped  prometheus.Counter
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Shortest-path searches by outcome",
			},
			[]string{"outcome"}, // reached / unreachable / invalid
		),
		explored: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "nodes_explored",
			Help:      "Points settled per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		cost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_cost",
			Help:      "Total weight of found paths",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 8),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Graph construction plus search time in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_edges_total",
			Help:      "Input edges dropped for an unknown endpoint",
		}),
	}

	r.reg.MustRegister(r.searches, r.explored, r.cost, r.duration, r.skipped)

	return r
}

// Registry exposes the registry, e.g. for promhttp or tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// Observe records one FindShortestPath call. A non-nil err counts as an
// invalid search and nothing else is recorded.
func (r *Recorder) Observe(res dijkstra.Result, err error) {
	if err != nil {
		r.searches.WithLabelValues(OutcomeInvalid).Inc()
		return
	}

	r.explored.Observe(float64(res.NodesExplored))
	r.duration.Observe(res.Elapsed.Seconds())
	r.skipped.Add(float64(res.SkippedEdges))

	if !res.Reachable || math.IsInf(res.Cost, 1) {
		r.searches.WithLabelValues(OutcomeUnreachable).Inc()
		return
	}
	r.searches.WithLabelValues(OutcomeReached).Inc()
	r.cost.Observe(res.Cost)
}

// ErrNoTextfile indicates WriteTextfile was called with an empty path.
var ErrNoTextfile = errors.New("metrics: textfile path is empty")

// WriteTextfile writes the registry in the node-exporter textfile format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if path == "" {
		return ErrNoTextfile
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write textfile: %w", err)
	}

	return nil
}
