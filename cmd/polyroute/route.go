// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/polyroute/bfs"
	"github.com/katalvlaran/polyroute/core"
	"github.com/katalvlaran/polyroute/dijkstra"
	"github.com/katalvlaran/polyroute/internal/config"
	"github.com/katalvlaran/polyroute/internal/logger"
	"github.com/katalvlaran/polyroute/poly"
	"github.com/katalvlaran/polyroute/report"
	"github.com/katalvlaran/polyroute/spatial"
)

var errNoEndpoint = errors.New("endpoint needs an id or an x,y coordinate")

// routeOutput is the JSON form of a route result. Cost is null when the
// target is unreachable.
type routeOutput struct {
	From          int         `json:"from"`
	To            int         `json:"to"`
	Reachable     bool        `json:"reachable"`
	Path          []int       `json:"path"`
	Cost          *float64    `json:"cost"`
	NodesExplored int         `json:"nodes_explored"`
	ElapsedMS     float64     `json:"elapsed_ms"`
	SkippedEdges  int         `json:"skipped_edges"`
	Edges         []core.Edge `json:"edges"`
}

func (a *app) newRouteCmd() *cobra.Command {
	var (
		file        string
		from, to    int
		fromXY      []float64
		toXY        []float64
		metric      string
		maxDistance float64
		format      string
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find the shortest path between two points",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.FromContext(cmd.Context())

			routing := a.cfg.Routing
			if metric != "" {
				routing.Metric = strings.ToLower(metric)
			}
			if cmd.Flags().Changed("max-distance") {
				routing.MaxDistance = maxDistance
			}
			check := a.cfg
			check.Routing = routing
			if err := check.Validate(); err != nil {
				return err
			}
			dist, err := routing.DistanceFunc()
			if err != nil {
				return err
			}

			doc, err := readDocument(cmd, file)
			if err != nil {
				return err
			}

			idx := spatial.New(doc.Points)
			start, err := resolveEndpoint(cmd, "from", from, fromXY, idx, routing)
			if err != nil {
				return err
			}
			end, err := resolveEndpoint(cmd, "to", to, toXY, idx, routing)
			if err != nil {
				return err
			}

			opts := []dijkstra.Option{dijkstra.WithLogger(log)}
			if routing.MaxDistance > 0 {
				opts = append(opts, dijkstra.WithMaxDistance(routing.MaxDistance))
			}

			res, err := dijkstra.FindShortestPath(start, end, doc.Points, doc.Edges, dist, opts...)
			a.rec.Observe(res, err)
			if err != nil {
				return err
			}

			log.Info("route computed",
				zap.Int("from", start),
				zap.Int("to", end),
				zap.String("metric", routing.Metric),
				zap.Bool("reachable", res.Reachable),
				zap.Int("nodes_explored", res.NodesExplored),
			)

			out := cmd.OutOrStdout()
			if format == "json" {
				return writeRouteJSON(out, start, end, res, doc.Edges)
			}
			if format != "text" {
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}

			return writeRouteText(cmd.Context(), out, start, end, res, doc, dist, log)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", ".poly file to read, - for stdin (required)")
	cmd.Flags().IntVar(&from, "from", 0, "Start point id")
	cmd.Flags().IntVar(&to, "to", 0, "End point id")
	cmd.Flags().Float64SliceVar(&fromXY, "from-xy", nil, "Start coordinate x,y; the nearest point is used")
	cmd.Flags().Float64SliceVar(&toXY, "to-xy", nil, "End coordinate x,y; the nearest point is used")
	cmd.Flags().StringVar(&metric, "metric", "", "Distance metric: euclidean or haversine (default from config)")
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "Give up beyond this cost, 0 = unlimited (default from config)")
	cmd.Flags().StringVarP(&format, "output", "o", "text", "Output format: text or json")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))
	cmd.MarkFlagsMutuallyExclusive("from", "from-xy")
	cmd.MarkFlagsMutuallyExclusive("to", "to-xy")

	return cmd
}

// resolveEndpoint returns the explicit id flag, or the point nearest to the
// coordinate flag within routing.PickRadius (any distance when 0).
func resolveEndpoint(cmd *cobra.Command, name string, id int, xy []float64, idx *spatial.Index, routing config.RoutingConfig) (int, error) {
	if cmd.Flags().Changed(name) {
		return id, nil
	}
	if xy == nil {
		return 0, fmt.Errorf("--%s: %w", name, errNoEndpoint)
	}
	if len(xy) != 2 {
		return 0, fmt.Errorf("--%s-xy: want x,y, got %d values", name, len(xy))
	}

	if routing.PickRadius > 0 {
		p, ok, err := idx.Pick(xy[0], xy[1], routing.PickRadius)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, fmt.Errorf("--%s-xy: no point within %v of (%v, %v)", name, routing.PickRadius, xy[0], xy[1])
		}
		return p.ID, nil
	}

	p, ok := idx.Nearest(xy[0], xy[1])
	if !ok {
		return 0, fmt.Errorf("--%s-xy: %w", name, dijkstra.ErrNoPoints)
	}
	return p.ID, nil
}

func writeRouteText(ctx context.Context, w io.Writer, start, end int, res dijkstra.Result, doc *poly.Document, dist core.DistanceFunc, log *zap.Logger) error {
	if caption, ok := report.Caption(res.Path); ok {
		fmt.Fprintln(w, caption)
	} else if res.Reachable {
		fmt.Fprintf(w, "start and end are the same point: %d\n", start)
	} else {
		fmt.Fprintf(w, "no path from %d to %d: %s\n", start, end, diagnose(ctx, start, end, doc, dist, log))
	}

	fmt.Fprintln(w, report.Summarize(res))

	if hl := report.HighlightEdges(res.Path, doc.Edges); len(hl) > 0 {
		parts := make([]string, len(hl))
		for i, e := range hl {
			parts[i] = fmt.Sprintf("%d-%d", e.From, e.To)
		}
		fmt.Fprintf(w, "edges: %s\n", strings.Join(parts, " "))
	}
	if res.SkippedEdges > 0 {
		fmt.Fprintf(w, "skipped edges: %d\n", res.SkippedEdges)
	}

	return nil
}

// errTargetSeen stops the reachability walk once the target is visited.
var errTargetSeen = errors.New("target seen")

// diagnose explains an unreachable target: separate components, or a
// distance cap that cut the search short.
func diagnose(ctx context.Context, start, end int, doc *poly.Document, dist core.DistanceFunc, log *zap.Logger) string {
	g, err := core.Build(doc.Points, doc.Edges, dist)
	if err != nil {
		return "graph could not be rebuilt"
	}

	_, err = bfs.BFS(g, start,
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(id, _ int) error {
			if id == end {
				return errTargetSeen
			}
			return nil
		}),
	)
	switch {
	case errors.Is(err, errTargetSeen):
		return "target lies beyond the distance cap"
	case err != nil:
		log.Debug("reachability check failed", zap.Error(err))
		return "reachability unknown"
	}

	return "start and end lie in different components"
}

func writeRouteJSON(w io.Writer, start, end int, res dijkstra.Result, edges []core.Edge) error {
	out := routeOutput{
		From:          start,
		To:            end,
		Reachable:     res.Reachable,
		Path:          res.Path,
		NodesExplored: res.NodesExplored,
		ElapsedMS:     float64(res.Elapsed.Microseconds()) / 1000,
		SkippedEdges:  res.SkippedEdges,
		Edges:         report.HighlightEdges(res.Path, edges),
	}
	if !math.IsInf(res.Cost, 1) {
		c := res.Cost
		out.Cost = &c
	}
	if out.Path == nil {
		out.Path = []int{}
	}
	if out.Edges == nil {
		out.Edges = []core.Edge{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	return nil
}
