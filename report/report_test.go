package report_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polyroute/core"
	"github.com/katalvlaran/polyroute/dijkstra"
	"github.com/katalvlaran/polyroute/poly"
	"github.com/katalvlaran/polyroute/report"
)

func TestHighlightEdges(t *testing.T) {
	edges := []core.Edge{
		{From: 0, To: 1},
		{From: 2, To: 1}, // reversed orientation
		{From: 0, To: 2}, // shortcut, not on the path
		{From: 1, To: 2}, // parallel
		{From: 2, To: 3},
	}

	got := report.HighlightEdges([]int{0, 1, 2}, edges)
	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 2, To: 1}, {From: 1, To: 2}}, got)
}

func TestHighlightEdges_ShortPath(t *testing.T) {
	edges := []core.Edge{{From: 0, To: 0}, {From: 0, To: 1}}
	assert.Nil(t, report.HighlightEdges(nil, edges))
	assert.Nil(t, report.HighlightEdges([]int{0}, edges))
}

func TestHighlightEdges_SamplePath(t *testing.T) {
	doc := poly.Sample()
	res, err := dijkstra.FindShortestPath(0, 2, doc.Points, doc.Edges, core.Euclidean)
	assert.NoError(t, err)

	got := report.HighlightEdges(res.Path, doc.Edges)
	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 2, To: 1}}, got)
}

func TestPathText(t *testing.T) {
	assert.Equal(t, "", report.PathText(nil))
	assert.Equal(t, "4", report.PathText([]int{4}))
	assert.Equal(t, "0 → 1 → 2", report.PathText([]int{0, 1, 2}))
}

func TestCaption(t *testing.T) {
	_, ok := report.Caption([]int{3})
	assert.False(t, ok)

	c, ok := report.Caption([]int{0, 9, 8})
	assert.True(t, ok)
	assert.Equal(t, "path from 0 to 8: 0 → 9 → 8", c)
}

func TestSummarize(t *testing.T) {
	s := report.Summarize(dijkstra.Result{
		Elapsed:       1250 * time.Microsecond,
		NodesExplored: 9,
		Cost:          740.7684661763741,
	})
	assert.Equal(t, report.Stats{Time: "1.25 ms", NodesExplored: 9, Cost: "740.77"}, s)
	assert.Equal(t, "time: 1.25 ms\nnodes explored: 9\ncost: 740.77", s.String())
}

func TestSummarize_Unreachable(t *testing.T) {
	s := report.Summarize(dijkstra.Result{Cost: math.Inf(1)})
	assert.Equal(t, "∞", s.Cost)
	assert.Equal(t, "0.00 ms", s.Time)
}
