// Package dijkstra_test validates FindShortestPath: input validation, the
// documented result contract, the canonical sample graph and brute-force
// equivalence on random planar graphs.
package dijkstra_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/polyroute/builder"
	"github.com/katalvlaran/polyroute/core"
	"github.com/katalvlaran/polyroute/dijkstra"
)

// samplePoints and sampleEdges reproduce the canonical 10-point example graph.
func samplePoints() []core.Point {
	return []core.Point{
		{ID: 0, X: 600, Y: 500},
		{ID: 1, X: 1070, Y: 650},
		{ID: 2, X: 1187, Y: 868},
		{ID: 3, X: 1023, Y: 875},
		{ID: 4, X: 968, Y: 868},
		{ID: 5, X: 905, Y: 853},
		{ID: 6, X: 852, Y: 833},
		{ID: 7, X: 832, Y: 823},
		{ID: 8, X: 715, Y: 775},
		{ID: 9, X: 628, Y: 714},
	}
}

func sampleEdges() []core.Edge {
	return []core.Edge{
		{From: 0, To: 1}, {From: 0, To: 9}, {From: 9, To: 8}, {From: 8, To: 7},
		{From: 7, To: 6}, {From: 6, To: 5}, {From: 5, To: 4}, {From: 4, To: 3},
		{From: 3, To: 2}, {From: 2, To: 1}, {From: 8, To: 1}, {From: 6, To: 1},
		{From: 5, To: 1},
	}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestFindShortestPath_NoPoints(t *testing.T) {
	_, err := dijkstra.FindShortestPath(0, 0, nil, nil, core.Euclidean)
	assert.ErrorIs(t, err, dijkstra.ErrNoPoints)
}

func TestFindShortestPath_UnknownStartOrEnd(t *testing.T) {
	_, err := dijkstra.FindShortestPath(42, 0, samplePoints(), sampleEdges(), core.Euclidean)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	assert.Contains(t, err.Error(), "start 42")

	_, err = dijkstra.FindShortestPath(0, 42, samplePoints(), sampleEdges(), core.Euclidean)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	assert.Contains(t, err.Error(), "end 42")
}

func TestFindShortestPath_BuildErrorsSurface(t *testing.T) {
	_, err := dijkstra.FindShortestPath(0, 1, samplePoints(), sampleEdges(), nil)
	assert.ErrorIs(t, err, core.ErrNilDistanceFunc)

	dup := append(samplePoints(), core.Point{ID: 3})
	_, err = dijkstra.FindShortestPath(0, 1, dup, sampleEdges(), core.Euclidean)
	assert.ErrorIs(t, err, core.ErrDuplicatePoint)

	neg := func(_, _ core.Point) float64 { return -1 }
	_, err = dijkstra.FindShortestPath(0, 1, samplePoints(), sampleEdges(), neg)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestFindShortestPath_CostOverflow(t *testing.T) {
	pts := []core.Point{{ID: 0}, {ID: 1, X: 1}, {ID: 2, X: 2}}
	edges := []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}}
	huge := func(_, _ core.Point) float64 { return math.MaxFloat64 }

	// One edge is still representable.
	res, err := dijkstra.FindShortestPath(0, 1, pts, edges, huge)
	require.NoError(t, err)
	assert.Equal(t, math.MaxFloat64, res.Cost)

	_, err = dijkstra.FindShortestPath(0, 2, pts, edges, huge)
	assert.ErrorIs(t, err, dijkstra.ErrCostOverflow)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN()) })
	assert.Panics(t, func() { dijkstra.WithLogger(nil) })
	assert.Panics(t, func() { dijkstra.WithClock(nil) })
	assert.NotPanics(t, func() { dijkstra.WithOnExplore(nil) })
}

// ------------------------------------------------------------------------
// 2. Result contract
// ------------------------------------------------------------------------

func TestFindShortestPath_StartEqualsEnd(t *testing.T) {
	res, err := dijkstra.FindShortestPath(4, 4, samplePoints(), sampleEdges(), core.Euclidean)
	require.NoError(t, err)

	assert.Equal(t, []int{4}, res.Path)
	assert.Equal(t, 0.0, res.Cost)
	assert.Equal(t, 0, res.NodesExplored)
	assert.True(t, res.Reachable)
}

func TestFindShortestPath_StartEqualsEndIsolated(t *testing.T) {
	pts := []core.Point{{ID: 1}}
	res, err := dijkstra.FindShortestPath(1, 1, pts, nil, core.Euclidean)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.Path)
	assert.True(t, res.Reachable)
}

func TestFindShortestPath_Disconnected(t *testing.T) {
	l, err := builder.Build(nil, builder.Path(3), builder.Path(2))
	require.NoError(t, err)

	res, err := dijkstra.FindShortestPath(0, 4, l.Points, l.Edges, core.Euclidean)
	require.NoError(t, err)

	assert.False(t, res.Reachable)
	assert.True(t, math.IsInf(res.Cost, 1))
	assert.Nil(t, res.Path)
	// The whole start component is settled before the frontier runs dry.
	assert.Equal(t, 3, res.NodesExplored)
}

func TestFindShortestPath_SkippedEdgesCounted(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	edges := append(sampleEdges(), core.Edge{From: 0, To: 99}, core.Edge{From: 98, To: 97})

	res, err := dijkstra.FindShortestPath(0, 2, samplePoints(), edges, core.Euclidean,
		dijkstra.WithLogger(zap.New(obs)))
	require.NoError(t, err)

	assert.Equal(t, 2, res.SkippedEdges)
	assert.Equal(t, []int{0, 1, 2}, res.Path)
	assert.Equal(t, 2, logs.FilterMessage("skipping edge with unknown endpoint").Len())
	assert.Equal(t, 1, logs.FilterMessage("shortest path search finished").Len())
}

func TestFindShortestPath_ElapsedUsesClock(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	clock := func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	}

	res, err := dijkstra.FindShortestPath(0, 2, samplePoints(), sampleEdges(), core.Euclidean,
		dijkstra.WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, res.Elapsed)
	assert.Equal(t, 2, calls)
}

// ------------------------------------------------------------------------
// 3. Canonical sample graph
// ------------------------------------------------------------------------

func TestFindShortestPath_SampleGraphGolden(t *testing.T) {
	res, err := dijkstra.FindShortestPath(0, 2, samplePoints(), sampleEdges(), core.Euclidean)
	require.NoError(t, err)

	// 0→1→2 (≈740.77) beats 0→9→8→1→2 (≈945.84) and the outer chain (≈811.89).
	want := dijkstra.Result{
		Path:          []int{0, 1, 2},
		Cost:          math.Hypot(470, 150) + math.Hypot(117, 218),
		NodesExplored: 9,
		Reachable:     true,
	}
	diff := cmp.Diff(want, res,
		cmpopts.EquateApprox(0, 1e-9),
		cmpopts.IgnoreFields(dijkstra.Result{}, "Elapsed"),
	)
	assert.Empty(t, diff)
}

func TestFindShortestPath_SampleGraphReverse(t *testing.T) {
	fwd, err := dijkstra.FindShortestPath(0, 2, samplePoints(), sampleEdges(), core.Euclidean)
	require.NoError(t, err)
	rev, err := dijkstra.FindShortestPath(2, 0, samplePoints(), sampleEdges(), core.Euclidean)
	require.NoError(t, err)

	assert.InDelta(t, fwd.Cost, rev.Cost, 1e-9)
	assert.Equal(t, []int{2, 1, 0}, rev.Path)
}

func TestFindShortestPath_ExploreOrder(t *testing.T) {
	var order []int
	_, err := dijkstra.FindShortestPath(0, 2, samplePoints(), sampleEdges(), core.Euclidean,
		dijkstra.WithOnExplore(func(id int, _ float64) { order = append(order, id) }))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 9, 8, 7, 6, 1, 5, 4, 3}, order)
}

// ------------------------------------------------------------------------
// 4. Parallel edges and thresholds
// ------------------------------------------------------------------------

func TestFindShortestPath_ParallelEdgesUseLightest(t *testing.T) {
	pts := []core.Point{{ID: 1}, {ID: 2, X: 10}}
	edges := []core.Edge{{From: 1, To: 2}, {From: 2, To: 1}, {From: 1, To: 2}}

	// Weight depends on call order so the parallel edges differ.
	weights := []float64{7, 3, 5}
	i := 0
	dist := func(_, _ core.Point) float64 {
		w := weights[i%len(weights)]
		i++
		return w
	}

	res, err := dijkstra.FindShortestPath(1, 2, pts, edges, dist)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Cost)
	assert.GreaterOrEqual(t, res.Cost, 3.0)
	assert.LessOrEqual(t, res.Cost, 7.0)
	assert.Equal(t, []int{1, 2}, res.Path)
}

func TestFindShortestPath_MaxDistance(t *testing.T) {
	l, err := builder.Build(nil, builder.Path(6)) // unit spacing: cost to 5 is 5
	require.NoError(t, err)

	res, err := dijkstra.FindShortestPath(0, 5, l.Points, l.Edges, core.Euclidean, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.False(t, res.Reachable)
	assert.Nil(t, res.Path)
	assert.LessOrEqual(t, res.NodesExplored, 4)

	res, err = dijkstra.FindShortestPath(0, 3, l.Points, l.Edges, core.Euclidean, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Path)
}

func TestFindShortestPath_ZeroWeightEdges(t *testing.T) {
	pts := []core.Point{{ID: 0}, {ID: 1}, {ID: 2}} // coincident points
	edges := []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}}

	res, err := dijkstra.FindShortestPath(0, 2, pts, edges, core.Euclidean)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Cost)
	assert.Equal(t, 2, res.Path[len(res.Path)-1])
	assert.Equal(t, 0, res.Path[0])
}

// ------------------------------------------------------------------------
// 5. Brute-force equivalence on random planar graphs
// ------------------------------------------------------------------------

// bruteForce enumerates every simple path from s to t and returns the
// minimum total Euclidean length, or +Inf.
func bruteForce(points []core.Point, edges []core.Edge, s, t int) float64 {
	byID := make(map[int]core.Point, len(points))
	for _, p := range points {
		byID[p.ID] = p
	}
	adj := make(map[int][]int)
	for _, e := range edges {
		if _, ok := byID[e.From]; !ok {
			continue
		}
		if _, ok := byID[e.To]; !ok {
			continue
		}
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	best := math.Inf(1)
	onPath := map[int]bool{s: true}
	var walk func(u int, acc float64)
	walk = func(u int, acc float64) {
		if acc >= best {
			return
		}
		if u == t {
			best = acc
			return
		}
		for _, v := range adj[u] {
			if onPath[v] {
				continue
			}
			onPath[v] = true
			walk(v, acc+core.Euclidean(byID[u], byID[v]))
			onPath[v] = false
		}
	}
	walk(s, 0)

	return best
}

// pathCost sums the lightest edge weight between consecutive path points.
func pathCost(points []core.Point, path []int) float64 {
	byID := make(map[int]core.Point, len(points))
	for _, p := range points {
		byID[p.ID] = p
	}
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += core.Euclidean(byID[path[i-1]], byID[path[i]])
	}

	return total
}

func TestFindShortestPath_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		l, err := builder.Build(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithSpacing(100)},
			builder.RandomGeometric(9, 45),
		)
		require.NoError(t, err)

		for s := 0; s < len(l.Points); s += 3 {
			for e := 0; e < len(l.Points); e += 2 {
				res, err := dijkstra.FindShortestPath(s, e, l.Points, l.Edges, core.Euclidean)
				require.NoError(t, err)

				want := bruteForce(l.Points, l.Edges, s, e)
				assert.LessOrEqual(t, res.NodesExplored, len(l.Points))
				if math.IsInf(want, 1) {
					assert.False(t, res.Reachable, "seed=%d %d→%d", seed, s, e)
					assert.Nil(t, res.Path)
					continue
				}

				require.True(t, res.Reachable, "seed=%d %d→%d", seed, s, e)
				assert.InDelta(t, want, res.Cost, 1e-9, "seed=%d %d→%d", seed, s, e)
				assert.Equal(t, s, res.Path[0])
				assert.Equal(t, e, res.Path[len(res.Path)-1])
				assert.InDelta(t, res.Cost, pathCost(l.Points, res.Path), 1e-9)
			}
		}
	}
}

func TestFindShortestPath_GridManhattanCost(t *testing.T) {
	l, err := builder.Build(nil, builder.Grid(5, 5))
	require.NoError(t, err)

	res, err := dijkstra.FindShortestPath(0, 24, l.Points, l.Edges, core.Euclidean)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, res.Cost, 1e-12)
	assert.Len(t, res.Path, 9)
	assert.LessOrEqual(t, res.NodesExplored, 25)
}
