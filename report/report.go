// SPDX-License-Identifier: MIT

// Package report turns a dijkstra.Result into rendering-neutral output:
// the edges to highlight, a textual path and a statistics block.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/polyroute/core"
	"github.com/katalvlaran/polyroute/dijkstra"
)

// Arrow separates consecutive IDs in PathText.
const Arrow = " → "

// Infinity is printed for the cost of an unreachable target.
const Infinity = "∞"

// HighlightEdges returns, in input order, every edge that joins two
// consecutive path IDs in either orientation. Parallel edges on the path
// are all returned. A path shorter than two IDs highlights nothing.
func HighlightEdges(path []int, edges []core.Edge) []core.Edge {
	if len(path) < 2 {
		return nil
	}

	type pair struct{ a, b int }
	onPath := make(map[pair]struct{}, 2*(len(path)-1))
	for i := 0; i+1 < len(path); i++ {
		onPath[pair{path[i], path[i+1]}] = struct{}{}
		onPath[pair{path[i+1], path[i]}] = struct{}{}
	}

	var out []core.Edge
	for _, e := range edges {
		if _, ok := onPath[pair{e.From, e.To}]; ok {
			out = append(out, e)
		}
	}

	return out
}

// PathText joins the IDs with Arrow, e.g. "0 → 1 → 2".
func PathText(path []int) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, Arrow)
}

// Caption announces a found route as "path from a to b: a → … → b".
// ok is false for paths of fewer than two IDs, which have nothing to show.
func Caption(path []int) (caption string, ok bool) {
	if len(path) < 2 {
		return "", false
	}

	return fmt.Sprintf("path from %d to %d: %s", path[0], path[len(path)-1], PathText(path)), true
}

// Stats is the display form of the search statistics.
type Stats struct {
	Time          string
	NodesExplored int
	Cost          string
}

// Summarize formats res for display.
func Summarize(res dijkstra.Result) Stats {
	return Stats{
		Time:          Millis(res.Elapsed),
		NodesExplored: res.NodesExplored,
		Cost:          Cost(res.Cost),
	}
}

// String renders the three-line statistics block.
func (s Stats) String() string {
	return fmt.Sprintf("time: %s\nnodes explored: %d\ncost: %s", s.Time, s.NodesExplored, s.Cost)
}

// Millis formats d as milliseconds with two decimals, e.g. "1.25 ms".
func Millis(d time.Duration) string {
	return fmt.Sprintf("%.2f ms", float64(d)/float64(time.Millisecond))
}

// Cost formats c with two decimals, or Infinity when c is +Inf.
func Cost(c float64) string {
	if math.IsInf(c, 1) {
		return Infinity
	}

	return strconv.FormatFloat(c, 'f', 2, 64)
}
