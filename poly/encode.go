// SPDX-License-Identifier: MIT

package poly

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/polyroute/core"
)

// Encode writes doc in the tabular dialect. Edge IDs are the record index
// and every flag is 0.
func Encode(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d\t2\t0\t1\n", len(doc.Points))
	for _, p := range doc.Points {
		fmt.Fprintf(bw, "%d\t%s\t%s\n", p.ID, formatFloat(p.X), formatFloat(p.Y))
	}
	fmt.Fprintf(bw, "%d\t1\n", len(doc.Edges))
	for i, e := range doc.Edges {
		fmt.Fprintf(bw, "%d\t%d\t%d\t0\n", i, e.From, e.To)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("poly: write: %w", err)
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Sample returns the canonical 10-point example graph.
func Sample() *Document {
	return &Document{
		Points: []core.Point{
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
		},
		Edges: []core.Edge{
			{From: 0, To: 1}, {From: 0, To: 9}, {From: 9, To: 8}, {From: 8, To: 7},
			{From: 7, To: 6}, {From: 6, To: 5}, {From: 5, To: 4}, {From: 4, To: 3},
			{From: 3, To: 2}, {From: 2, To: 1}, {From: 8, To: 1}, {From: 6, To: 1},
			{From: 5, To: 1},
		},
		Dialect: DialectTabular,
	}
}
