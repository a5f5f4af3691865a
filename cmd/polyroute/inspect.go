// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polyroute/bfs"
	"github.com/katalvlaran/polyroute/core"
	"github.com/katalvlaran/polyroute/internal/logger"
	"github.com/katalvlaran/polyroute/report"
)

func (a *app) newInspectCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a .poly file: counts, skipped edges and components",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, file)
			if err != nil {
				return err
			}
			dist, err := a.cfg.Routing.DistanceFunc()
			if err != nil {
				return err
			}

			g, err := core.Build(doc.Points, doc.Edges, dist, core.WithLogger(logger.FromContext(cmd.Context())))
			if err != nil {
				return err
			}
			comps, err := bfs.Components(g)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "DIALECT\t%s\n", doc.Dialect)
			fmt.Fprintf(w, "POINTS\t%d\n", g.Len())
			fmt.Fprintf(w, "EDGES\t%d\n", g.EdgeCount())
			fmt.Fprintf(w, "SKIPPED\t%d\n", len(g.Skipped()))
			fmt.Fprintf(w, "COMPONENTS\t%d\n", len(comps))
			if err = w.Flush(); err != nil {
				return err
			}

			for _, e := range g.Skipped() {
				fmt.Fprintf(cmd.OutOrStdout(), "skipped edge %d-%d\n", e.From, e.To)
			}
			if len(comps) > 1 {
				for i, c := range comps {
					fmt.Fprintf(cmd.OutOrStdout(), "component %d (%d points): %s\n", i, len(c), report.PathText(c))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", ".poly file to read, - for stdin (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))

	return cmd
}
