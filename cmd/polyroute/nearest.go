// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/polyroute/internal/logger"
	"github.com/katalvlaran/polyroute/spatial"
)

func (a *app) newNearestCmd() *cobra.Command {
	var (
		file   string
		x, y   float64
		radius float64
	)

	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Print the point closest to a coordinate",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, file)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("radius") {
				radius = a.cfg.Routing.PickRadius
			}

			idx := spatial.New(doc.Points)
			pt, ok := idx.Nearest(x, y)
			if ok && radius != 0 {
				pt, ok, err = idx.Pick(x, y, radius)
				if err != nil {
					return err
				}
			}

			logger.FromContext(cmd.Context()).Debug("nearest lookup",
				zap.Float64("x", x), zap.Float64("y", y), zap.Bool("found", ok))

			if !ok {
				return fmt.Errorf("no point near (%v, %v)", x, y)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%v\t%v\n", pt.ID, pt.X, pt.Y)

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", ".poly file to read, - for stdin (required)")
	cmd.Flags().Float64Var(&x, "x", 0, "X coordinate")
	cmd.Flags().Float64Var(&y, "y", 0, "Y coordinate")
	cmd.Flags().Float64Var(&radius, "radius", 0, "Only accept a point within this distance, 0 = any (default from config)")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))

	return cmd
}
