// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/polyroute/internal/logger"
	"github.com/katalvlaran/polyroute/poly"
)

func newSampleCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write the 10-point example graph as a .poly file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			if err := poly.Encode(&buf, poly.Sample()); err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			if err := os.WriteFile(filepath.Clean(out), buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			logger.FromContext(cmd.Context()).Info("sample written", zap.String("path", out))

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination file (default stdout)")

	return cmd
}
