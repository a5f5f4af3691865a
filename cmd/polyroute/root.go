// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/polyroute/internal/config"
	"github.com/katalvlaran/polyroute/internal/logger"
	"github.com/katalvlaran/polyroute/internal/metrics"
	"github.com/katalvlaran/polyroute/poly"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	env        string
	logLevel   string

	cfg config.Config
	log *zap.Logger
	rec *metrics.Recorder

	root *cobra.Command
}

func newApp() *app {
	a := &app{rec: metrics.New()}
	a.root = a.newRootCmd()
	return a
}

// execute runs the root command and then flushes metrics and logs, also
// when the command failed.
func (a *app) execute() error {
	err := a.root.Execute()
	if a.log == nil {
		// setup never ran: flag parsing or config loading failed.
		return err
	}

	return errors.Join(err, a.teardown())
}

func (a *app) newRootCmd() *cobra.Command {

	rootCmd := &cobra.Command{
		Use:           "polyroute",
		Short:         "Shortest paths over planar point/edge graphs",
		Long:          `CLI tool to route, inspect and generate .poly point/edge files`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", os.Getenv(config.EnvConfigPath), "YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.env, "env", "", "Environment: local, dev, docker, prod (overrides "+config.EnvName+")")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		a.newRouteCmd(),
		a.newNearestCmd(),
		a.newInspectCmd(),
		newSampleCmd(),
	)

	return rootCmd
}

// setup resolves the configuration and installs a per-run logger in the
// command context. Flags win over the environment, which wins over the file.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.env != "" {
		cfg.Env = a.env
	} else {
		cfg.Env = config.GetEnv(cfg.Env)
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	base, err := logger.New(cfg.Env, cfg.Logging.Level)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = base.With(zap.String("run_id", uuid.NewString()), zap.String("command", cmd.Name()))
	cmd.SetContext(logger.WithContext(cmd.Context(), a.log))

	return nil
}

func (a *app) teardown() error {
	if a.cfg.Metrics.Textfile != "" {
		if err := a.rec.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
			return err
		}
		a.log.Debug("metrics written", zap.String("path", a.cfg.Metrics.Textfile))
	}
	_ = a.log.Sync()

	return nil
}

// readDocument parses path, or standard input when path is "-".
func readDocument(cmd *cobra.Command, path string) (*poly.Document, error) {
	if path == "-" {
		doc, err := poly.Parse(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return doc, nil
	}

	return poly.ParseFile(path)
}
