// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/LoKe112/Paral-1/config"
	"github.com/LoKe112/Paral-1/grid"
	"github.com/LoKe112/Paral-1/report"
)

type verifyOptions struct {
	configPath string
	output     string
	table      string
	metrics    string
	tolerance  float64
	workers    int
	kind       string
	shapeAxis  string
	axes       []string
	scheme     string
	root       string
	noHeader   bool
}

func newVerifyCmd(root *rootOptions) *cobra.Command {
	o := &verifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify every cell of a grid and write the report",
		Long: `Loads A, B and the candidate C for every cell of the grid, recomputes A·B
and compares it with C within an absolute tolerance. Mismatches and unreadable
cells are reported, not fatal: the command fails only when the configuration
is invalid or the report cannot be written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.resolve(cmd)
			if err != nil {
				return err
			}
			return runVerify(cmd, root, cfg, !o.noHeader)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "YAML run configuration")
	f.StringVarP(&o.output, "output", "o", config.DefaultOutput, "report path")
	f.StringVar(&o.table, "table", "", "also write the pipe-delimited summary table here")
	f.StringVar(&o.metrics, "metrics", "", "write run metrics in Prometheus text format here")
	f.Float64Var(&o.tolerance, "tolerance", 0, "absolute tolerance (required unless set in --config)")
	f.IntVarP(&o.workers, "workers", "w", 1, "cells verified concurrently")
	f.StringVar(&o.kind, "kind", config.DefaultKind, "token kind: integer or float")
	f.StringVar(&o.shapeAxis, "shape-axis", grid.DefaultShapeAxis, "axis holding the square matrix size")
	f.StringArrayVar(&o.axes, "axis", nil, "grid axis name=values, e.g. threads=1,2,4 or trial=1..5 (repeatable, outermost first)")
	f.StringVar(&o.scheme, "scheme", grid.SchemeThreadSizeTrial, "naming scheme: thread-size-trial, size-trial or size-pair")
	f.StringVar(&o.root, "root", "output", "root directory of the naming scheme")
	f.BoolVar(&o.noHeader, "no-header", false, "omit the run/host preamble from the report")
	return cmd
}

// resolve loads the config file and applies explicitly set flags on top.
func (o *verifyOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}
	f := cmd.Flags()
	if f.Changed("output") {
		cfg.Output = o.output
	}
	if f.Changed("table") {
		cfg.Table = o.table
	}
	if f.Changed("metrics") {
		cfg.Metrics = o.metrics
	}
	if f.Changed("tolerance") {
		tol := o.tolerance
		cfg.Tolerance = &tol
	}
	if f.Changed("workers") {
		cfg.Workers = o.workers
	}
	if f.Changed("kind") {
		cfg.Kind = o.kind
	}
	if f.Changed("shape-axis") {
		cfg.ShapeAxis = o.shapeAxis
	}
	if f.Changed("scheme") {
		cfg.Scheme = config.SchemeConfig{Name: o.scheme, Root: cfg.Scheme.Root}
	}
	if f.Changed("root") {
		cfg.Scheme.Root = o.root
	}
	if len(o.axes) > 0 {
		cfg.Axes = cfg.Axes[:0:0]
		for _, s := range o.axes {
			ax, err := config.ParseAxisFlag(s)
			if err != nil {
				return cfg, err
			}
			cfg.Axes = append(cfg.Axes, ax)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runVerify(cmd *cobra.Command, root *rootOptions, cfg config.Config, header bool) error {
	log := root.logger(cmd.ErrOrStderr())

	axes, err := cfg.GridAxes()
	if err != nil {
		return err
	}
	scheme, err := cfg.NamingScheme()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	opts := []grid.Option{
		grid.WithShapeAxis(cfg.ShapeAxis),
		grid.WithKind(cfg.MatrixKind()),
		grid.WithWorkers(cfg.Workers),
		grid.WithLogger(log),
		grid.WithMetrics(grid.NewMetrics(reg)),
	}
	if cfg.Grouping != nil {
		opts = append(opts, grid.WithGrouping(*cfg.Grouping))
	}

	var accOpts []report.Option
	runID := report.NewRunID()
	if header {
		accOpts = append(accOpts, report.WithHeader(report.HostHeader(runID)...))
	}
	acc := report.New(accOpts...)

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt)
	defer stop()

	log.Info("verification run", "run_id", runID, "output", cfg.Output)
	if err := grid.NewRunner(opts...).Run(ctx, axes, scheme, *cfg.Tolerance, acc); err != nil {
		return err
	}

	if err := acc.WriteFile(cfg.Output); err != nil {
		return err
	}
	// The report is the only fatal output; the extras are best effort.
	if cfg.Table != "" {
		if err := acc.WriteTableFile(cfg.Table); err != nil {
			log.Warn("summary table not written", "path", cfg.Table, "err", err)
		}
	}
	if cfg.Metrics != "" {
		if err := prometheus.WriteToTextfile(cfg.Metrics, reg); err != nil {
			log.Warn("metrics textfile not written", "path", cfg.Metrics, "err", err)
		}
	}

	c := acc.Counts()
	fmt.Fprintf(cmd.OutOrStdout(), "cells=%d matched=%d mismatched=%d errored=%d report=%s\n",
		c.Total(), c.Matched, c.Mismatched, c.Errored, cfg.Output)
	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
