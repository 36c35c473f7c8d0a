// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/LoKe112/Paral-1/stats"
)

type statsOptions struct {
	format string
	unit   string
	to     string
	column int
	skip   int
}

func newStatsCmd(root *rootOptions) *cobra.Command {
	o := &statsOptions{}
	cmd := &cobra.Command{
		Use:   "stats [flags] FILE",
		Short: "Convert a benchmark timing log to size,time CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, root, args[0])
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.format, "format", "f", "colon", "log layout: colon, whitespace or table")
	f.StringVar(&o.unit, "unit", "ms", "unit suffix of the time fields: us, ms or s")
	f.StringVar(&o.to, "to", "", "convert times to this unit (default: keep)")
	f.IntVar(&o.column, "column", 1, "time column of the table format (1-based)")
	f.IntVar(&o.skip, "skip", -1, "header lines to drop (default: 3 for table, else 0)")
	return cmd
}

func (o *statsOptions) run(cmd *cobra.Command, root *rootOptions, path string) error {
	log := root.logger(cmd.ErrOrStderr())

	format, err := stats.ParseFormat(o.format)
	if err != nil {
		return err
	}
	unit, err := stats.ParseUnit(o.unit)
	if err != nil {
		return err
	}
	target := unit
	if o.to != "" {
		if target, err = stats.ParseUnit(o.to); err != nil {
			return err
		}
	}
	if o.column < 1 {
		return fmt.Errorf("--column must be >= 1, got %d", o.column)
	}

	opts := []stats.Option{stats.WithUnit(unit), stats.WithColumn(o.column)}
	if o.skip >= 0 {
		opts = append(opts, stats.WithSkipLines(o.skip))
	}
	series, diags, err := stats.ParseFile(path, format, opts...)
	for _, d := range diags {
		log.Warn("skipped line", "file", path, "line", d.Line, "text", d.Text, "err", d.Err)
	}
	if err != nil {
		return err
	}
	series = series.In(target)

	w := csv.NewWriter(cmd.OutOrStdout())
	if err := w.Write([]string{"size", "time"}); err != nil {
		return err
	}
	for _, s := range series.Samples {
		rec := []string{strconv.Itoa(s.Size), strconv.FormatFloat(s.Time, 'f', -1, 64)}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	log.Debug("stats converted", "file", path, "samples", len(series.Samples), "skipped", len(diags))
	return w.Error()
}
