// SPDX-License-Identifier: MIT

// Command matverify cross-checks externally computed matrix products against
// a reference multiplication and converts benchmark timing logs to CSV.
//
//	matverify verify --config run.yaml
//	matverify verify --axis threads=1,2,4,8 --axis size=100,500 --axis trial=1..5 \
//	    --scheme thread-size-trial --root output --tolerance 1e-6
//	matverify stats --format colon --to s data/stats.txt
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "matverify",
		Short:        "Verify matrix multiplication results and ingest benchmark timings",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every verified cell")

	root.AddCommand(newVerifyCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	return root
}

// logger writes text logs to w; debug level when verbose.
func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
