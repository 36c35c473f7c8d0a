// SPDX-License-Identifier: MIT

package grid

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/LoKe112/Paral-1/report"
)

// Metrics holds the run-level collectors updated once per verified cell.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// cells counts verified cells.
	// Labels: status (OK, FAIL, ERROR)
	cells *prometheus.CounterVec

	// duration measures load+multiply+compare time per cell.
	duration prometheus.Histogram

	// maxDiff holds the max absolute difference of the last mismatched cell.
	maxDiff prometheus.Gauge
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		cells: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "matverify",
			Name:      "cells_total",
			Help:      "Verified grid cells by status",
		}, []string{"status"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "matverify",
			Name:      "cell_duration_seconds",
			Help:      "Time to load, multiply and compare one grid cell",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		maxDiff: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "matverify",
			Name:      "max_abs_diff",
			Help:      "Max absolute difference of the most recent mismatched cell",
		}),
	}
}

func (m *Metrics) observe(o report.Outcome, d time.Duration) {
	if m == nil {
		return
	}
	m.cells.WithLabelValues(o.Status.String()).Inc()
	m.duration.Observe(d.Seconds())
	if o.Status == report.StatusMismatched {
		m.maxDiff.Set(o.MaxAbsDiff)
	}
}
