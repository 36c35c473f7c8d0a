// SPDX-License-Identifier: MIT

// Package report accumulates per-cell verification outcomes into an ordered,
// sectioned text report and a pipe-delimited summary table.
package report
