// SPDX-License-Identifier: MIT

// Package stats reads benchmark timing logs into ordered (size, time) series.
package stats
