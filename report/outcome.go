// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
)

// Status classifies one verified grid cell.
type Status int

const (
	// StatusMatched means every element is within tolerance of the reference.
	StatusMatched Status = iota
	// StatusMismatched means at least one element deviates by more than the tolerance.
	StatusMismatched
	// StatusErrored means the cell could not be verified (I/O, parse, shape).
	StatusErrored
)

// String returns the tag used in report lines and the summary table.
func (s Status) String() string {
	switch s {
	case StatusMatched:
		return "OK"
	case StatusMismatched:
		return "FAIL"
	case StatusErrored:
		return "ERROR"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the verification result of one cell.
// MaxAbsDiff is meaningful for Matched and Mismatched; Err only for Errored.
type Outcome struct {
	Status     Status
	MaxAbsDiff float64
	Err        error
}

// Matched builds a matched outcome; diff is the (within-tolerance) max deviation.
func Matched(diff float64) Outcome { return Outcome{Status: StatusMatched, MaxAbsDiff: diff} }

// Mismatched builds a mismatched outcome carrying the max absolute deviation.
func Mismatched(diff float64) Outcome { return Outcome{Status: StatusMismatched, MaxAbsDiff: diff} }

// Errored builds an errored outcome. A nil err is replaced by errUnknown so
// the report never prints an empty reason.
func Errored(err error) Outcome {
	if err == nil {
		err = errUnknown
	}
	return Outcome{Status: StatusErrored, Err: err}
}

var errUnknown = errors.New("unknown failure")

// Reason returns the error text for errored outcomes and "" otherwise.
func (o Outcome) Reason() string {
	if o.Status != StatusErrored || o.Err == nil {
		return ""
	}
	return o.Err.Error()
}
