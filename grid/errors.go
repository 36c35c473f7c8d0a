// SPDX-License-Identifier: MIT

package grid

import "errors"

// Input-validation sentinels returned by Runner.Run before any cell is
// visited. They signal caller bugs; per-cell failures never surface here and
// are recorded as errored outcomes instead.
var (
	// ErrNoAxes indicates Run was called with an empty axis list.
	ErrNoAxes = errors.New("grid: at least one axis is required")

	// ErrDuplicateAxis indicates two axes share a name.
	ErrDuplicateAxis = errors.New("grid: duplicate axis name")

	// ErrMissingShapeAxis indicates the configured shape axis is not among the axes.
	ErrMissingShapeAxis = errors.New("grid: shape axis not present")

	// ErrNilScheme indicates a nil NamingScheme.
	ErrNilScheme = errors.New("grid: nil naming scheme")

	// ErrNilAccumulator indicates a nil report accumulator.
	ErrNilAccumulator = errors.New("grid: nil report accumulator")
)

// Path-resolution sentinels. These end up inside errored outcomes.
var (
	// ErrUnknownPlaceholder indicates a pattern names an axis the cell lacks.
	ErrUnknownPlaceholder = errors.New("grid: unknown placeholder")

	// ErrBadPattern indicates an unterminated or empty placeholder.
	ErrBadPattern = errors.New("grid: malformed pattern")

	// ErrUnknownScheme indicates SchemeByName got a name it does not know.
	ErrUnknownScheme = errors.New("grid: unknown naming scheme")
)
