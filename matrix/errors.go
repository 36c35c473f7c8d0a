// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels and the codec return these sentinels (optionally wrapped
// with an operation or location tag) and tests check them via errors.Is.
// No exported function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs and verification reports. Context is attached at
// the detection site with fmt.Errorf("ctx: %w", ErrX); callers still use
// errors.Is to classify.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape (declared) -> parse -> shape (observed) -> numeric policy.

var (
	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that an observed shape disagrees with the
	// expected one: a decoded file with the wrong number of rows or a row with
	// the wrong number of columns, or incompatible operands in Mul/Compare.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrParse indicates that a token in a matrix text stream is not a valid
	// number for the requested Kind.
	ErrParse = errors.New("matrix: invalid numeric token")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrBadTolerance signals a comparison tolerance that is negative, NaN or ±Inf.
	ErrBadTolerance = errors.New("matrix: tolerance must be finite and non-negative")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)

// ErrShape names the multiplication-compatibility failure (A.Cols != B.Rows)
// and the operand-shape failure in Compare. It aliases ErrDimensionMismatch so
// errors.Is matches either name; the op tag ("Mul", "Compare") in the wrapped
// message tells the two situations apart.
var ErrShape = ErrDimensionMismatch
