// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/tolerance checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: rows %d != %d", a.Rows(), b.Rows()), ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: cols %d != %d", a.Cols(), b.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: Combines ErrNilMatrix and ErrDimensionMismatch.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrShape (alias of ErrDimensionMismatch).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d by %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()), ErrShape)
	}

	return nil
}

// ValidateTolerance rejects tolerances that cannot define a comparison:
// NaN, ±Inf and negative values. Zero is legal and means exact comparison.
func ValidateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateTolerance(%v)", tol), ErrBadTolerance)
	}

	return nil
}

// ValidateShape rejects non-positive declared shapes before any allocation or I/O.
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrInvalidDimensions)
	}

	return nil
}
