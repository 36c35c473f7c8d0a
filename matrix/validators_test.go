// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LoKe112/Paral-1/matrix"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}
	var typedNil *matrix.Dense

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second typed nil", dense(2, 2), typedNil, matrix.ErrNilMatrix},
		{"equal 2x3", dense(2, 3), dense(2, 3), nil},
		{"row mismatch", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(2, 3), dense(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateMulCompatible checks the inner-dimension rule and its ErrShape alias.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateMulCompatible(a, MustDense(t, 3, 5)))

	err := matrix.ValidateMulCompatible(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrShape)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "2x3 by 2x3")

	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, a), matrix.ErrNilMatrix)
}

// TestValidateTolerance accepts zero and positive finite values only.
func TestValidateTolerance(t *testing.T) {
	t.Parallel()

	for _, tol := range []float64{0, 1e-12, matrix.DefaultTolerance, 10} {
		require.NoError(t, matrix.ValidateTolerance(tol), "tol=%v", tol)
	}
	for _, tol := range []float64{-1e-9, math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.ErrorIs(t, matrix.ValidateTolerance(tol), matrix.ErrBadTolerance, "tol=%v", tol)
	}
}

// TestValidateShape rejects non-positive declared shapes.
func TestValidateShape(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateShape(1, 1))
	for _, rc := range [][2]int{{0, 1}, {1, 0}, {-3, 3}} {
		require.ErrorIs(t, matrix.ValidateShape(rc[0], rc[1]), matrix.ErrInvalidDimensions)
	}
}
