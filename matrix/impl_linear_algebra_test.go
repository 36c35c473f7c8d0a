// SPDX-License-Identifier: MIT
// Package matrix_test: tests for the reference multiplication and the
// tolerance comparison.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LoKe112/Paral-1/matrix"
)

func TestMulKnownProduct(t *testing.T) {
	a := FromRows(t, []float64{1, 2, 3}, []float64{4, 5, 6})
	b := FromRows(t, []float64{7, 8}, []float64{9, 10}, []float64{11, 12})
	want := FromRows(t, []float64{58, 64}, []float64{139, 154})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireEqualMatrix(t, want, got)

	// Fallback path must agree bitwise with the Dense fast path.
	got, err = matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	requireEqualMatrix(t, want, got)
}

func TestMulShapeError(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 2, 3)

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrShape)
	require.Contains(t, err.Error(), "Mul")

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulIdentity(t *testing.T) {
	a := RandomInts(t, 5, 5, 7)
	id, err := matrix.NewIdentity(5)
	require.NoError(t, err)

	got, err := matrix.Mul(a, id)
	require.NoError(t, err)
	requireEqualMatrix(t, a, got)
}

// For all compatible A, B and tolerance 0, compare(A·B, A·B) matches with zero diff.
func TestCompareSelfProductExact(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		n := int(seed) * 3
		a := RandomInts(t, n, n, seed)
		b := RandomInts(t, n, n, seed+1000)

		c1, err := matrix.Mul(a, b)
		require.NoError(t, err)
		c2, err := matrix.Mul(a, b)
		require.NoError(t, err)

		ok, diff, err := matrix.Compare(c1, c2, 0)
		require.NoError(t, err)
		require.True(t, ok)
		require.Zero(t, diff)
	}
}

// A candidate off by more than tol in one element mismatches with diff >= tol.
func TestComparePerturbedCandidate(t *testing.T) {
	tests := []struct {
		name  string
		tol   float64
		delta float64
		ok    bool
	}{
		{"exact-integer-off-by-one", 0, 1, false},
		{"within-epsilon", matrix.DefaultTolerance, 5e-7, true},
		{"at-epsilon-boundary", 0.5, 0.5, true},
		{"beyond-epsilon", matrix.DefaultTolerance, 1e-3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := RandomInts(t, 4, 4, 11)
			b := RandomInts(t, 4, 4, 12)
			computed, err := matrix.Mul(a, b)
			require.NoError(t, err)

			candidate := computed.Clone()
			v, err := candidate.At(2, 3)
			require.NoError(t, err)
			require.NoError(t, candidate.Set(2, 3, v+tt.delta))

			ok, diff, err := matrix.Compare(computed, candidate, tt.tol)
			require.NoError(t, err)
			require.Equal(t, tt.ok, ok)
			require.InDelta(t, tt.delta, diff, 1e-9)
			if !ok {
				require.GreaterOrEqual(t, diff, tt.tol)
			}
		})
	}
}

func TestCompareMaxDiffScansWholeMatrix(t *testing.T) {
	computed := FromRows(t, []float64{1, 2}, []float64{3, 4})
	candidate := FromRows(t, []float64{2, 2}, []float64{3, 10})

	for _, pair := range [][2]matrix.Matrix{{computed, candidate}, {hide{computed}, hide{candidate}}} {
		ok, diff, err := matrix.Compare(pair[0], pair[1], 0.5)
		require.NoError(t, err)
		require.False(t, ok)
		require.Equal(t, 6.0, diff) // not the first violation (1.0)
	}
}

func TestCompareErrors(t *testing.T) {
	a := MustDense(t, 2, 2)
	b := MustDense(t, 2, 3)

	_, _, err := matrix.Compare(a, b, 0)
	require.ErrorIs(t, err, matrix.ErrShape)

	for _, tol := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, _, err = matrix.Compare(a, a, tol)
		require.ErrorIs(t, err, matrix.ErrBadTolerance)
	}

	var nilDense *matrix.Dense
	_, _, err = matrix.Compare(a, nilDense, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
