// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels and the codec.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LoKe112/Paral-1/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// FromRows BUILDS a *Dense from literal rows or fails the test.
func FromRows(t *testing.T, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// RandomInts FILLS an r×c *Dense with integers in [-1000, 1000] from a fixed seed,
// matching the value range of the integer benchmark generators.
func RandomInts(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, float64(rng.Intn(2001)-1000)))
		}
	}

	return m
}

// requireEqualMatrix ASSERTS identical shape and bitwise-equal values.
func requireEqualMatrix(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.Equalf(t, w, g, "element (%d,%d)", i, j)
		}
	}
}
