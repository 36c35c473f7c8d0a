// SPDX-License-Identifier: MIT
// Package matrix: public constructors.
//
// Purpose:
//   - Provide thin, intention-revealing entry points to build matrices from
//     literal data (tests, fixtures) without exposing internal storage.

package matrix

import "fmt"

// NewFromRows builds a *Dense from a rectangular [][]float64 (copied).
//
// Errors:
//   - ErrInvalidDimensions for no rows or empty rows.
//   - ErrDimensionMismatch for ragged input.
//   - ErrNaNInf for non-finite values.
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(row), m.c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}
