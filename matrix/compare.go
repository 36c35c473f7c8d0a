// SPDX-License-Identifier: MIT

package matrix

import "math"

// DefaultTolerance is the absolute epsilon historically used to compare
// floating-point products. Callers of the grid runner pass the tolerance
// explicitly; this constant is only a documented starting point.
const DefaultTolerance = 1e-6

// Compare checks element-wise |computed-candidate| ≤ tol for identical shapes
// and reports the largest absolute deviation seen anywhere in the matrix.
//
// Implementation:
//   - Stage 1: ValidateTolerance, then ValidateBinarySameShape.
//   - Stage 2: full scan (no early exit) so maxAbsDiff covers every element;
//     flat loop for two *Dense, i→j At loop otherwise.
//
// Behavior highlights:
//   - tol = 0 makes the comparison exact, which suits integer workloads.
//   - A NaN difference counts as a violation and forces maxAbsDiff to +Inf.
//   - Shape mismatch is an error (ErrShape), never folded into maxAbsDiff.
//
// Returns:
//   - ok: true iff every pair is within tol.
//   - maxAbsDiff: max |computed[i][j]-candidate[i][j]| (0 for identical matrices).
//
// Errors:
//   - ErrBadTolerance, ErrNilMatrix, ErrShape.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Compare(computed, candidate Matrix, tol float64) (ok bool, maxAbsDiff float64, err error) {
	if err = ValidateTolerance(tol); err != nil {
		return false, 0, matrixErrorf(opCompare, err)
	}
	if err = ValidateBinarySameShape(computed, candidate); err != nil {
		return false, 0, matrixErrorf(opCompare, err)
	}

	ok = true
	observe := func(x, y float64) {
		d := math.Abs(x - y)
		if math.IsNaN(d) {
			ok = false
			maxAbsDiff = math.Inf(1)
			return
		}
		if d > tol {
			ok = false
		}
		if d > maxAbsDiff {
			maxAbsDiff = d
		}
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := computed.(*Dense); okA {
		if db, okB := candidate.(*Dense); okB {
			for idx := range da.data {
				observe(da.data[idx], db.data[idx])
			}
			return ok, maxAbsDiff, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	r, c := computed.Rows(), computed.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = computed.At(i, j); err != nil {
				return false, 0, matrixErrorf(opCompare, err)
			}
			if bv, err = candidate.At(i, j); err != nil {
				return false, 0, matrixErrorf(opCompare, err)
			}
			observe(av, bv)
		}
	}

	return ok, maxAbsDiff, nil
}
