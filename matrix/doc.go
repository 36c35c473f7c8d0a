// Package matrix is the trusted numeric core of the verification harness.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors and a
//     finite-only numeric policy.
//   - Load/Decode/Encode/Write, a plain-text codec (one row per line, values
//     separated by spaces) that validates a caller-declared shape.
//   - Mul, the reference dense multiplication, and Compare, an absolute-tolerance
//     elementwise comparison that reports the maximum absolute deviation.
//
// Integer workloads are stored exactly (up to 2^53) and compared with tolerance 0.
//
// All failures are sentinel errors (ErrDimensionMismatch, ErrParse, ErrShape,
// ErrBadTolerance, ...) wrapped with an operation tag; use errors.Is.
package matrix
