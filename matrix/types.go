// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage, the kernels and
// the text codec.
package matrix

// Kind selects how numeric tokens are converted when a matrix is decoded.
// Storage is always float64; Kind only governs which token spellings are legal.
type Kind int

const (
	// KindFloat accepts any token strconv.ParseFloat accepts (integers included).
	KindFloat Kind = iota

	// KindInteger accepts only base-10 integer tokens, as written by integer
	// benchmark workloads. Values are stored exactly up to 2^53.
	KindInteger
)

// String returns the lower-case name used in configs and diagnostics.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
