// SPDX-License-Identifier: MIT

// Package matrix - text codec for dense matrices.
//
// Format:
//   - One matrix row per line, elements separated by whitespace (writers use a
//     single space, often with a trailing one), no header and no shape line.
//   - Blank lines are ignored. The shape is supplied by the caller, never sniffed.
//
// Error priority while decoding (first hit wins, scanning top to bottom):
//   - ErrInvalidDimensions for a non-positive declared shape (before any I/O);
//   - ErrDimensionMismatch for a row with the wrong number of columns;
//   - ErrParse for a token that is not a number of the requested Kind;
//   - ErrNaNInf for a float token that parses to NaN/±Inf;
//   - ErrDimensionMismatch for a wrong total row count (reported after the scan).

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/LoKe112/Paral-1/internal/textio"
)

// maxLineBytes bounds a single row line; a 10k-column row of 64-bit
// integers stays well below it.
const maxLineBytes = 64 << 20

const (
	opLoad   = "Load"
	opDecode = "Decode"
	opEncode = "Encode"
	opWrite  = "Write"
)

// Load reads a rows×cols matrix from path. Paths ending in ".zst" are
// decompressed on the fly. A missing or unreadable file returns the wrapped
// *fs.PathError; shape and token problems return ErrDimensionMismatch / ErrParse.
func Load(path string, rows, cols int, kind Kind) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opLoad, err)
	}
	r, err := textio.Open(path)
	if err != nil {
		return nil, matrixErrorf(opLoad, err)
	}
	defer r.Close()

	m, err := Decode(r, rows, cols, kind)
	if err != nil {
		return nil, matrixErrorf(fmt.Sprintf("%s(%s)", opLoad, path), err)
	}

	return m, nil
}

// Decode parses a rows×cols matrix from r.
//
// Implementation:
//   - Stage 1: validate the declared shape and allocate the result once.
//   - Stage 2: scan non-blank lines; check each row's width before parsing it.
//   - Stage 3: after EOF compare the observed row count with the declared one.
//
// Complexity:
//   - Time O(bytes), Space O(rows*cols).
func Decode(r io.Reader, rows, cols int, kind Kind) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opDecode, err)
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opDecode, err)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		lineNo int // 1-based physical line number, for messages
		row    int // number of non-blank rows seen so far
		fields []string
		v      float64
	)
	for sc.Scan() {
		lineNo++
		fields = strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if row >= rows {
			// Keep counting so the message reports the real row count.
			row++
			continue
		}
		if len(fields) != cols {
			return nil, matrixErrorf(opDecode,
				fmt.Errorf("line %d: %d columns, want %d: %w", lineNo, len(fields), cols, ErrDimensionMismatch))
		}
		for j, tok := range fields {
			if v, err = parseToken(tok, kind); err != nil {
				return nil, matrixErrorf(opDecode, fmt.Errorf("line %d col %d: %w", lineNo, j+1, err))
			}
			// data is row-major; Set applies the numeric policy.
			if err = m.Set(row, j, v); err != nil {
				return nil, matrixErrorf(opDecode, fmt.Errorf("line %d col %d: %w", lineNo, j+1, err))
			}
		}
		row++
	}
	if err = sc.Err(); err != nil {
		return nil, matrixErrorf(opDecode, err)
	}
	if row != rows {
		return nil, matrixErrorf(opDecode, fmt.Errorf("%d rows, want %d: %w", row, rows, ErrDimensionMismatch))
	}

	return m, nil
}

// maxExactInt is the largest magnitude float64 holds without rounding.
const maxExactInt = 1 << 53

// parseToken converts a single token according to kind.
func parseToken(tok string, kind Kind) (float64, error) {
	switch kind {
	case KindInteger:
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("token %q is not an integer: %w", tok, ErrParse)
		}
		if n > maxExactInt || n < -maxExactInt {
			return 0, fmt.Errorf("token %q exceeds 2^53 and cannot be stored exactly: %w", tok, ErrParse)
		}
		return float64(n), nil
	case KindFloat:
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, fmt.Errorf("token %q is not a number: %w", tok, ErrParse)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unknown kind %d: %w", int(kind), ErrParse)
	}
}

// Encode writes m in the codec's text format: one row per line, values
// separated by a single space, shortest exact decimal per value (integers
// carry no fractional part). Encode followed by Decode is the identity.
func Encode(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opEncode, err)
	}
	bw := bufio.NewWriter(w)
	d, dense := m.(*Dense)
	var (
		buf []byte
		row = make([]float64, m.Cols())
		err error
	)
	for i := 0; i < m.Rows(); i++ {
		if dense {
			row, err = d.Row(i)
		} else {
			for j := range row {
				if row[j], err = m.At(i, j); err != nil {
					break
				}
			}
		}
		if err != nil {
			return matrixErrorf(opEncode, err)
		}
		buf = buf[:0]
		for j, v := range row {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, v, 'f', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err = bw.Write(buf); err != nil {
			return matrixErrorf(opEncode, err)
		}
	}
	if err = bw.Flush(); err != nil {
		return matrixErrorf(opEncode, err)
	}

	return nil
}

// Write stores m at path (creating parent directories, compressing ".zst").
func Write(path string, m Matrix) (err error) {
	w, err := textio.Create(path)
	if err != nil {
		return matrixErrorf(opWrite, err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = matrixErrorf(opWrite, cerr)
		}
	}()

	return Encode(w, m)
}
