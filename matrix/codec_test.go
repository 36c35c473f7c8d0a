// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LoKe112/Paral-1/matrix"
)

func TestDecodeTrailingSpacesAndBlankLines(t *testing.T) {
	// Layout produced by the benchmark writers: trailing space, final newline.
	src := "1 -2 3 \n\n4 5 -6 \n"

	m, err := matrix.Decode(strings.NewReader(src), 2, 3, matrix.KindInteger)
	require.NoError(t, err)
	requireEqualMatrix(t, FromRows(t, []float64{1, -2, 3}, []float64{4, 5, -6}), m)
}

func TestDecodeFloatAcceptsIntegersAndExponents(t *testing.T) {
	m, err := matrix.Decode(strings.NewReader("1 2.5\n-3e2 4.0\n"), 2, 2, matrix.KindFloat)
	require.NoError(t, err)
	requireEqualMatrix(t, FromRows(t, []float64{1, 2.5}, []float64{-300, 4}), m)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		rows, cols int
		kind       matrix.Kind
		want       error
		msg        string
	}{
		{"too-few-rows", "1 2\n", 2, 2, matrix.KindInteger, matrix.ErrDimensionMismatch, "1 rows, want 2"},
		{"too-many-rows", "1 2\n3 4\n5 6\n", 2, 2, matrix.KindInteger, matrix.ErrDimensionMismatch, "3 rows, want 2"},
		{"short-row", "1 2\n3\n", 2, 2, matrix.KindInteger, matrix.ErrDimensionMismatch, "line 2: 1 columns, want 2"},
		{"long-row", "1 2 9\n3 4\n", 2, 2, matrix.KindInteger, matrix.ErrDimensionMismatch, "line 1: 3 columns"},
		{"float-in-integer-file", "1 2\n3 4.5\n", 2, 2, matrix.KindInteger, matrix.ErrParse, `line 2 col 2: token "4.5"`},
		{"garbage-token", "1 x\n3 4\n", 2, 2, matrix.KindFloat, matrix.ErrParse, `token "x"`},
		{"nan-token", "1 NaN\n3 4\n", 2, 2, matrix.KindFloat, matrix.ErrNaNInf, "line 1 col 2"},
		{"empty-input", "", 1, 1, matrix.KindFloat, matrix.ErrDimensionMismatch, "0 rows, want 1"},
		{"bad-declared-shape", "1\n", 0, 1, matrix.KindFloat, matrix.ErrInvalidDimensions, "ValidateShape"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := matrix.Decode(strings.NewReader(tt.src), tt.rows, tt.cols, tt.kind)
			require.ErrorIs(t, err, tt.want)
			require.Contains(t, err.Error(), tt.msg)
		})
	}
}

// Integers beyond 2^53 would round in float64, so KindInteger refuses them.
func TestDecodeIntegerPrecisionLimit(t *testing.T) {
	for _, tok := range []string{"9007199254740992", "-9007199254740992"} {
		m, err := matrix.Decode(strings.NewReader(tok), 1, 1, matrix.KindInteger)
		require.NoError(t, err, tok)
		v, _ := m.At(0, 0)
		require.Equal(t, tok, strconv.FormatFloat(v, 'f', -1, 64))
	}
	for _, tok := range []string{"9007199254740993", "-9007199254740993", "9223372036854775807"} {
		_, err := matrix.Decode(strings.NewReader(tok), 1, 1, matrix.KindInteger)
		require.ErrorIs(t, err, matrix.ErrParse, tok)
		require.Contains(t, err.Error(), "2^53")
	}
}

// Writing integer content and reading it back yields an identical matrix.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, n := range []int{1, 3, 17} {
		want := RandomInts(t, n, n+2, int64(n))

		var buf bytes.Buffer
		require.NoError(t, matrix.Encode(&buf, want))
		require.NotContains(t, buf.String(), ".") // integers carry no fractional part

		got, err := matrix.Decode(&buf, n, n+2, matrix.KindInteger)
		require.NoError(t, err)
		requireEqualMatrix(t, want, got)
	}
}

func TestEncodeFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, matrix.Encode(&buf, FromRows(t, []float64{1, -2}, []float64{0.5, 1e6})))
	require.Equal(t, "1 -2\n0.5 1000000\n", buf.String())
}

// Encode renders non-Dense matrices through At with the same text.
func TestEncodeFallbackMatchesDense(t *testing.T) {
	m := RandomInts(t, 4, 3, 9)

	var fast, slow bytes.Buffer
	require.NoError(t, matrix.Encode(&fast, m))
	require.NoError(t, matrix.Encode(&slow, hide{m}))
	require.Equal(t, fast.String(), slow.String())
}

func TestWriteLoadRoundTripPlainAndCompressed(t *testing.T) {
	dir := t.TempDir()
	want := RandomInts(t, 6, 6, 42)

	for _, name := range []string{"size_6/A_1.txt", "size_6/A_1.txt.zst"} {
		path := filepath.Join(dir, name)
		require.NoError(t, matrix.Write(path, want))

		got, err := matrix.Load(path, 6, 6, matrix.KindInteger)
		require.NoError(t, err)
		requireEqualMatrix(t, want, got)
	}
}

func TestLoadMissingFileKeepsIOCause(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	_, err := matrix.Load(path, 2, 2, matrix.KindInteger)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, err.Error(), "nope.txt")
}

func TestLoadReportsPathOnShapeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "C_1.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2\n3 4\n"), 0o644))

	_, err := matrix.Load(path, 3, 3, matrix.KindInteger)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "C_1.txt")
}
