// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LoKe112/Paral-1/report"
)

func TestFinalizeFormatsEachStatus(t *testing.T) {
	acc := report.New()
	require.NoError(t, acc.BeginSection("Verification for 1 threads"))
	require.NoError(t, acc.Record("size 100 trial 1", report.Matched(0)))
	require.NoError(t, acc.Record("size 100 trial 2", report.Mismatched(42)))
	require.NoError(t, acc.Record("size 100 trial 3", report.Errored(errors.New("open A_3.txt: no such file or directory"))))

	want := strings.Join([]string{
		"==== Verification for 1 threads ====",
		"[OK] size 100 trial 1",
		"[FAIL] size 100 trial 2 — mismatch detected",
		"        Max difference: 42",
		"[ERROR] size 100 trial 3 — open A_3.txt: no such file or directory",
	}, "\n") + "\n"
	require.Equal(t, want, acc.Finalize())
	require.Equal(t, report.Counts{Matched: 1, Mismatched: 1, Errored: 1}, acc.Counts())
}

func TestSectionsPreserveInsertionOrderIncludingEmpty(t *testing.T) {
	acc := report.New(report.WithHeader("Run: r1"))
	require.NoError(t, acc.BeginSection("b"))
	require.NoError(t, acc.BeginSection("a"))
	require.NoError(t, acc.Record("z", report.Matched(0)))
	require.NoError(t, acc.Record("y", report.Matched(0)))
	require.NoError(t, acc.Record("z", report.Matched(0))) // duplicates kept

	want := "Run: r1\n\n==== b ====\n\n==== a ====\n[OK] z\n[OK] y\n[OK] z\n"
	require.Equal(t, want, acc.Finalize())
}

func TestRecordWithoutSection(t *testing.T) {
	acc := report.New()
	require.NoError(t, acc.Record("size 10", report.Matched(0)))
	require.Equal(t, "[OK] size 10\n", acc.Finalize())
}

func TestEmptyReport(t *testing.T) {
	require.Equal(t, "", report.New().Finalize())
}

func TestFinalizeFreezes(t *testing.T) {
	acc := report.New()
	require.NoError(t, acc.Record("x", report.Matched(0)))
	first := acc.Finalize()

	require.ErrorIs(t, acc.Record("y", report.Matched(0)), report.ErrFinalized)
	require.ErrorIs(t, acc.BeginSection("late"), report.ErrFinalized)
	require.Equal(t, first, acc.Finalize())
}

func TestErroredReasonIsSingleLine(t *testing.T) {
	acc := report.New()
	require.NoError(t, acc.Record("c", report.Errored(errors.New("first\nsecond"))))
	require.NoError(t, acc.Record("d", report.Errored(nil)))

	out := acc.Finalize()
	assert.Contains(t, out, "[ERROR] c — first second\n")
	assert.Contains(t, out, "[ERROR] d — unknown failure\n")
}

func TestTable(t *testing.T) {
	acc := report.New()
	require.NoError(t, acc.BeginSection("threads 2"))
	require.NoError(t, acc.Record("size 5 trial 1", report.Matched(1e-7)))
	require.NoError(t, acc.Record("size 5 trial 2", report.Mismatched(0.5)))
	require.NoError(t, acc.Record("size 5 trial 3", report.Errored(errors.New("a|b"))))

	want := "section | cell | status | max_abs_diff | reason\n" +
		"threads 2 | size 5 trial 1 | OK | 1e-07 | \n" +
		"threads 2 | size 5 trial 2 | FAIL | 0.5 | \n" +
		"threads 2 | size 5 trial 3 | ERROR |  | a/b\n"
	require.Equal(t, want, acc.Table())
}

func TestWriteFileAndWriteTo(t *testing.T) {
	acc := report.New()
	require.NoError(t, acc.Record("x", report.Mismatched(3)))

	path := filepath.Join(t.TempDir(), "reports", "verification_report.txt")
	require.NoError(t, acc.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, acc.Finalize(), string(data))

	var buf bytes.Buffer
	n, err := acc.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), n)
}

func TestWriteFileUnwritableIsOutputError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	// A regular file used as a directory cannot host the report.
	err := report.New().WriteFile(filepath.Join(blocker, "report.txt"))
	require.ErrorIs(t, err, report.ErrOutput)
}

func TestHostHeader(t *testing.T) {
	id := report.NewRunID()
	require.Len(t, id, 36)
	require.NotEqual(t, id, report.NewRunID())

	lines := report.HostHeader(id)
	require.Len(t, lines, 3)
	require.Equal(t, "Run: "+id, lines[0])
	require.True(t, strings.HasPrefix(lines[1], "Host: "))
	require.True(t, strings.HasPrefix(lines[2], "SIMD: "))
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "OK", report.StatusMatched.String())
	require.Equal(t, "FAIL", report.StatusMismatched.String())
	require.Equal(t, "ERROR", report.StatusErrored.String())
	require.Equal(t, "Status(9)", report.Status(9).String())
}
