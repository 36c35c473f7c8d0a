// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/LoKe112/Paral-1/internal/textio"
)

var (
	// ErrOutput wraps every failure to write a finished report. It is the only
	// failure class of a run that callers treat as fatal.
	ErrOutput = errors.New("report: cannot write report")

	// ErrFinalized is returned by Record/BeginSection after Finalize.
	ErrFinalized = errors.New("report: accumulator already finalized")
)

// Formatting literals for report lines.
const (
	sectionFmt  = "==== %s ===="
	okFmt       = "[OK] %s"
	failFmt     = "[FAIL] %s — mismatch detected"
	maxDiffFmt  = "        Max difference: %s"
	errorFmt    = "[ERROR] %s — %s"
	tableHeader = "section | cell | status | max_abs_diff | reason"
)

type entry struct {
	desc    string
	outcome Outcome
}

type section struct {
	label   string
	titled  bool // false only for the implicit leading section
	entries []entry
}

// Counts summarizes a report by status.
type Counts struct {
	Matched    int
	Mismatched int
	Errored    int
}

// Total is the number of recorded outcomes.
func (c Counts) Total() int { return c.Matched + c.Mismatched + c.Errored }

// Option configures an Accumulator.
type Option func(*Accumulator)

// WithHeader sets preamble lines printed before the first section.
func WithHeader(lines ...string) Option {
	return func(a *Accumulator) {
		a.header = append([]string(nil), lines...)
	}
}

// Accumulator is the append-only ledger of a verification run: sections and
// outcome lines in the order they were recorded. It performs no sorting,
// filtering or deduplication. Methods are safe for concurrent use, but
// ordering is the caller's: one writer keeps the ledger deterministic.
type Accumulator struct {
	mu        sync.Mutex
	header    []string
	sections  []*section
	counts    Counts
	finalized bool
	text      string
}

// New returns an empty accumulator.
func New(opts ...Option) *Accumulator {
	a := &Accumulator{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// BeginSection starts a labeled group; subsequent records belong to it.
// An empty section (no records) is still rendered.
func (a *Accumulator) BeginSection(label string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finalized {
		return ErrFinalized
	}
	a.sections = append(a.sections, &section{label: label, titled: true})
	return nil
}

// Record appends one cell outcome under the current section.
func (a *Accumulator) Record(desc string, o Outcome) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finalized {
		return ErrFinalized
	}
	if len(a.sections) == 0 {
		a.sections = append(a.sections, &section{})
	}
	cur := a.sections[len(a.sections)-1]
	cur.entries = append(cur.entries, entry{desc: desc, outcome: o})

	switch o.Status {
	case StatusMatched:
		a.counts.Matched++
	case StatusMismatched:
		a.counts.Mismatched++
	default:
		a.counts.Errored++
	}
	return nil
}

// Counts returns the per-status totals recorded so far.
func (a *Accumulator) Counts() Counts {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counts
}

// Finalize freezes the ledger and returns the human-readable report.
// Calling it again returns the same text.
func (a *Accumulator) Finalize() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.finalized {
		a.text = a.render()
		a.finalized = true
	}
	return a.text
}

func (a *Accumulator) render() string {
	var lines []string
	lines = append(lines, a.header...)
	for _, s := range a.sections {
		if s.titled {
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, fmt.Sprintf(sectionFmt, s.label))
		}
		for _, e := range s.entries {
			lines = append(lines, formatEntry(e)...)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func formatEntry(e entry) []string {
	switch e.outcome.Status {
	case StatusMatched:
		return []string{fmt.Sprintf(okFmt, e.desc)}
	case StatusMismatched:
		return []string{
			fmt.Sprintf(failFmt, e.desc),
			fmt.Sprintf(maxDiffFmt, formatDiff(e.outcome.MaxAbsDiff)),
		}
	default:
		return []string{fmt.Sprintf(errorFmt, e.desc, oneLine(e.outcome.Reason()))}
	}
}

// Table renders the machine-parsable summary: a header row and one
// pipe-delimited row per recorded outcome, in recording order.
// Every "|" inside a field (section label, cell description, error reason)
// is rewritten to "/" so the column count stays fixed; the table text can
// therefore differ from the main report for such fields.
func (a *Accumulator) Table() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	var b strings.Builder
	b.WriteString(tableHeader)
	b.WriteByte('\n')
	for _, s := range a.sections {
		for _, e := range s.entries {
			diff := ""
			if e.outcome.Status != StatusErrored {
				diff = formatDiff(e.outcome.MaxAbsDiff)
			}
			fields := []string{s.label, e.desc, e.outcome.Status.String(), diff, oneLine(e.outcome.Reason())}
			for i, f := range fields {
				fields[i] = strings.ReplaceAll(f, "|", "/")
			}
			b.WriteString(strings.Join(fields, " | "))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// WriteTo writes the finalized report to w (finalizing it if needed).
func (a *Accumulator) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, a.Finalize())
	if err != nil {
		return int64(n), fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return int64(n), nil
}

// WriteFile writes the finalized report to path, creating parent directories.
func (a *Accumulator) WriteFile(path string) error {
	return writeText(path, a.Finalize())
}

// WriteTableFile writes Table() to path.
func (a *Accumulator) WriteTableFile(path string) error {
	return writeText(path, a.Table())
}

func writeText(path, text string) (err error) {
	w, err := textio.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrOutput, cerr)
		}
	}()
	if _, err = io.WriteString(w, text); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}

func formatDiff(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
