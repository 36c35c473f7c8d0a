// SPDX-License-Identifier: MIT

package stats

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/LoKe112/Paral-1/internal/textio"
)

// DefaultTableSkip is the header height of the summary pipe table
// (title, column names, rule).
const DefaultTableSkip = 3

// MaxLineBytes bounds one log line. Longer lines are skipped with a
// diagnostic wrapping ErrLineTooLong.
const MaxLineBytes = 64 * 1024

const textPreviewBytes = 80

const panicColumnInvalid = "stats: WithColumn: column must be >= 1"

// Sample is one (size, time) measurement.
type Sample struct {
	Size int
	Time float64
}

// Series is an ordered list of samples in file order. Repeated sizes are kept.
type Series struct {
	Unit    Unit
	Samples []Sample
}

// Sizes returns the sizes of s in order.
func (s Series) Sizes() []int {
	out := make([]int, len(s.Samples))
	for i, p := range s.Samples {
		out[i] = p.Size
	}
	return out
}

// Times returns the times of s in order.
func (s Series) Times() []float64 {
	out := make([]float64, len(s.Samples))
	for i, p := range s.Samples {
		out[i] = p.Time
	}
	return out
}

// Diagnostic describes a skipped line.
type Diagnostic struct {
	Line int // 1-based
	Text string
	Err  error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d %q: %v", d.Line, d.Text, d.Err)
}

type options struct {
	unit   Unit
	column int
	skip   int
	skipOK bool
}

// Option configures Parse.
type Option func(*options)

// WithUnit sets the unit whose suffix is stripped from time fields and
// recorded on the Series. Default Millisecond. No conversion happens.
func WithUnit(u Unit) Option {
	return func(o *options) { o.unit = u }
}

// WithColumn picks the 1-based time column of FormatTable. Default 1.
func WithColumn(col int) Option {
	if col < 1 {
		panic(panicColumnInvalid)
	}
	return func(o *options) { o.column = col }
}

// WithSkipLines drops the first n raw lines before parsing. Default 0, or
// DefaultTableSkip for FormatTable.
func WithSkipLines(n int) Option {
	return func(o *options) {
		o.skip = max(n, 0)
		o.skipOK = true
	}
}

// Parse reads r line by line and returns the samples that match f.
// Blank lines are skipped silently; malformed lines are skipped and reported
// as diagnostics. The error is non-nil only when reading r fails, in which
// case the series and diagnostics gathered so far are still returned.
func Parse(r io.Reader, f Format, opts ...Option) (Series, []Diagnostic, error) {
	o := &options{unit: Millisecond, column: 1}
	for _, opt := range opts {
		opt(o)
	}
	if !o.skipOK && f == FormatTable {
		o.skip = DefaultTableSkip
	}
	parse, err := f.parser()
	if err != nil {
		return Series{Unit: o.unit}, nil, err
	}

	series := Series{Unit: o.unit}
	var diags []Diagnostic
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, long, err := readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return series, diags, fmt.Errorf("stats: read line %d: %w", lineNo+1, err)
		}
		lineNo++
		if lineNo <= o.skip {
			continue
		}
		line := strings.TrimSpace(string(raw))
		if long {
			diags = append(diags, Diagnostic{
				Line: lineNo,
				Text: line + "...",
				Err:  fmt.Errorf("%w: %w", ErrMalformedLine, ErrLineTooLong),
			})
			continue
		}
		if line == "" {
			continue
		}
		s, err := parse(line, o)
		if err != nil {
			diags = append(diags, Diagnostic{
				Line: lineNo,
				Text: line,
				Err:  fmt.Errorf("%w: %w", ErrMalformedLine, err),
			})
			continue
		}
		series.Samples = append(series.Samples, s)
	}
	return series, diags, nil
}

// readLine returns the next line without its terminator. A line longer than
// MaxLineBytes is drained; only its first textPreviewBytes are returned and
// long is set. err is io.EOF only when no line remains.
func readLine(br *bufio.Reader) (line []byte, long bool, err error) {
	read := false
	for {
		chunk, more, err := br.ReadLine()
		if err != nil {
			if err == io.EOF && read {
				return line, long, nil
			}
			return nil, false, err
		}
		read = true
		switch {
		case long:
		case len(line)+len(chunk) > MaxLineBytes:
			long = true
			line = append(line, chunk...)
			line = line[:min(len(line), textPreviewBytes)]
		default:
			line = append(line, chunk...)
		}
		if !more {
			return line, long, nil
		}
	}
}

// ParseFile parses the log at path. ".zst" files are decompressed.
func ParseFile(path string, f Format, opts ...Option) (Series, []Diagnostic, error) {
	rc, err := textio.Open(path)
	if err != nil {
		return Series{}, nil, fmt.Errorf("stats: %w", err)
	}
	defer rc.Close()

	s, diags, err := Parse(rc, f, opts...)
	if err != nil {
		return s, diags, fmt.Errorf("%s: %w", path, err)
	}
	return s, diags, nil
}
