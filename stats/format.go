// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format identifies one of the supported benchmark log layouts.
type Format int

const (
	// FormatColon is "<size> : <time><unit>", e.g. "500 : 1234.5 ms".
	FormatColon Format = iota
	// FormatWhitespace is "<size> <time><unit> ...", e.g. "500 1234.5ms".
	// Tokens after the time are ignored.
	FormatWhitespace
	// FormatTable is a pipe table "<size> | <t1> | <t2> | ...". The time
	// column is picked with WithColumn; header lines are dropped with
	// WithSkipLines.
	FormatTable
)

// Names accepted by ParseFormat.
const (
	nameColon      = "colon"
	nameWhitespace = "whitespace"
	nameTable      = "table"
)

var (
	// ErrMalformedLine marks a line that does not match the format.
	ErrMalformedLine = errors.New("stats: malformed line")

	// ErrLineTooLong marks a line longer than MaxLineBytes.
	ErrLineTooLong = errors.New("stats: line too long")

	// ErrUnknownFormat is returned by ParseFormat.
	ErrUnknownFormat = errors.New("stats: unknown format")
)

func (f Format) String() string {
	switch f {
	case FormatColon:
		return nameColon
	case FormatWhitespace:
		return nameWhitespace
	case FormatTable:
		return nameTable
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "colon", "whitespace" and "table" to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case nameColon:
		return FormatColon, nil
	case nameWhitespace:
		return FormatWhitespace, nil
	case nameTable:
		return FormatTable, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// lineParser turns one non-blank line into a sample.
type lineParser func(line string, o *options) (Sample, error)

func (f Format) parser() (lineParser, error) {
	switch f {
	case FormatColon:
		return parseColon, nil
	case FormatWhitespace:
		return parseWhitespace, nil
	case FormatTable:
		return parseTable, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

func parseColon(line string, o *options) (Sample, error) {
	size, rest, ok := strings.Cut(line, ":")
	if !ok {
		return Sample{}, errors.New("missing ':' separator")
	}
	return sample(size, rest, o)
}

func parseWhitespace(line string, o *options) (Sample, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Sample{}, fmt.Errorf("want at least 2 fields, got %d", len(fields))
	}
	return sample(fields[0], fields[1], o)
}

func parseTable(line string, o *options) (Sample, error) {
	cells := strings.Split(line, "|")
	if len(cells) <= o.column {
		return Sample{}, fmt.Errorf("want at least %d columns, got %d", o.column+1, len(cells))
	}
	return sample(cells[0], cells[o.column], o)
}

func sample(sizeText, timeText string, o *options) (Sample, error) {
	size, err := strconv.Atoi(strings.TrimSpace(sizeText))
	if err != nil {
		return Sample{}, fmt.Errorf("size: %w", err)
	}
	if size <= 0 {
		return Sample{}, fmt.Errorf("size %d must be positive", size)
	}

	timeText = strings.TrimSpace(timeText)
	timeText = strings.TrimSpace(strings.TrimSuffix(timeText, o.unit.Suffix()))
	t, err := strconv.ParseFloat(timeText, 64)
	if err != nil {
		return Sample{}, fmt.Errorf("time: %w", err)
	}
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return Sample{}, fmt.Errorf("time %v must be finite and non-negative", t)
	}
	return Sample{Size: size, Time: t}, nil
}
