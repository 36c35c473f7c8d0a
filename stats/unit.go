// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
)

// ErrUnknownUnit is returned by ParseUnit.
var ErrUnknownUnit = errors.New("stats: unknown time unit")

// Unit is the time unit of a Series. The zero value is Millisecond, the unit
// every benchmark writer in use emits.
type Unit int

const (
	Millisecond Unit = iota
	Microsecond
	Second
)

// micros is the length of one unit in microseconds.
func (u Unit) micros() float64 {
	switch u {
	case Microsecond:
		return 1
	case Second:
		return 1e6
	default:
		return 1e3
	}
}

// Suffix is the unit token stripped from time fields ("us", "ms", "s").
func (u Unit) Suffix() string {
	switch u {
	case Microsecond:
		return "us"
	case Second:
		return "s"
	default:
		return "ms"
	}
}

func (u Unit) String() string { return u.Suffix() }

// ParseUnit maps "us"/"µs", "ms" and "s" to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "us", "µs":
		return Microsecond, nil
	case "ms":
		return Millisecond, nil
	case "s":
		return Second, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// In returns a copy of s with every time converted to u.
func (s Series) In(u Unit) Series {
	out := Series{Unit: u, Samples: make([]Sample, len(s.Samples))}
	from, to := s.Unit.micros(), u.micros()
	for i, p := range s.Samples {
		t := p.Time
		if from != to {
			t = t * from / to
		}
		out.Samples[i] = Sample{Size: p.Size, Time: t}
	}
	return out
}
