// SPDX-License-Identifier: MIT

package grid

import (
	"strconv"
	"strings"
)

// Axis is one dimension of the verification grid, e.g. threads=[1 2 4 8].
// Values are visited in the given order; duplicates are kept.
type Axis struct {
	Name   string
	Values []int
}

// Cell is one point of the Cartesian product of the axes.
type Cell struct {
	// Ordinal is the cell's position in canonical traversal order.
	Ordinal int

	names  []string // shared across cells of one enumeration
	values []int
}

// Value returns the coordinate of the named axis.
func (c Cell) Value(name string) (int, bool) {
	for i, n := range c.names {
		if n == name {
			return c.values[i], true
		}
	}
	return 0, false
}

// Describe renders the coordinates as "name value ..." in axis order,
// omitting the axes listed in skip.
func (c Cell) Describe(skip ...string) string {
	var b strings.Builder
	for i, n := range c.names {
		if contains(skip, n) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n)
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(c.values[i]))
	}
	return b.String()
}

// Enumerate returns the Cartesian product of axes with the first axis
// outermost and the last axis varying fastest. Any empty axis yields an
// empty result.
func Enumerate(axes []Axis) []Cell {
	if len(axes) == 0 {
		return nil
	}
	total := 1
	names := make([]string, len(axes))
	for i, ax := range axes {
		names[i] = ax.Name
		total *= len(ax.Values)
	}
	if total == 0 {
		return nil
	}

	cells := make([]Cell, 0, total)
	idx := make([]int, len(axes))
	for ord := 0; ord < total; ord++ {
		values := make([]int, len(axes))
		for i, ax := range axes {
			values[i] = ax.Values[idx[i]]
		}
		cells = append(cells, Cell{Ordinal: ord, names: names, values: values})

		// odometer step, last axis first
		for i := len(axes) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(axes[i].Values) {
				break
			}
			idx[i] = 0
		}
	}
	return cells
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
