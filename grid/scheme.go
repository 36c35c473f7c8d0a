// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// NamingScheme maps a cell to the paths of its operand files A and B and of
// the candidate result C. A returned error marks only that cell as errored.
type NamingScheme interface {
	Paths(c Cell) (a, b, res string, err error)
}

// SchemeFunc adapts a plain function to NamingScheme.
type SchemeFunc func(c Cell) (a, b, res string, err error)

// Paths calls f(c).
func (f SchemeFunc) Paths(c Cell) (a, b, res string, err error) { return f(c) }

// PatternScheme resolves paths from templates holding {axis} placeholders,
// e.g. "{root}/size_{size}/A_{trial}.txt". {root} expands to Root ("." when
// empty); every other placeholder must name an axis of the cell.
type PatternScheme struct {
	Root    string
	A, B, C string
}

// WithRoot returns a copy of p with Root set.
func (p PatternScheme) WithRoot(root string) PatternScheme {
	p.Root = root
	return p
}

// Paths implements NamingScheme.
func (p PatternScheme) Paths(c Cell) (a, b, res string, err error) {
	if a, err = p.expand(p.A, c); err != nil {
		return "", "", "", fmt.Errorf("pattern A: %w", err)
	}
	if b, err = p.expand(p.B, c); err != nil {
		return "", "", "", fmt.Errorf("pattern B: %w", err)
	}
	if res, err = p.expand(p.C, c); err != nil {
		return "", "", "", fmt.Errorf("pattern C: %w", err)
	}
	return a, b, res, nil
}

func (p PatternScheme) expand(pattern string, c Cell) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("%w: empty pattern", ErrBadPattern)
	}
	var b strings.Builder
	rest := pattern
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("%w: unterminated placeholder in %q", ErrBadPattern, pattern)
		}
		name := rest[open+1 : open+end]
		b.WriteString(rest[:open])
		switch {
		case name == "":
			return "", fmt.Errorf("%w: empty placeholder in %q", ErrBadPattern, pattern)
		case name == "root":
			root := p.Root
			if root == "" {
				root = "."
			}
			b.WriteString(root)
		default:
			v, ok := c.Value(name)
			if !ok {
				return "", fmt.Errorf("%w: {%s} in %q", ErrUnknownPlaceholder, name, pattern)
			}
			b.WriteString(strconv.Itoa(v))
		}
		rest = rest[open+end+1:]
	}
	return filepath.Clean(filepath.FromSlash(b.String())), nil
}

// Built-in scheme names accepted by SchemeByName.
const (
	SchemeThreadSizeTrial = "thread-size-trial"
	SchemeSizeTrial       = "size-trial"
	SchemeSizePair        = "size-pair"

	// DefaultResultPrefix names candidate files of the size-pair layout.
	DefaultResultPrefix = "result_"
)

// ThreadSizeTrialScheme is the layout of per-thread-count benchmark runs:
// root/results_{threads}_threads/size_{size}/{A,B,C}_{trial}.txt.
func ThreadSizeTrialScheme(root string) PatternScheme {
	dir := "{root}/results_{threads}_threads/size_{size}/"
	return PatternScheme{
		Root: root,
		A:    dir + "A_{trial}.txt",
		B:    dir + "B_{trial}.txt",
		C:    dir + "C_{trial}.txt",
	}
}

// SizeTrialScheme is root/{size}/{A,B,C}_{trial}.txt.
func SizeTrialScheme(root string) PatternScheme {
	return PatternScheme{
		Root: root,
		A:    "{root}/{size}/A_{trial}.txt",
		B:    "{root}/{size}/B_{trial}.txt",
		C:    "{root}/{size}/C_{trial}.txt",
	}
}

// SizePairScheme is root/{size}_1.txt, root/{size}_2.txt and
// root/<resultPrefix>{size}.txt. An empty prefix means DefaultResultPrefix.
func SizePairScheme(root, resultPrefix string) PatternScheme {
	if resultPrefix == "" {
		resultPrefix = DefaultResultPrefix
	}
	return PatternScheme{
		Root: root,
		A:    "{root}/{size}_1.txt",
		B:    "{root}/{size}_2.txt",
		C:    "{root}/" + resultPrefix + "{size}.txt",
	}
}

// SchemeByName returns the built-in scheme registered under name.
func SchemeByName(name, root string) (PatternScheme, error) {
	switch name {
	case SchemeThreadSizeTrial:
		return ThreadSizeTrialScheme(root), nil
	case SchemeSizeTrial:
		return SizeTrialScheme(root), nil
	case SchemeSizePair:
		return SizePairScheme(root, ""), nil
	default:
		return PatternScheme{}, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
}
