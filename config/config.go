// SPDX-License-Identifier: MIT

// Package config loads and validates the run configuration of matverify.
//
// Values are merged with priority flags > environment > file > defaults; the
// CLI applies flags on top of the result of Load before calling Validate.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/LoKe112/Paral-1/grid"
	"github.com/LoKe112/Paral-1/internal/textio"
	"github.com/LoKe112/Paral-1/matrix"
)

// Environment overrides.
const (
	EnvTolerance = "MATVERIFY_TOLERANCE"
	EnvWorkers   = "MATVERIFY_WORKERS"
	EnvOutput    = "MATVERIFY_OUTPUT"
)

// Defaults.
const (
	DefaultOutput = "verification_report.txt"
	DefaultKind   = "float"
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrBadValues marks an axis value list or range that cannot be parsed.
	ErrBadValues = errors.New("config: bad axis values")
)

var validate = validator.New()

// Config is the full description of one verification run.
type Config struct {
	// Tolerance has no default: every run states it explicitly.
	Tolerance *float64     `yaml:"tolerance" validate:"required"`
	Workers   int          `yaml:"workers" validate:"gte=1,lte=1024"`
	Kind      string       `yaml:"kind" validate:"oneof=integer float"`
	ShapeAxis string       `yaml:"shape_axis" validate:"required"`
	Grouping  *bool        `yaml:"grouping,omitempty"`
	Axes      []AxisConfig `yaml:"axes" validate:"required,min=1,dive"`
	Scheme    SchemeConfig `yaml:"scheme"`
	Output    string       `yaml:"output" validate:"required"`
	Table     string       `yaml:"table,omitempty"`
	Metrics   string       `yaml:"metrics,omitempty"`
}

// AxisConfig is one grid axis. Values lists coordinates; Range is the
// shorthand "lo..hi" (inclusive). At most one of the two is set; neither
// means an empty axis.
type AxisConfig struct {
	Name   string `yaml:"name" validate:"required"`
	Values []int  `yaml:"values,omitempty"`
	Range  string `yaml:"range,omitempty"`
}

// SchemeConfig selects a built-in naming scheme by Name or spells out the
// A/B/C patterns.
type SchemeConfig struct {
	Name         string `yaml:"name,omitempty" validate:"omitempty,oneof=thread-size-trial size-trial size-pair"`
	Root         string `yaml:"root,omitempty"`
	ResultPrefix string `yaml:"result_prefix,omitempty"`
	A            string `yaml:"a,omitempty"`
	B            string `yaml:"b,omitempty"`
	C            string `yaml:"c,omitempty"`
}

// Default returns a configuration with every optional field set. Axes and
// Tolerance are left empty.
func Default() Config {
	return Config{
		Workers:   grid.DefaultWorkers,
		Kind:      DefaultKind,
		ShapeAxis: grid.DefaultShapeAxis,
		Scheme:    SchemeConfig{Name: grid.SchemeThreadSizeTrial, Root: "output"},
		Output:    DefaultOutput,
	}
}

// Load merges the YAML file at path (optional, "" skips it) and environment
// overrides onto Default. The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	r, err := textio.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv(EnvTolerance); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTolerance, err)
		}
		cfg.Tolerance = &f
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		cfg.Workers = n
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.Output = v
	}
	return nil
}

// Validate checks struct tags and the cross-field rules tags cannot express.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := matrix.ValidateTolerance(*c.Tolerance); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	seen := make(map[string]bool, len(c.Axes))
	for _, ax := range c.Axes {
		if seen[ax.Name] {
			return fmt.Errorf("%w: duplicate axis %q", ErrInvalid, ax.Name)
		}
		seen[ax.Name] = true
		if ax.Range != "" && len(ax.Values) > 0 {
			return fmt.Errorf("%w: axis %q sets both values and range", ErrInvalid, ax.Name)
		}
		if _, err := ax.Resolve(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	if !seen[c.ShapeAxis] {
		return fmt.Errorf("%w: shape axis %q is not among the axes", ErrInvalid, c.ShapeAxis)
	}

	s := c.Scheme
	custom := s.A != "" || s.B != "" || s.C != ""
	switch {
	case s.Name != "" && custom:
		return fmt.Errorf("%w: scheme sets both a name and patterns", ErrInvalid)
	case s.Name == "" && (s.A == "" || s.B == "" || s.C == ""):
		return fmt.Errorf("%w: scheme needs a name or all of a, b, c", ErrInvalid)
	}
	return nil
}

// Resolve returns the axis as a grid.Axis.
func (a AxisConfig) Resolve() (grid.Axis, error) {
	values := a.Values
	if a.Range != "" {
		v, err := ParseValues(a.Range)
		if err != nil {
			return grid.Axis{}, fmt.Errorf("axis %q: %w", a.Name, err)
		}
		values = v
	}
	return grid.Axis{Name: a.Name, Values: append([]int(nil), values...)}, nil
}

// GridAxes converts every configured axis.
func (c Config) GridAxes() ([]grid.Axis, error) {
	out := make([]grid.Axis, 0, len(c.Axes))
	for _, a := range c.Axes {
		ax, err := a.Resolve()
		if err != nil {
			return nil, err
		}
		out = append(out, ax)
	}
	return out, nil
}

// NamingScheme builds the configured scheme.
func (c Config) NamingScheme() (grid.NamingScheme, error) {
	s := c.Scheme
	if s.Name == "" {
		return grid.PatternScheme{Root: s.Root, A: s.A, B: s.B, C: s.C}, nil
	}
	if s.Name == grid.SchemeSizePair {
		return grid.SizePairScheme(s.Root, s.ResultPrefix), nil
	}
	return grid.SchemeByName(s.Name, s.Root)
}

// MatrixKind maps Kind to matrix.Kind.
func (c Config) MatrixKind() matrix.Kind {
	if c.Kind == "integer" {
		return matrix.KindInteger
	}
	return matrix.KindFloat
}

// ParseValues parses "1,2,4,8", "1..5" or a mix such as "1,4..6".
// The empty string is an empty list.
func ParseValues(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "..")
		if !isRange {
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadValues, part)
			}
			out = append(out, n)
			continue
		}
		a, errA := strconv.Atoi(strings.TrimSpace(lo))
		b, errB := strconv.Atoi(strings.TrimSpace(hi))
		if errA != nil || errB != nil || a > b {
			return nil, fmt.Errorf("%w: range %q", ErrBadValues, part)
		}
		for v := a; v <= b; v++ {
			out = append(out, v)
		}
	}
	return out, nil
}

// ParseAxisFlag parses the CLI form "name=values", e.g. "threads=1,2,4".
func ParseAxisFlag(s string) (AxisConfig, error) {
	name, values, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return AxisConfig{}, fmt.Errorf("%w: want name=values, got %q", ErrBadValues, s)
	}
	v, err := ParseValues(values)
	if err != nil {
		return AxisConfig{}, fmt.Errorf("axis %q: %w", name, err)
	}
	return AxisConfig{Name: name, Values: v}, nil
}
