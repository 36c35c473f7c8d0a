// SPDX-License-Identifier: MIT

package grid

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/LoKe112/Paral-1/matrix"
	"github.com/LoKe112/Paral-1/report"
)

// Defaults.
const (
	// DefaultShapeAxis names the axis whose value is the square matrix size.
	DefaultShapeAxis = "size"

	// DefaultWorkers keeps the reference run sequential.
	DefaultWorkers = 1
)

const (
	panicWorkersInvalid = "grid: WithWorkers: n must be >= 1"
	panicShapeAxisEmpty = "grid: WithShapeAxis: name must be non-empty"
)

// Outcome is the per-cell verification result.
type Outcome = report.Outcome

// SectionLabelFunc renders the section header for one value of the
// grouping axis.
type SectionLabelFunc func(ax Axis, value int) string

// DefaultSectionLabel renders "Verification for <value> <axis>".
func DefaultSectionLabel(ax Axis, value int) string {
	return fmt.Sprintf("Verification for %d %s", value, ax.Name)
}

// Option configures a Runner. Constructors panic only on nonsensical values.
type Option func(*Runner)

// WithShapeAxis sets the axis whose value gives the size×size shape.
func WithShapeAxis(name string) Option {
	if name == "" {
		panic(panicShapeAxisEmpty)
	}
	return func(r *Runner) { r.shapeAxis = name }
}

// WithKind sets how operand and candidate tokens are parsed.
func WithKind(k matrix.Kind) Option {
	return func(r *Runner) { r.kind = k }
}

// WithWorkers sets the number of cells verified concurrently.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(r *Runner) { r.workers = n }
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics attaches run metrics.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithSectionLabel overrides DefaultSectionLabel.
func WithSectionLabel(fn SectionLabelFunc) Option {
	return func(r *Runner) {
		if fn != nil {
			r.label = fn
		}
	}
}

// WithGrouping forces grouping by the outermost axis on or off. Without it,
// grouping is on whenever there are at least two axes.
func WithGrouping(on bool) Option {
	return func(r *Runner) { r.grouping = &on }
}

// Runner verifies every cell of a grid and records outcomes in canonical
// order. A Runner holds no per-run state and may be reused.
type Runner struct {
	shapeAxis string
	kind      matrix.Kind
	workers   int
	log       *slog.Logger
	metrics   *Metrics
	label     SectionLabelFunc
	grouping  *bool
}

// NewRunner returns a Runner with defaults: shape axis "size", float
// parsing, one worker, slog.Default().
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		shapeAxis: DefaultShapeAxis,
		kind:      matrix.KindFloat,
		workers:   DefaultWorkers,
		log:       slog.Default(),
		label:     DefaultSectionLabel,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run enumerates the Cartesian product of axes (first axis outermost),
// verifies each cell against scheme's files with tolerance tol, and appends
// one outcome per cell to acc.
//
// Errors returned here are input-validation failures detected before any
// cell runs, or an accumulator failure. A cell that cannot be verified is
// recorded as errored and the run continues. When ctx is cancelled, cells
// not yet started are recorded as errored with the context error.
func (r *Runner) Run(ctx context.Context, axes []Axis, scheme NamingScheme, tol float64, acc *report.Accumulator) error {
	if err := r.validate(axes, scheme, tol, acc); err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	cells := Enumerate(axes)
	r.log.Info("grid run started",
		"cells", len(cells),
		"axes", len(axes),
		"workers", r.workers,
		"tolerance", tol)

	outcomes := r.verifyAll(ctx, cells, scheme, tol)

	grouped := r.grouped(axes)
	var skip []string
	if grouped {
		skip = []string{axes[0].Name}
	}
	record := func(c Cell) error {
		return acc.Record(c.Describe(skip...), outcomes[c.Ordinal])
	}

	if !grouped {
		for _, c := range cells {
			if err := record(c); err != nil {
				return fmt.Errorf("Run: %w", err)
			}
		}
	} else {
		inner := len(cells) / max(len(axes[0].Values), 1)
		for i, v := range axes[0].Values {
			if err := acc.BeginSection(r.label(axes[0], v)); err != nil {
				return fmt.Errorf("Run: %w", err)
			}
			for _, c := range cells[i*inner : (i+1)*inner] {
				if err := record(c); err != nil {
					return fmt.Errorf("Run: %w", err)
				}
			}
		}
	}

	counts := acc.Counts()
	r.log.Info("grid run finished",
		"matched", counts.Matched,
		"mismatched", counts.Mismatched,
		"errored", counts.Errored)
	return nil
}

func (r *Runner) validate(axes []Axis, scheme NamingScheme, tol float64, acc *report.Accumulator) error {
	if len(axes) == 0 {
		return ErrNoAxes
	}
	seen := make(map[string]struct{}, len(axes))
	for _, ax := range axes {
		if _, dup := seen[ax.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateAxis, ax.Name)
		}
		seen[ax.Name] = struct{}{}
	}
	if _, ok := seen[r.shapeAxis]; !ok {
		return fmt.Errorf("%w: %q", ErrMissingShapeAxis, r.shapeAxis)
	}
	if scheme == nil {
		return ErrNilScheme
	}
	if acc == nil {
		return ErrNilAccumulator
	}
	return matrix.ValidateTolerance(tol)
}

func (r *Runner) grouped(axes []Axis) bool {
	if r.grouping != nil {
		return *r.grouping
	}
	return len(axes) >= 2
}

// verifyAll fills one slot per cell, indexed by ordinal.
func (r *Runner) verifyAll(ctx context.Context, cells []Cell, scheme NamingScheme, tol float64) []Outcome {
	slots := make([]Outcome, len(cells))
	if r.workers <= 1 {
		for _, c := range cells {
			if err := ctx.Err(); err != nil {
				slots[c.Ordinal] = report.Errored(err)
				continue
			}
			slots[c.Ordinal] = r.verifyCell(c, scheme, tol)
		}
		return slots
	}

	var g errgroup.Group
	g.SetLimit(r.workers)
	for _, c := range cells {
		if err := ctx.Err(); err != nil {
			slots[c.Ordinal] = report.Errored(err)
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				slots[c.Ordinal] = report.Errored(err)
				return nil
			}
			slots[c.Ordinal] = r.verifyCell(c, scheme, tol)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors
	return slots
}

// verifyCell loads A, B and C, multiplies A·B and compares it with C.
// Every failure becomes an errored outcome.
func (r *Runner) verifyCell(c Cell, scheme NamingScheme, tol float64) Outcome {
	start := time.Now()
	o := r.check(c, scheme, tol)
	elapsed := time.Since(start)
	r.metrics.observe(o, elapsed)

	desc := c.Describe()
	switch o.Status {
	case report.StatusErrored:
		r.log.Warn("cell errored", "cell", desc, "err", o.Err)
	case report.StatusMismatched:
		r.log.Warn("cell mismatched", "cell", desc, "max_abs_diff", o.MaxAbsDiff)
	default:
		r.log.Debug("cell matched", "cell", desc, "max_abs_diff", o.MaxAbsDiff, "elapsed", elapsed)
	}
	return o
}

func (r *Runner) check(c Cell, scheme NamingScheme, tol float64) Outcome {
	pa, pb, pc, err := scheme.Paths(c)
	if err != nil {
		return report.Errored(fmt.Errorf("resolve paths: %w", err))
	}
	n, _ := c.Value(r.shapeAxis)

	a, err := matrix.Load(pa, n, n, r.kind)
	if err != nil {
		return report.Errored(err)
	}
	b, err := matrix.Load(pb, n, n, r.kind)
	if err != nil {
		return report.Errored(err)
	}
	cand, err := matrix.Load(pc, n, n, r.kind)
	if err != nil {
		return report.Errored(err)
	}

	ref, err := matrix.Mul(a, b)
	if err != nil {
		return report.Errored(err)
	}
	ok, diff, err := matrix.Compare(ref, cand, tol)
	if err != nil {
		return report.Errored(err)
	}
	if !ok {
		return report.Mismatched(diff)
	}
	return report.Matched(diff)
}
