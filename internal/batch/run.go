package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/roach88/romano/internal/measure"
	"github.com/roach88/romano/internal/numeral"
	"github.com/roach88/romano/internal/render"
)

// Runner executes batch files against a unit registry.
type Runner struct {
	registry  *measure.Registry
	precision int
	logger    *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger for per-step debug output. The default discards logs.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithPrecision sets the decimals used to render values (see render.Float).
func WithPrecision(precision int) Option {
	return func(r *Runner) {
		r.precision = precision
	}
}

// NewRunner creates a runner using reg for conversions.
func NewRunner(reg *measure.Registry, opts ...Option) *Runner {
	r := &Runner{
		registry:  reg,
		precision: -1,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every step of f in order. A step failure is recorded in the
// report, not returned; Run only returns an error when ctx is done.
func (r *Runner) Run(ctx context.Context, f *File) (*Report, error) {
	report := &Report{Name: f.Name, Steps: make([]StepResult, 0, len(f.Steps))}

	for i, step := range f.Steps {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("batch %s: stopped before step %d: %w", f.Name, i+1, err)
		}

		res := r.runStep(step)
		res.Index = i + 1
		res.Mismatch = check(step.Expect, res)
		res.Pass = res.Mismatch == ""

		if res.Pass {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Steps = append(report.Steps, res)

		r.logger.Debug("batch step",
			"batch", f.Name,
			"step", res.Index,
			"op", res.Op,
			"input", res.Input,
			"output", res.Output,
			"error_code", res.ErrorCode,
			"pass", res.Pass,
		)
	}

	return report, nil
}

func (r *Runner) runStep(s Step) StepResult {
	res := StepResult{Op: s.Op}

	switch s.Op {
	case OpDecode:
		text := numeral.Normalize(s.Input)
		res.Input = text
		v, err := numeral.Decode(text)
		if err != nil {
			res.ErrorCode = render.ErrorCode(err)
			res.Error = err.Error()
			return res
		}
		res.Value = v
		res.Output = render.Float(v, r.precision)

	case OpEncode:
		res.Input = render.Float(*s.Value, -1)
		n, err := numeral.FromFloat(*s.Value)
		if err != nil {
			res.ErrorCode = render.ErrorCode(err)
			res.Error = err.Error()
			return res
		}
		res.Value = n.Value()
		res.Numeral = n.String()
		res.Output = numeral.Display(n)

	case OpConvert:
		from := measure.NormalizeName(s.From)
		to := measure.NormalizeName(s.To)
		res.Input = fmt.Sprintf("%s %s %s", render.Float(*s.Amount, -1), from, to)
		q, err := r.registry.Convert(*s.Amount, from, to)
		if err != nil {
			res.ErrorCode = render.ErrorCode(err)
			res.Error = err.Error()
			return res
		}
		res.Value = q.Value
		res.Unit = q.Unit
		res.Output = render.Float(q.Value, r.precision) + " " + q.Unit
	}

	return res
}

// check returns "" when res satisfies exp, else a description of the first mismatch.
func check(exp *Expect, res StepResult) string {
	if exp == nil || exp.Error == "" {
		if res.ErrorCode != "" {
			return "unexpected error " + res.ErrorCode
		}
	}
	if exp == nil {
		return ""
	}

	if exp.Error != "" {
		if res.ErrorCode != exp.Error {
			got := res.ErrorCode
			if got == "" {
				got = "success"
			}
			return fmt.Sprintf("expected error %s, got %s", exp.Error, got)
		}
		return ""
	}

	if exp.Numeral != nil {
		want := *exp.Numeral
		if want == numeral.Zero {
			want = ""
		}
		if res.Numeral != want {
			return fmt.Sprintf("expected numeral %q, got %q", *exp.Numeral, res.Numeral)
		}
	}

	if exp.Value != nil && math.Abs(res.Value-*exp.Value) > exp.Tolerance {
		return fmt.Sprintf("expected value %s, got %s", render.Float(*exp.Value, -1), render.Float(res.Value, -1))
	}

	if exp.Unit != "" && res.Unit != exp.Unit {
		return fmt.Sprintf("expected unit %q, got %q", exp.Unit, res.Unit)
	}

	return ""
}
