package scenario

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/san-kum/dynvec/internal/config"
	"github.com/san-kum/dynvec/internal/dynarray"
)

type StepResult struct {
	Index  int
	Op     string
	Target string
	Output string
	Err    error
}

// NamedArray is the final state of one workspace array.
type NamedArray struct {
	Name     string
	Rendered string
	Values   []float64
}

type Result struct {
	Name    string
	Element string
	Steps   []StepResult
	Arrays  []NamedArray
}

// Failed returns the number of steps that ended in a container error.
func (r *Result) Failed() int {
	n := 0
	for _, s := range r.Steps {
		if s.Err != nil {
			n++
		}
	}
	return n
}

// Array returns the final state of the named array.
func (r *Result) Array(name string) (NamedArray, bool) {
	for _, a := range r.Arrays {
		if a.Name == name {
			return a, true
		}
	}
	return NamedArray{}, false
}

type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

func New(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{cfg: cfg, logger: logger}
}

func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if r.cfg == nil {
		return nil, fmt.Errorf("scenario: no config")
	}
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	switch r.cfg.Element {
	case config.ElementFloat:
		return run[float64](ctx, r.cfg, r.logger)
	default:
		return run[int64](ctx, r.cfg, r.logger)
	}
}

func run[T dynarray.Number](ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	element := cfg.Element
	if element == "" {
		element = config.DefaultElement
	}
	logger = logger.With("scenario", cfg.Name, "element", element)

	reg := NewRegistry[T]()
	ws := NewWorkspace[T](cfg.Arrays)
	res := &Result{Name: cfg.Name, Element: element}

	for i, step := range cfg.Steps {
		if err := ctx.Err(); err != nil {
			return nil, &StepError{Index: i, Op: step.Op, Wrapped: err}
		}

		h, err := reg.Get(step.Op)
		if err != nil {
			return nil, &StepError{Index: i, Op: step.Op, Wrapped: err}
		}

		target, out, err := h(ws, step)
		sr := StepResult{Index: i, Op: step.Op, Target: target, Output: out}
		if err != nil {
			if !IsContainerError(err) {
				return nil, &StepError{Index: i, Op: step.Op, Wrapped: err}
			}
			sr.Err = err
			logger.Debug("step failed", "step", i, "op", step.Op, "target", target, "err", err)
		} else {
			logger.Debug("step done", "step", i, "op", step.Op, "target", target)
		}
		res.Steps = append(res.Steps, sr)
	}

	for _, name := range ws.Names() {
		a, _ := ws.Get(name)
		vals := make([]float64, 0, a.Len())
		for v := range a.Values() {
			vals = append(vals, float64(v))
		}
		res.Arrays = append(res.Arrays, NamedArray{Name: name, Rendered: a.String(), Values: vals})
	}

	logger.Info("scenario finished", "steps", len(res.Steps), "failed", res.Failed())
	return res, nil
}
