package devicetree

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/depsort/logger"
)

// Applier carries out a single action.
type Applier interface {
	Apply(ctx context.Context, a *Action) error
}

// ApplierFunc adapts a function to Applier.
type ApplierFunc func(ctx context.Context, a *Action) error

func (f ApplierFunc) Apply(ctx context.Context, a *Action) error { return f(ctx, a) }

// DryRunApplier only logs the actions it is given.
type DryRunApplier struct {
	Log *slog.Logger
}

func (d DryRunApplier) Apply(ctx context.Context, a *Action) error {
	l := d.Log
	if l == nil {
		l = logger.From(ctx)
	}
	l.Info("dry run", "action", a.String())

	return nil
}

// Executor applies ordered actions sequentially.
type Executor struct {
	applier Applier
	log     *slog.Logger
}

// NewExecutor returns an Executor using a. A nil logger falls back to the
// logger in the context passed to Execute.
func NewExecutor(a Applier, l *slog.Logger) *Executor {
	return &Executor{applier: a, log: l}
}

// Execute applies actions strictly in the given order. It checks ctx before
// each action and stops at the first failure, returning *ExecutionError.
func (e *Executor) Execute(ctx context.Context, ordered []*Action) error {
	l := e.log
	if l == nil {
		l = logger.From(ctx)
	}

	for i, a := range ordered {
		if err := ctx.Err(); err != nil {
			return &ExecutionError{Action: a, Applied: i, Err: err}
		}
		l.Debug("applying action", "step", i+1, "of", len(ordered), "action", a.String())
		if err := e.applier.Apply(ctx, a); err != nil {
			l.Error("action failed", "action", a.String(), "error", err)
			return &ExecutionError{Action: a, Applied: i, Err: err}
		}
	}
	l.Info("applied storage actions", "count", len(ordered))

	return nil
}
