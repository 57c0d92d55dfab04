package effect

import (
	"context"
	"sync/atomic"
)

// Effect is a deferred, fallible computation parameterized by the environment
// type Env it reads from and the output type T it produces.
//
// Contract:
// - Single-use: Run executes the computation at most once. A second Run
//   returns ErrConsumed, even under concurrent callers.
// - Environment: Env is borrowed read-only for the duration of Run.
// - Context: the computation should honor cancellation/deadlines.
type Effect[Env, T any] struct {
	fn       func(context.Context, Env) (T, error)
	consumed atomic.Bool
}

// New creates an effect from fn. The function is not invoked until Run.
func New[Env, T any](fn func(context.Context, Env) (T, error)) *Effect[Env, T] {
	return &Effect[Env, T]{fn: fn}
}

// Run executes the effect against env, consuming it.
//
// The first call runs the wrapped computation and returns its outcome. Every
// subsequent call returns the zero value and ErrConsumed. The consumed flag
// flips before the computation starts, so a concurrent double-run is detected
// rather than executing twice.
func (e *Effect[Env, T]) Run(ctx context.Context, env Env) (T, error) {
	var zero T
	if e == nil || e.fn == nil {
		return zero, ErrNilEffect
	}
	if !e.consumed.CompareAndSwap(false, true) {
		return zero, ErrConsumed
	}
	return e.fn(ctx, env)
}

// Consumed reports whether the effect has already run.
func (e *Effect[Env, T]) Consumed() bool {
	return e != nil && e.consumed.Load()
}

// Factory produces a fresh effect per call. Retry loops require a factory
// because a single effect instance executes at most once: each attempt
// consumes one effect. Calling a factory must be cheap and side-effect free;
// the side effects belong inside the effect it returns.
type Factory[Env, T any] func() *Effect[Env, T]
