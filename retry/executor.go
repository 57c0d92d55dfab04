package retry

import (
	"context"
	"time"

	"github.com/jonwraymond/effectops/effect"
)

// Executor composes a per-attempt timeout with a retry policy and hooks
// around an effect factory. This is the supported way to bound total
// wall-clock time: the timeout caps each attempt, the policy's retry bound
// caps the attempt count.
type Executor[Env, T any] struct {
	policy         Policy
	hasPolicy      bool
	attemptTimeout time.Duration
	onRetry        func(Event)
	clock          Clock
}

// ExecutorOption configures an Executor.
type ExecutorOption[Env, T any] func(*Executor[Env, T])

// NewExecutor creates a new executor.
func NewExecutor[Env, T any](opts ...ExecutorOption[Env, T]) *Executor[Env, T] {
	e := &Executor[Env, T]{clock: defaultClock}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithPolicy adds a retry policy to the executor.
func WithPolicy[Env, T any](p Policy) ExecutorOption[Env, T] {
	return func(e *Executor[Env, T]) {
		e.policy = p
		e.hasPolicy = true
	}
}

// WithAttemptTimeout races each individual attempt against d.
func WithAttemptTimeout[Env, T any](d time.Duration) ExecutorOption[Env, T] {
	return func(e *Executor[Env, T]) {
		e.attemptTimeout = d
	}
}

// WithOnRetry adds an observer invoked after every failed attempt.
func WithOnRetry[Env, T any](fn func(Event)) ExecutorOption[Env, T] {
	return func(e *Executor[Env, T]) {
		e.onRetry = fn
	}
}

// WithExecutorClock replaces the wall clock, primarily for tests.
func WithExecutorClock[Env, T any](c Clock) ExecutorOption[Env, T] {
	return func(e *Executor[Env, T]) {
		if c != nil {
			e.clock = c
		}
	}
}

// Execute drives factory through the configured layers.
//
// The attempt timeout wraps each effect the factory produces (innermost);
// the retry loop wraps the timed attempts. Without a policy, exactly one
// attempt is made and its error, if any, is returned raw.
func (e *Executor[Env, T]) Execute(ctx context.Context, env Env, factory effect.Factory[Env, T]) (Exhausted[T], error) {
	f := factory
	if e.attemptTimeout > 0 {
		inner := f
		f = func() *effect.Effect[Env, T] {
			return WithTimeout(inner(), e.attemptTimeout)
		}
	}

	if !e.hasPolicy {
		start := e.clock.Now()
		v, err := f().Run(ctx, env)
		if err != nil {
			return Exhausted[T]{}, err
		}
		return Exhausted[T]{Value: v, Attempts: 1, Elapsed: e.clock.Now().Sub(start)}, nil
	}

	return DoWithHooks(ctx, env, f, e.policy, e.onRetry, WithClock(e.clock))
}
