package bracket

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonwraymond/effectops/effect"
	"github.com/jonwraymond/effectops/observe"
)

// step is one (acquire, release) pair on the builder's stack.
type step[Env, R any] struct {
	name    string
	acquire *effect.Effect[Env, R]
	release Release[R]
}

// Builder accumulates same-typed resources fluently before a terminal use
// phase. Resources are acquired in the order they were added and released in
// strict LIFO order; every release is attempted even after an earlier
// teardown failure, and the failures are joined rather than short-circuited.
type Builder[Env, R any] struct {
	steps  []step[Env, R]
	logger observe.Logger
}

// NewBuilder starts a builder with its first resource.
func NewBuilder[Env, R any](acquire *effect.Effect[Env, R], release Release[R]) *Builder[Env, R] {
	b := &Builder[Env, R]{}
	return b.And(acquire, release)
}

// And appends one more resource to the stack.
func (b *Builder[Env, R]) And(acquire *effect.Effect[Env, R], release Release[R]) *Builder[Env, R] {
	b.steps = append(b.steps, step[Env, R]{
		name:    fmt.Sprintf("resource-%d", len(b.steps)),
		acquire: acquire,
		release: release,
	})
	return b
}

// Named sets a diagnostic name for the most recently added resource. The
// name appears in cleanup-failure logs; it has no effect on control flow.
func (b *Builder[Env, R]) Named(name string) *Builder[Env, R] {
	if len(b.steps) > 0 && name != "" {
		b.steps[len(b.steps)-1].name = name
	}
	return b
}

// WithLogger attaches a logger for best-effort cleanup diagnostics. Logging
// never replaces the structured error returned to the caller.
func (b *Builder[Env, R]) WithLogger(l observe.Logger) *Builder[Env, R] {
	b.logger = l
	return b
}

// UseAll finishes the builder with a use phase over all accumulated
// resources, in acquisition order, and returns the bracketed effect.
//
// Outcome combination matches Bracket: if every acquisition succeeds, the
// use phase runs and then all resources are released LIFO; use and cleanup
// failures are reported through *Error, with joined cleanup errors when more
// than one release failed. If acquisition fails partway, the already-acquired
// resources are released LIFO and the acquire error is returned raw when
// teardown succeeds; if teardown also fails, both surface through *Error,
// with the acquire error in the use slot.
func UseAll[Env, R, T any](b *Builder[Env, R], use func([]R) *effect.Effect[Env, T]) *effect.Effect[Env, T] {
	return effect.New(func(ctx context.Context, env Env) (T, error) {
		var zero T

		acquired := make([]R, 0, len(b.steps))
		for _, st := range b.steps {
			r, err := st.acquire.Run(ctx, env)
			if err != nil {
				if cleanupErr := b.releaseAll(ctx, acquired); cleanupErr != nil {
					return zero, &Error{UseErr: err, CleanupErr: cleanupErr}
				}
				return zero, err
			}
			acquired = append(acquired, r)
		}

		v, useErr := use(acquired).Run(ctx, env)
		cleanupErr := b.releaseAll(ctx, acquired)

		switch {
		case useErr == nil && cleanupErr == nil:
			return v, nil
		case useErr != nil && cleanupErr == nil:
			return zero, &Error{UseErr: useErr}
		case useErr == nil && cleanupErr != nil:
			return zero, &Error{CleanupErr: cleanupErr}
		default:
			return zero, &Error{UseErr: useErr, CleanupErr: cleanupErr}
		}
	})
}

// releaseAll tears down the acquired prefix of the stack in LIFO order,
// attempting every release and joining the failures.
func (b *Builder[Env, R]) releaseAll(ctx context.Context, acquired []R) error {
	var errs []error
	for i := len(acquired) - 1; i >= 0; i-- {
		if err := b.steps[i].release(ctx, acquired[i]); err != nil {
			if b.logger != nil {
				b.logger.Error(ctx, "resource release failed",
					observe.Field{Key: "resource", Value: b.steps[i].name},
					observe.Field{Key: "error", Value: err.Error()},
				)
			}
			errs = append(errs, fmt.Errorf("release %s: %w", b.steps[i].name, err))
		}
	}
	return errors.Join(errs...)
}
