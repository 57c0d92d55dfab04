package bracket

import (
	"context"

	"github.com/jonwraymond/effectops/effect"
)

// Release frees a resource. It receives the resource by value and consumes
// it: after release the resource must not be used again. Release functions
// should be timeout-safe or idempotent when composed with per-attempt
// timeouts, since a timed-out use phase still triggers release.
type Release[R any] func(context.Context, R) error

// Use borrows an acquired resource and returns the effect for the work
// phase. The resource stays owned by the bracket; the use phase must not
// release it.
type Use[Env, R, T any] func(R) *effect.Effect[Env, T]

// Bracket builds an effect that acquires a resource, runs the use phase
// against it, and always releases the resource afterwards.
//
// If acquire fails, the acquire error propagates directly and release never
// runs. Otherwise release runs exactly once, after the use phase, regardless
// of the use outcome, and the combined result follows the *Error contract:
// use and cleanup failures are reported separately, and in the dual-failure
// case both are preserved.
func Bracket[Env, R, T any](acquire *effect.Effect[Env, R], release Release[R], use Use[Env, R, T]) *effect.Effect[Env, T] {
	return effect.New(func(ctx context.Context, env Env) (T, error) {
		var zero T

		res, err := acquire.Run(ctx, env)
		if err != nil {
			// Nothing was acquired, nothing to clean up.
			return zero, err
		}

		v, useErr := use(res).Run(ctx, env)
		cleanupErr := release(ctx, res)

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
