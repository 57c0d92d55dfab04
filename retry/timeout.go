package retry

import (
	"context"
	"errors"
	"time"

	"github.com/jonwraymond/effectops/effect"
)

// WithTimeout wraps an effect so that its execution races a deadline.
//
// If the inner effect completes first, its outcome passes through unchanged:
// the value on success, the inner error on failure. If the deadline fires
// first, the wrapped effect yields a *TimeoutError and the slow computation
// is abandoned, not awaited further — its context is cancelled, and any
// in-flight side effects up to that point are not rolled back. Callers
// composing WithTimeout with a bracket should keep release logic
// timeout-safe or idempotent, since a timed-out use phase still triggers
// release.
func WithTimeout[Env, T any](e *effect.Effect[Env, T], d time.Duration) *effect.Effect[Env, T] {
	return effect.New(func(ctx context.Context, env Env) (T, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		type outcome struct {
			v   T
			err error
		}
		// Buffered so the abandoned side never blocks on send.
		done := make(chan outcome, 1)

		go func() {
			v, err := e.Run(ctx, env)
			done <- outcome{v: v, err: err}
		}()

		select {
		case out := <-done:
			return out.v, out.err
		case <-ctx.Done():
			var zero T
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return zero, &TimeoutError{Timeout: d}
			}
			return zero, ctx.Err()
		}
	})
}
