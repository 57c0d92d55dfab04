package retry

import (
	"context"
	"time"

	"github.com/jonwraymond/effectops/effect"
)

// Exhausted is the terminal success of a retry loop. It is symmetric with
// ExhaustedError: both exits report how many attempts were made and how long
// the loop ran.
type Exhausted[T any] struct {
	// Value is the successful result.
	Value T

	// Attempts is the total number of attempts made, including the initial
	// one (1-indexed, human-facing).
	Attempts uint32

	// Elapsed is the time since the first attempt started.
	Elapsed time.Duration
}

// Event describes one failed attempt. It is handed to an on-retry hook
// immediately after the failure, before the backoff sleep, and is valid only
// for the duration of the callback; hooks must not retain it.
type Event struct {
	// Attempt is the 1-indexed number of the attempt that just failed.
	Attempt uint32

	// Err is the error the attempt produced.
	Err error

	// NextDelay is how long the loop will sleep before the next attempt.
	// Meaningful only when WillRetry is true.
	NextDelay time.Duration

	// WillRetry is false when the loop is about to exhaust.
	WillRetry bool

	// Elapsed is the time since the first attempt started.
	Elapsed time.Duration
}

// Do drives factory until an attempt succeeds or the policy is exhausted.
//
// Each attempt consumes one fresh effect from the factory. Attempts are
// strictly sequential: attempt n+1 never starts before attempt n has fully
// completed. On success Do returns an Exhausted carrying the value and the
// attempt provenance; on exhaustion it returns a *ExhaustedError wrapping the
// last error. A context cancellation during the backoff sleep aborts the loop
// with ctx.Err().
func Do[Env, T any](ctx context.Context, env Env, factory effect.Factory[Env, T], policy Policy, opts ...Option) (Exhausted[T], error) {
	return DoWithHooks(ctx, env, factory, policy, nil, opts...)
}

// DoWithHooks behaves like Do and additionally invokes onRetry synchronously
// after every failed attempt, before sleeping. The hook observes the attempt
// number, the error, the computed next delay, and the elapsed time; it has no
// effect on control flow and must not block the loop.
func DoWithHooks[Env, T any](ctx context.Context, env Env, factory effect.Factory[Env, T], policy Policy, onRetry func(Event), opts ...Option) (Exhausted[T], error) {
	var zero Exhausted[T]
	if err := policy.Validate(); err != nil {
		return zero, err
	}

	o := newOptions(opts)
	start := o.clock.Now()
	var prev time.Duration

	for attempt := uint32(0); ; attempt++ {
		v, err := factory().Run(ctx, env)
		elapsed := o.clock.Now().Sub(start)
		if err == nil {
			return Exhausted[T]{Value: v, Attempts: attempt + 1, Elapsed: elapsed}, nil
		}

		delay, ok := policy.DelayWithJitter(attempt, prev)
		if onRetry != nil {
			onRetry(Event{
				Attempt:   attempt + 1,
				Err:       err,
				NextDelay: delay,
				WillRetry: ok,
				Elapsed:   elapsed,
			})
		}
		if !ok {
			return zero, &ExhaustedError{Err: err, Attempts: attempt + 1, Elapsed: elapsed}
		}

		if serr := o.clock.Sleep(ctx, delay); serr != nil {
			return zero, serr
		}
		prev = delay
	}
}

// DoIf behaves like Do but consults shouldRetry before the policy: an error
// that does not match returns immediately, raw and unwrapped, with no delay
// and no further attempts. Exhaustion of matching errors still reports a
// *ExhaustedError, which unwraps to the domain error.
func DoIf[Env, T any](ctx context.Context, env Env, factory effect.Factory[Env, T], policy Policy, shouldRetry func(error) bool, opts ...Option) (T, error) {
	var zero T
	if err := policy.Validate(); err != nil {
		return zero, err
	}
	if shouldRetry == nil {
		shouldRetry = func(error) bool { return true }
	}

	o := newOptions(opts)
	start := o.clock.Now()
	var prev time.Duration

	for attempt := uint32(0); ; attempt++ {
		v, err := factory().Run(ctx, env)
		if err == nil {
			return v, nil
		}
		if !shouldRetry(err) {
			return zero, err
		}

		delay, ok := policy.DelayWithJitter(attempt, prev)
		if !ok {
			return zero, &ExhaustedError{
				Err:      err,
				Attempts: attempt + 1,
				Elapsed:  o.clock.Now().Sub(start),
			}
		}

		if serr := o.clock.Sleep(ctx, delay); serr != nil {
			return zero, serr
		}
		prev = delay
	}
}
