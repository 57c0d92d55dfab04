// Package retry provides a backoff policy engine and retry executors for
// single-use effects.
//
// A [Policy] is an immutable description of how long to wait between attempts:
// a backoff curve (constant, linear, exponential, or Fibonacci), an optional
// retry bound, an optional delay cap, and a jitter mode. Delay computation is
// a pure function of the policy and the attempt number, so policies are cheap
// to copy and safe to share across goroutines.
//
// # Bounds
//
// A policy must carry at least one of a max-retry count or a max-delay cap.
// An unbounded policy is a construction error: [Policy.Validate] reports
// [ErrUnbounded], and the executors enforce validation before the first
// attempt.
//
// # Executors
//
// The executors drive an [effect.Factory], constructing a fresh effect per
// attempt:
//
//   - [Do] retries every failure until the policy is exhausted and reports
//     attempt/elapsed provenance on both exits ([Exhausted] on success,
//     [ExhaustedError] on failure).
//
//   - [DoIf] consults a classifier first; an error that does not match
//     returns immediately, raw and unwrapped.
//
//   - [DoWithHooks] invokes an observer with a [Event] after every failed
//     attempt, before sleeping.
//
// Attempts are strictly sequential; there are no speculative concurrent
// attempts. The backoff sleep honors context cancellation.
//
// # Timeout
//
// [WithTimeout] races one effect execution against a deadline and reports
// [TimeoutError] when the deadline wins, keeping "ran out of time" distinct
// from "failed within time". Combining a per-attempt [WithTimeout] with an
// outer retry loop (see [Executor]) is the supported way to bound total
// wall-clock time.
//
// # Usage
//
//	policy := retry.Exponential(100 * time.Millisecond).
//	    WithMaxRetries(5).
//	    WithMaxDelay(2 * time.Second).
//	    WithJitter(retry.FullJitter())
//
//	out, err := retry.Do(ctx, deps, fetchEffect, policy)
//	if err == nil {
//	    log.Printf("succeeded after %d attempts", out.Attempts)
//	}
package retry
