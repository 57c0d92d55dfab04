package retry

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnbounded is returned by Policy.Validate for a policy with neither a
// max-retry count nor a max-delay cap. Unbounded retry is treated as a
// construction error rather than a runtime surprise.
var ErrUnbounded = errors.New("retry: policy has neither max retries nor max delay")

// ExhaustedError is the terminal error of a retry loop: the permitted
// attempts ran out without a success. It carries the last observed error and
// the same provenance the success path reports.
type ExhaustedError struct {
	// Err is the error from the final attempt.
	Err error

	// Attempts is the total number of attempts made, including the initial
	// one (1-indexed, human-facing).
	Attempts uint32

	// Elapsed is the time since the first attempt started.
	Elapsed time.Duration
}

// Error implements the error interface.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("retry: exhausted after %d attempts in %v: %v", e.Attempts, e.Elapsed, e.Err)
}

// Unwrap returns the error from the final attempt, so errors.Is and
// errors.As reach the domain error.
func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

// TimeoutError is returned by a WithTimeout effect when the deadline fires
// before the inner computation completes. An inner failure within the
// deadline passes through unwrapped, so the two cases stay distinguishable.
type TimeoutError struct {
	// Timeout is the deadline the computation was raced against.
	Timeout time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("retry: operation timed out after %v", e.Timeout)
}
