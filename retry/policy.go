package retry

import (
	"math"
	"time"
)

// strategyKind selects the backoff curve.
type strategyKind int

const (
	strategyConstant strategyKind = iota
	strategyLinear
	strategyExponential
	strategyFibonacci
)

func (k strategyKind) String() string {
	switch k {
	case strategyConstant:
		return "constant"
	case strategyLinear:
		return "linear"
	case strategyExponential:
		return "exponential"
	case strategyFibonacci:
		return "fibonacci"
	default:
		return "unknown"
	}
}

// Policy is an immutable backoff configuration. Construct one with a strategy
// constructor (Constant, Linear, Exponential, Fibonacci) and refine it with
// the chained With* setters; each setter returns a new value, so policies can
// be shared and reused across attempts and goroutines without synchronization.
//
// A policy is valid only when at least one of the retry bound or the delay
// cap is set; see Validate.
type Policy struct {
	kind strategyKind
	base time.Duration

	maxRetries    uint32
	hasMaxRetries bool

	maxDelay time.Duration // 0 means uncapped

	jitter Jitter
}

// Constant returns a policy that waits d between every attempt.
func Constant(d time.Duration) Policy {
	return Policy{kind: strategyConstant, base: d}
}

// Linear returns a policy whose delay grows linearly: base * (attempt + 1).
func Linear(base time.Duration) Policy {
	return Policy{kind: strategyLinear, base: base}
}

// Exponential returns a policy whose delay doubles per attempt:
// base * 2^attempt, saturating instead of overflowing.
func Exponential(base time.Duration) Policy {
	return Policy{kind: strategyExponential, base: base}
}

// Fibonacci returns a policy whose delay follows the Fibonacci sequence:
// base * fib(attempt + 1), with fib(0) = 0 and fib(1) = 1.
func Fibonacci(base time.Duration) Policy {
	return Policy{kind: strategyFibonacci, base: base}
}

// WithMaxRetries returns a copy of the policy that permits at most n retries
// after the initial attempt.
func (p Policy) WithMaxRetries(n uint32) Policy {
	p.maxRetries = n
	p.hasMaxRetries = true
	return p
}

// WithMaxDelay returns a copy of the policy whose computed delays, jittered
// or not, never exceed d.
func (p Policy) WithMaxDelay(d time.Duration) Policy {
	p.maxDelay = d
	return p
}

// WithJitter returns a copy of the policy using the given jitter mode.
func (p Policy) WithJitter(j Jitter) Policy {
	p.jitter = j
	return p
}

// MaxRetries returns the retry bound and whether one is set.
func (p Policy) MaxRetries() (uint32, bool) {
	return p.maxRetries, p.hasMaxRetries
}

// MaxDelay returns the delay cap, or 0 when uncapped.
func (p Policy) MaxDelay() time.Duration {
	return p.maxDelay
}

// Validate reports ErrUnbounded when the policy has neither a retry bound
// nor a delay cap. The executors call Validate before the first attempt.
func (p Policy) Validate() error {
	if !p.hasMaxRetries && p.maxDelay <= 0 {
		return ErrUnbounded
	}
	return nil
}

// DelayForAttempt computes the un-jittered delay that follows the failure of
// the given 0-indexed attempt. It returns false once attempt reaches the
// retry bound, signaling exhaustion. The computation is pure: the same
// (policy, attempt) pair always yields the same result.
func (p Policy) DelayForAttempt(attempt uint32) (time.Duration, bool) {
	if p.hasMaxRetries && attempt >= p.maxRetries {
		return 0, false
	}

	var d time.Duration
	switch p.kind {
	case strategyConstant:
		d = p.base
	case strategyLinear:
		d = satMul(p.base, uint64(attempt)+1)
	case strategyExponential:
		mult := uint64(math.MaxUint64)
		if attempt < 64 {
			mult = 1 << attempt
		}
		d = satMul(p.base, mult)
	case strategyFibonacci:
		d = satMul(p.base, fib(uint64(attempt)+1))
	}

	if d < 0 {
		d = 0
	}
	if p.maxDelay > 0 && d > p.maxDelay {
		d = p.maxDelay
	}
	return d, true
}

// satMul multiplies a duration by a factor, saturating at the numeric max
// instead of overflowing.
func satMul(base time.Duration, n uint64) time.Duration {
	if base <= 0 || n == 0 {
		return 0
	}
	if n > uint64(math.MaxInt64)/uint64(base) {
		return math.MaxInt64
	}
	return base * time.Duration(n)
}

// fib computes the nth Fibonacci number iteratively, saturating on overflow.
// fib(0) = 0, fib(1) = 1.
func fib(n uint64) uint64 {
	var a, b uint64 = 0, 1
	for i := uint64(0); i < n; i++ {
		next := a + b
		if next < b {
			next = math.MaxUint64
		}
		a, b = b, next
	}
	return a
}
