package retry

import (
	"math"
	"math/rand/v2"
	"time"
)

// jitterMode selects how a computed delay is perturbed.
type jitterMode int

const (
	jitterNone jitterMode = iota
	jitterProportional
	jitterFull
	jitterDecorrelated
)

// Jitter is a randomized perturbation applied to computed delays so that
// many clients retrying the same failure do not wake in lockstep.
type Jitter struct {
	mode   jitterMode
	factor float64
}

// NoJitter returns the identity jitter: delays are used as computed.
// This is the zero value of Jitter.
func NoJitter() Jitter {
	return Jitter{mode: jitterNone}
}

// ProportionalJitter samples uniformly in [delay*(1-f), delay*(1+f)],
// floored at zero. A factor of 0.2 means up to ±20% variance.
func ProportionalJitter(f float64) Jitter {
	return Jitter{mode: jitterProportional, factor: f}
}

// FullJitter samples uniformly in [0, delay]. It maximizes spread and is the
// recommended default for thundering-herd avoidance.
func FullJitter() Jitter {
	return Jitter{mode: jitterFull}
}

// DecorrelatedJitter samples uniformly in [delay, 3*previous], where previous
// is the delay actually used before the current attempt. When there is no
// previous delay the current base delay stands in for it, so the first sample
// behaves like [delay, 3*delay]. The result is never below the un-jittered
// base delay.
func DecorrelatedJitter() Jitter {
	return Jitter{mode: jitterDecorrelated}
}

// DelayWithJitter computes DelayForAttempt and perturbs the result per the
// policy's jitter mode. prev is the delay used before the current attempt
// (zero when there is none; only the decorrelated mode consults it). The
// jittered delay is re-clamped to the policy's max delay.
func (p Policy) DelayWithJitter(attempt uint32, prev time.Duration) (time.Duration, bool) {
	d, ok := p.DelayForAttempt(attempt)
	if !ok {
		return 0, false
	}

	// #nosec G404 -- jitter is non-cryptographic timing variance.
	switch p.jitter.mode {
	case jitterNone:
		return d, true

	case jitterProportional:
		f := p.jitter.factor
		if f > 0 {
			lo := float64(d) * (1 - f)
			hi := float64(d) * (1 + f)
			if lo < 0 {
				lo = 0
			}
			d = time.Duration(lo + rand.Float64()*(hi-lo))
		}

	case jitterFull:
		if d > 0 {
			d = rand.N(d + 1)
		}

	case jitterDecorrelated:
		base := d
		if prev <= 0 {
			prev = base
		}
		hi := satMul(prev, 3)
		if hi < base {
			hi = base
		}
		d = base + randSpan(hi-base)
	}

	if d < 0 {
		d = 0
	}
	if p.maxDelay > 0 && d > p.maxDelay {
		d = p.maxDelay
	}
	return d, true
}

// randSpan returns a uniform duration in [0, span].
func randSpan(span time.Duration) time.Duration {
	if span <= 0 {
		return 0
	}
	if span == math.MaxInt64 {
		return rand.N(span)
	}
	// #nosec G404 -- jitter is non-cryptographic timing variance.
	return rand.N(span + 1)
}
