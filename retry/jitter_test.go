package retry

import (
	"testing"
	"time"
)

const jitterSamples = 500

func TestDelayWithJitter_NoneIsUnchanged(t *testing.T) {
	p := Exponential(100 * time.Millisecond).WithMaxRetries(5)

	for attempt := uint32(0); attempt < 5; attempt++ {
		base, _ := p.DelayForAttempt(attempt)
		for i := 0; i < 10; i++ {
			d, ok := p.DelayWithJitter(attempt, 0)
			if !ok {
				t.Fatalf("DelayWithJitter(%d) exhausted early", attempt)
			}
			if d != base {
				t.Errorf("DelayWithJitter(%d) = %v, want %v", attempt, d, base)
			}
		}
	}
}

func TestDelayWithJitter_FullStaysWithinBase(t *testing.T) {
	p := Constant(100 * time.Millisecond).
		WithMaxRetries(1).
		WithJitter(FullJitter())

	for i := 0; i < jitterSamples; i++ {
		d, ok := p.DelayWithJitter(0, 0)
		if !ok {
			t.Fatal("DelayWithJitter exhausted early")
		}
		if d < 0 || d > 100*time.Millisecond {
			t.Fatalf("full jitter delay %v outside [0, 100ms]", d)
		}
	}
}

func TestDelayWithJitter_ProportionalBounds(t *testing.T) {
	p := Constant(100 * time.Millisecond).
		WithMaxRetries(1).
		WithJitter(ProportionalJitter(0.2))

	lo := 80 * time.Millisecond
	hi := 120 * time.Millisecond
	for i := 0; i < jitterSamples; i++ {
		d, ok := p.DelayWithJitter(0, 0)
		if !ok {
			t.Fatal("DelayWithJitter exhausted early")
		}
		if d < lo || d > hi {
			t.Fatalf("proportional jitter delay %v outside [%v, %v]", d, lo, hi)
		}
	}
}

func TestDelayWithJitter_ProportionalFloorsAtZero(t *testing.T) {
	p := Constant(time.Millisecond).
		WithMaxRetries(1).
		WithJitter(ProportionalJitter(2.0))

	for i := 0; i < jitterSamples; i++ {
		d, ok := p.DelayWithJitter(0, 0)
		if !ok {
			t.Fatal("DelayWithJitter exhausted early")
		}
		if d < 0 {
			t.Fatalf("proportional jitter delay %v below zero", d)
		}
	}
}

func TestDelayWithJitter_DecorrelatedBounds(t *testing.T) {
	p := Constant(100 * time.Millisecond).
		WithMaxDelay(10 * time.Second).
		WithJitter(DecorrelatedJitter())

	prev := 400 * time.Millisecond
	for i := 0; i < jitterSamples; i++ {
		d, ok := p.DelayWithJitter(0, prev)
		if !ok {
			t.Fatal("DelayWithJitter exhausted early")
		}
		if d < 100*time.Millisecond {
			t.Fatalf("decorrelated delay %v below un-jittered base", d)
		}
		if d > 3*prev {
			t.Fatalf("decorrelated delay %v above 3*prev (%v)", d, 3*prev)
		}
	}
}

// With no previous delay, the current base delay stands in for it, so the
// first decorrelated sample lands in [base, 3*base].
func TestDelayWithJitter_DecorrelatedSeedFallback(t *testing.T) {
	p := Constant(100 * time.Millisecond).
		WithMaxDelay(10 * time.Second).
		WithJitter(DecorrelatedJitter())

	for i := 0; i < jitterSamples; i++ {
		d, ok := p.DelayWithJitter(0, 0)
		if !ok {
			t.Fatal("DelayWithJitter exhausted early")
		}
		if d < 100*time.Millisecond || d > 300*time.Millisecond {
			t.Fatalf("seed decorrelated delay %v outside [100ms, 300ms]", d)
		}
	}
}

func TestDelayWithJitter_ReclampsToMaxDelay(t *testing.T) {
	limit := 150 * time.Millisecond
	p := Constant(100 * time.Millisecond).
		WithMaxDelay(limit).
		WithJitter(DecorrelatedJitter())

	prev := 10 * time.Second
	for i := 0; i < jitterSamples; i++ {
		d, ok := p.DelayWithJitter(0, prev)
		if !ok {
			t.Fatal("DelayWithJitter exhausted early")
		}
		if d > limit {
			t.Fatalf("jittered delay %v exceeds max delay %v", d, limit)
		}
	}
}

func TestDelayWithJitter_ExhaustionPassesThrough(t *testing.T) {
	p := Constant(100 * time.Millisecond).
		WithMaxRetries(2).
		WithJitter(FullJitter())

	if d, ok := p.DelayWithJitter(2, 0); ok {
		t.Errorf("DelayWithJitter(2) = %v, want exhausted", d)
	}
}
