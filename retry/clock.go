package retry

import (
	"context"
	"time"
)

// Clock abstracts time observation and suspension so retry loops can be
// driven deterministically in tests.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// realClock implements Clock using the standard time package.
type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return ctx.Err()
	}
}

// defaultClock avoids allocating a clock per loop.
var defaultClock Clock = realClock{}

// options carries executor knobs shared by the Do variants.
type options struct {
	clock Clock
}

// Option configures a retry executor invocation.
type Option func(*options)

// WithClock replaces the wall clock, primarily for tests.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

func newOptions(opts []Option) options {
	o := options{clock: defaultClock}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
