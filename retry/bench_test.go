package retry

import (
	"context"
	"testing"
	"time"

	"github.com/jonwraymond/effectops/effect"
)

func BenchmarkDelayForAttempt(b *testing.B) {
	policies := map[string]Policy{
		"constant":    Constant(100 * time.Millisecond).WithMaxRetries(1 << 20),
		"linear":      Linear(100 * time.Millisecond).WithMaxRetries(1 << 20),
		"exponential": Exponential(100 * time.Millisecond).WithMaxRetries(1 << 20),
		"fibonacci":   Fibonacci(100 * time.Millisecond).WithMaxRetries(1 << 20),
	}

	for name, p := range policies {
		b.Run(name, func(b *testing.B) {
			for i := 0; b.Loop(); i++ {
				p.DelayForAttempt(uint32(i % 64))
			}
		})
	}
}

func BenchmarkDelayWithJitter(b *testing.B) {
	p := Exponential(100 * time.Millisecond).
		WithMaxRetries(1 << 20).
		WithJitter(FullJitter())

	for i := 0; b.Loop(); i++ {
		p.DelayWithJitter(uint32(i%32), 100*time.Millisecond)
	}
}

func BenchmarkDo_ImmediateSuccess(b *testing.B) {
	ctx := context.Background()
	policy := Constant(time.Millisecond).WithMaxRetries(3)
	factory := func() *effect.Effect[testEnv, int] {
		return effect.Value[testEnv](1)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Do(ctx, testEnv{}, factory, policy); err != nil {
			b.Fatal(err)
		}
	}
}
