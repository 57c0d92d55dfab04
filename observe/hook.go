package observe

import (
	"context"

	"github.com/jonwraymond/effectops/retry"
)

// RetryHook adapts Metrics and Logger into an on-retry hook for
// retry.DoWithHooks. Each failed attempt increments the attempt counter;
// the final event of an exhausting loop additionally records exhaustion.
// Logging is best-effort and the hook never blocks the retry loop beyond
// the recording calls themselves.
func RetryHook(meta OpMeta, m Metrics, l Logger) func(retry.Event) {
	if m == nil {
		m = NopMetrics()
	}
	if l == nil {
		l = NopLogger()
	}
	scoped := l.WithOp(meta)

	return func(ev retry.Event) {
		ctx := context.Background()
		m.RecordAttempt(ctx, meta, ev.Attempt, ev.Err)

		if ev.WillRetry {
			scoped.Debug(ctx, "attempt failed, retrying",
				Field{Key: "attempt", Value: ev.Attempt},
				Field{Key: "next_delay", Value: ev.NextDelay.String()},
				Field{Key: "error", Value: ev.Err.Error()},
			)
			return
		}

		m.RecordExhausted(ctx, meta, ev.Attempt, ev.Elapsed)
		scoped.Warn(ctx, "retries exhausted",
			Field{Key: "attempts", Value: ev.Attempt},
			Field{Key: "elapsed", Value: ev.Elapsed.String()},
			Field{Key: "error", Value: ev.Err.Error()},
		)
	}
}
