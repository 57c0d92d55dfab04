package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records resilience-layer events.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic and must return quickly; retry
//   hooks call them on the hot path between attempts.
type Metrics interface {
	// RecordAttempt records one failed attempt of a retried operation.
	RecordAttempt(ctx context.Context, meta OpMeta, attempt uint32, err error)

	// RecordExhausted records a retry loop that ran out of attempts.
	RecordExhausted(ctx context.Context, meta OpMeta, attempts uint32, elapsed time.Duration)

	// RecordExecution records a completed guarded execution with duration
	// and error status.
	RecordExecution(ctx context.Context, meta OpMeta, duration time.Duration, err error)

	// RecordCleanupFailure records a bracket release that failed.
	RecordCleanupFailure(ctx context.Context, meta OpMeta)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	attemptCount    metric.Int64Counter
	exhaustedCount  metric.Int64Counter
	durationHist    metric.Float64Histogram
	cleanupFailures metric.Int64Counter
}

// NewMetrics creates a Metrics instance on the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	attemptCount, err := meter.Int64Counter(
		"resilience.attempts.total",
		metric.WithDescription("Total number of failed attempts observed by retry loops"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	exhaustedCount, err := meter.Int64Counter(
		"resilience.exhausted.total",
		metric.WithDescription("Total number of retry loops that exhausted their attempts"),
		metric.WithUnit("{loop}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"resilience.exec.duration_ms",
		metric.WithDescription("Guarded execution duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	cleanupFailures, err := meter.Int64Counter(
		"resilience.cleanup.failures",
		metric.WithDescription("Total number of bracket releases that failed"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		attemptCount:    attemptCount,
		exhaustedCount:  exhaustedCount,
		durationHist:    durationHist,
		cleanupFailures: cleanupFailures,
	}, nil
}

func (m *metricsImpl) attrs(meta OpMeta) metric.MeasurementOption {
	attrs := []attribute.KeyValue{
		attribute.String("op.name", meta.Name),
	}
	if meta.Kind != "" {
		attrs = append(attrs, attribute.String("op.kind", meta.Kind))
	}
	if meta.Resource != "" {
		attrs = append(attrs, attribute.String("op.resource", meta.Resource))
	}
	return metric.WithAttributes(attrs...)
}

func (m *metricsImpl) RecordAttempt(ctx context.Context, meta OpMeta, attempt uint32, err error) {
	m.attemptCount.Add(ctx, 1, m.attrs(meta))
}

func (m *metricsImpl) RecordExhausted(ctx context.Context, meta OpMeta, attempts uint32, elapsed time.Duration) {
	m.exhaustedCount.Add(ctx, 1, m.attrs(meta))
}

func (m *metricsImpl) RecordExecution(ctx context.Context, meta OpMeta, duration time.Duration, err error) {
	m.durationHist.Record(ctx, float64(duration.Milliseconds()), m.attrs(meta))
}

func (m *metricsImpl) RecordCleanupFailure(ctx context.Context, meta OpMeta) {
	m.cleanupFailures.Add(ctx, 1, m.attrs(meta))
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

// NopMetrics returns a Metrics implementation that discards everything.
func NopMetrics() Metrics {
	return &noopMetrics{}
}

func (m *noopMetrics) RecordAttempt(ctx context.Context, meta OpMeta, attempt uint32, err error) {}
func (m *noopMetrics) RecordExhausted(ctx context.Context, meta OpMeta, attempts uint32, elapsed time.Duration) {
}
func (m *noopMetrics) RecordExecution(ctx context.Context, meta OpMeta, duration time.Duration, err error) {
}
func (m *noopMetrics) RecordCleanupFailure(ctx context.Context, meta OpMeta) {}
