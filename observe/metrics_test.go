package observe

import (
	"context"
	"errors"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func newTestMetrics(t *testing.T) (Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}
	return rm
}

func TestMetrics_AttemptCounterIncrements(t *testing.T) {
	m, reader := newTestMetrics(t)
	meta := OpMeta{Name: "fetch", Kind: "retry"}

	m.RecordAttempt(context.Background(), meta, 1, errors.New("transient"))
	m.RecordAttempt(context.Background(), meta, 2, errors.New("transient"))

	rm := collect(t, reader)
	found := findMetric(rm, "resilience.attempts.total")
	if found == nil {
		t.Fatal("resilience.attempts.total metric not found")
	}
	sum, ok := found.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("expected Sum[int64], got %T", found.Data)
	}
	if len(sum.DataPoints) == 0 {
		t.Fatal("no data points")
	}
	if sum.DataPoints[0].Value != 2 {
		t.Errorf("expected count 2, got %d", sum.DataPoints[0].Value)
	}
}

func TestMetrics_ExhaustedCounter(t *testing.T) {
	m, reader := newTestMetrics(t)
	meta := OpMeta{Name: "fetch", Kind: "retry"}

	m.RecordExhausted(context.Background(), meta, 4, 2*time.Second)

	rm := collect(t, reader)
	found := findMetric(rm, "resilience.exhausted.total")
	if found == nil {
		t.Fatal("resilience.exhausted.total metric not found")
	}
	sum, ok := found.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("expected Sum[int64], got %T", found.Data)
	}
	if sum.DataPoints[0].Value != 1 {
		t.Errorf("expected count 1, got %d", sum.DataPoints[0].Value)
	}
}

func TestMetrics_ExecutionDurationRecorded(t *testing.T) {
	m, reader := newTestMetrics(t)
	meta := OpMeta{Name: "fetch"}

	m.RecordExecution(context.Background(), meta, 150*time.Millisecond, nil)

	rm := collect(t, reader)
	found := findMetric(rm, "resilience.exec.duration_ms")
	if found == nil {
		t.Fatal("resilience.exec.duration_ms metric not found")
	}
	hist, ok := found.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("expected Histogram[float64], got %T", found.Data)
	}
	if len(hist.DataPoints) == 0 {
		t.Fatal("no data points")
	}
	if hist.DataPoints[0].Sum != 150 {
		t.Errorf("expected sum 150, got %f", hist.DataPoints[0].Sum)
	}
}

func TestMetrics_CleanupFailureCounter(t *testing.T) {
	m, reader := newTestMetrics(t)
	meta := OpMeta{Name: "db-session", Kind: "bracket", Resource: "conn"}

	m.RecordCleanupFailure(context.Background(), meta)

	rm := collect(t, reader)
	found := findMetric(rm, "resilience.cleanup.failures")
	if found == nil {
		t.Fatal("resilience.cleanup.failures metric not found")
	}
	sum, ok := found.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("expected Sum[int64], got %T", found.Data)
	}
	if sum.DataPoints[0].Value != 1 {
		t.Errorf("expected count 1, got %d", sum.DataPoints[0].Value)
	}
}

func TestNopMetrics(t *testing.T) {
	m := NopMetrics()
	// Must not panic.
	m.RecordAttempt(context.Background(), OpMeta{Name: "x"}, 1, errors.New("e"))
	m.RecordExhausted(context.Background(), OpMeta{Name: "x"}, 2, time.Second)
	m.RecordExecution(context.Background(), OpMeta{Name: "x"}, time.Second, nil)
	m.RecordCleanupFailure(context.Background(), OpMeta{Name: "x"})
}
