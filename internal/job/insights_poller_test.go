package job

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
)

func TestNewInsightsPollerIntervals(t *testing.T) {
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	poller := NewInsightsPoller(tracer, &stubRefresher{}, 2, 30, 120)
	if poller.quotesInterval != 2*time.Second {
		t.Fatalf("expected 2s quotes interval, got %v", poller.quotesInterval)
	}
	if poller.heatmapInterval != 30*time.Second {
		t.Fatalf("expected 30s heatmap interval, got %v", poller.heatmapInterval)
	}
	if poller.correlationInterval != 120*time.Second {
		t.Fatalf("expected 120s correlation interval, got %v", poller.correlationInterval)
	}
}

func TestInsightsPollerStart(t *testing.T) {
	t.Parallel()

	tracer := trace.NewNoopTracerProvider().Tracer("test")
	stub := &stubRefresher{}
	poller := NewInsightsPoller(tracer, stub, 1, 300, 1800)

	ctx, cancel := context.WithCancel(context.Background())
	go poller.Start(ctx)

	eventually(t, func() bool { return stub.quoteCalls.Load() > 0 })
	cancel()
}

func TestPollLoopRunsImmediately(t *testing.T) {
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	stub := &stubRefresher{}
	poller := NewInsightsPoller(tracer, stub, 1, 1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	go poller.pollLoop(ctx, "quotes", 0, time.Hour, stub.RefreshQuotes)

	eventually(t, func() bool { return stub.quoteCalls.Load() == 1 })
	cancel()
}

func TestPollLoopHonorsDelay(t *testing.T) {
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	stub := &stubRefresher{}
	poller := NewInsightsPoller(tracer, stub, 1, 1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.pollLoop(ctx, "heatmaps", time.Hour, time.Hour, stub.RefreshHeatmaps)

	time.Sleep(20 * time.Millisecond)
	if stub.heatmapCalls.Load() != 0 {
		t.Fatal("expected no calls while delay pending")
	}
}

func eventually(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(100 * time.Millisecond)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met")
}

type stubRefresher struct {
	quoteCalls       atomic.Int32
	heatmapCalls     atomic.Int32
	correlationCalls atomic.Int32
}

func (s *stubRefresher) RefreshQuotes(ctx context.Context) error {
	s.quoteCalls.Add(1)
	return nil
}

func (s *stubRefresher) RefreshHeatmaps(ctx context.Context) error {
	s.heatmapCalls.Add(1)
	return nil
}

func (s *stubRefresher) RefreshCorrelation(ctx context.Context) error {
	s.correlationCalls.Add(1)
	return nil
}
