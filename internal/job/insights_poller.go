package job

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// InsightsPoller runs background goroutines that periodically refresh
// market data caches and persist sentiment snapshots.
type InsightsPoller struct {
	tracer              trace.Tracer
	insights            MarketDataRefresher
	quotesInterval      time.Duration
	heatmapInterval     time.Duration
	correlationInterval time.Duration
}

type MarketDataRefresher interface {
	RefreshQuotes(ctx context.Context) error
	RefreshHeatmaps(ctx context.Context) error
	RefreshCorrelation(ctx context.Context) error
}

func NewInsightsPoller(tracer trace.Tracer, insights MarketDataRefresher, quotesSecs, heatmapSecs, correlationSecs int) *InsightsPoller {
	return &InsightsPoller{
		tracer:              tracer,
		insights:            insights,
		quotesInterval:      time.Duration(quotesSecs) * time.Second,
		heatmapInterval:     time.Duration(heatmapSecs) * time.Second,
		correlationInterval: time.Duration(correlationSecs) * time.Second,
	}
}

// Start launches background polling goroutines. Blocks until ctx is cancelled.
func (p *InsightsPoller) Start(ctx context.Context) {
	log.Println("Insights poller starting...")

	// Tier 1: Quotes and sentiment snapshots every quotesInterval (default 60s)
	go p.pollLoop(ctx, "quotes", 0, p.quotesInterval, p.insights.RefreshQuotes)

	// Tier 2: Heatmaps and strength, staggered to spread API load
	go p.pollLoop(ctx, "heatmaps", 10*time.Second, p.heatmapInterval, p.insights.RefreshHeatmaps)

	// Tier 3: Correlation matrix, the slowest-moving feed
	go p.pollLoop(ctx, "correlation", 30*time.Second, p.correlationInterval, p.insights.RefreshCorrelation)

	<-ctx.Done()
	log.Println("Insights poller stopped")
}

func (p *InsightsPoller) pollLoop(ctx context.Context, name string, delay, interval time.Duration, fn func(context.Context) error) {
	if delay > 0 {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}

	// Run immediately on start
	if err := fn(ctx); err != nil {
		log.Printf("poller %s initial run error: %v", name, err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := fn(ctx); err != nil {
				log.Printf("poller %s error: %v", name, err)
			}
		}
	}
}
