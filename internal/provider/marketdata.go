package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"marome-markets/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// MarketDataProvider fetches quotes, heatmaps, correlations, news and
// calendar events from the upstream market data API.
type MarketDataProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewMarketDataProvider creates a provider with built-in rate limiting.
// Rate limited to 30 requests per minute (one token every 2 seconds).
func NewMarketDataProvider(tracer trace.Tracer, baseURL string) *MarketDataProvider {
	return &MarketDataProvider{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(30, 2*time.Second),
	}
}

var classEndpoints = map[domain.AssetClass]string{
	domain.ClassIndices:     "/indices",
	domain.ClassForex:       "/forex",
	domain.ClassCrypto:      "/crypto",
	domain.ClassCommodities: "/commodities",
	domain.ClassStocks:      "/stocks",
}

// FetchQuotes fetches the quote list for one asset class.
func (p *MarketDataProvider) FetchQuotes(ctx context.Context, class domain.AssetClass) ([]domain.Quote, error) {
	_, span := p.tracer.Start(ctx, "marketdata.fetch-quotes")
	defer span.End()

	endpoint, ok := classEndpoints[class]
	if !ok {
		return nil, fmt.Errorf("unsupported asset class: %s", class)
	}

	body, err := p.doRequest(ctx, p.baseURL+endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch %s quotes: %w", class, err)
	}

	var quotes []domain.Quote
	if err := json.Unmarshal(body, &quotes); err != nil {
		return nil, fmt.Errorf("parse %s quotes: %w", class, err)
	}
	return quotes, nil
}

// FetchMovers fetches the cross-market movers list.
func (p *MarketDataProvider) FetchMovers(ctx context.Context) ([]domain.Mover, error) {
	_, span := p.tracer.Start(ctx, "marketdata.fetch-movers")
	defer span.End()

	body, err := p.doRequest(ctx, p.baseURL+"/all-movers")
	if err != nil {
		return nil, fmt.Errorf("fetch movers: %w", err)
	}

	var movers []domain.Mover
	if err := json.Unmarshal(body, &movers); err != nil {
		return nil, fmt.Errorf("parse movers: %w", err)
	}
	return movers, nil
}

// FetchHeatmap fetches the multi-timeframe heatmap for "crypto" or "forex".
func (p *MarketDataProvider) FetchHeatmap(ctx context.Context, market string) (domain.HeatmapData, error) {
	_, span := p.tracer.Start(ctx, "marketdata.fetch-heatmap")
	defer span.End()

	if market != "crypto" && market != "forex" {
		return nil, fmt.Errorf("unsupported heatmap market: %s", market)
	}

	body, err := p.doRequest(ctx, fmt.Sprintf("%s/%s-heatmap", p.baseURL, market))
	if err != nil {
		return nil, fmt.Errorf("fetch %s heatmap: %w", market, err)
	}

	var data domain.HeatmapData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("parse %s heatmap: %w", market, err)
	}
	return data, nil
}

// FetchStrength fetches the forex currency strength map.
func (p *MarketDataProvider) FetchStrength(ctx context.Context) (domain.StrengthMap, error) {
	_, span := p.tracer.Start(ctx, "marketdata.fetch-strength")
	defer span.End()

	body, err := p.doRequest(ctx, p.baseURL+"/forex-strength")
	if err != nil {
		return nil, fmt.Errorf("fetch forex strength: %w", err)
	}

	var strength domain.StrengthMap
	if err := json.Unmarshal(body, &strength); err != nil {
		return nil, fmt.Errorf("parse forex strength: %w", err)
	}
	return strength, nil
}

// FetchCorrelation fetches the correlation matrix over the given window.
func (p *MarketDataProvider) FetchCorrelation(ctx context.Context, periodDays int) (domain.CorrelationData, error) {
	_, span := p.tracer.Start(ctx, "marketdata.fetch-correlation")
	defer span.End()

	body, err := p.doRequest(ctx, fmt.Sprintf("%s/correlation-matrix?period=%d", p.baseURL, periodDays))
	if err != nil {
		return domain.CorrelationData{}, fmt.Errorf("fetch correlation matrix: %w", err)
	}

	var data domain.CorrelationData
	if err := json.Unmarshal(body, &data); err != nil {
		return domain.CorrelationData{}, fmt.Errorf("parse correlation matrix: %w", err)
	}
	return data, nil
}

// FetchNews fetches the latest market news articles.
func (p *MarketDataProvider) FetchNews(ctx context.Context) ([]domain.NewsArticle, error) {
	_, span := p.tracer.Start(ctx, "marketdata.fetch-news")
	defer span.End()

	body, err := p.doRequest(ctx, p.baseURL+"/news")
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}

	var articles []domain.NewsArticle
	if err := json.Unmarshal(body, &articles); err != nil {
		return nil, fmt.Errorf("parse news: %w", err)
	}
	return articles, nil
}

// FetchCalendar fetches upcoming economic calendar events.
func (p *MarketDataProvider) FetchCalendar(ctx context.Context) ([]domain.CalendarEvent, error) {
	_, span := p.tracer.Start(ctx, "marketdata.fetch-calendar")
	defer span.End()

	body, err := p.doRequest(ctx, p.baseURL+"/economic-calendar")
	if err != nil {
		return nil, fmt.Errorf("fetch calendar: %w", err)
	}

	var events []domain.CalendarEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}
	return events, nil
}

func (p *MarketDataProvider) doRequest(ctx context.Context, url string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("market data API error %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
