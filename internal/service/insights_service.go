package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"marome-markets/internal/calendar"
	"marome-markets/internal/domain"
	"marome-markets/internal/insights"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

// MarketDataProvider is the upstream market data API surface the service
// depends on.
type MarketDataProvider interface {
	FetchQuotes(ctx context.Context, class domain.AssetClass) ([]domain.Quote, error)
	FetchMovers(ctx context.Context) ([]domain.Mover, error)
	FetchHeatmap(ctx context.Context, market string) (domain.HeatmapData, error)
	FetchStrength(ctx context.Context) (domain.StrengthMap, error)
	FetchCorrelation(ctx context.Context, periodDays int) (domain.CorrelationData, error)
	FetchNews(ctx context.Context) ([]domain.NewsArticle, error)
	FetchCalendar(ctx context.Context) ([]domain.CalendarEvent, error)
}

type SnapshotRepository interface {
	SaveSnapshots(ctx context.Context, snapshots []*domain.SentimentSnapshot) error
	History(ctx context.Context, class string, limit int) ([]*domain.SentimentSnapshot, error)
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// InsightsService orchestrates market data fetching, caching, analysis
// and snapshot persistence.
type InsightsService struct {
	tracer   trace.Tracer
	provider MarketDataProvider
	repo     SnapshotRepository
	redis    RedisClient
	engine   *insights.Engine

	cacheTTL        time.Duration
	correlationDays int
}

func NewInsightsService(
	tracer trace.Tracer,
	provider MarketDataProvider,
	repo SnapshotRepository,
	redisClient RedisClient,
	cacheTTL time.Duration,
	correlationDays int,
) *InsightsService {
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	if correlationDays <= 0 {
		correlationDays = 30
	}
	return &InsightsService{
		tracer:          tracer,
		provider:        provider,
		repo:            repo,
		redis:           redisClient,
		engine:          insights.NewEngine(),
		cacheTTL:        cacheTTL,
		correlationDays: correlationDays,
	}
}

// Quotes returns the quote list for one asset class, cached in Redis.
func (s *InsightsService) Quotes(ctx context.Context, class domain.AssetClass) ([]domain.Quote, error) {
	_, span := s.tracer.Start(ctx, "insights-service.quotes")
	defer span.End()

	var quotes []domain.Quote
	key := "insights:quotes:" + string(class)
	if s.readCache(ctx, key, &quotes) {
		return quotes, nil
	}

	quotes, err := s.provider.FetchQuotes(ctx, class)
	if err != nil {
		return nil, err
	}
	s.writeCache(ctx, key, quotes)
	return quotes, nil
}

// quotesOrEmpty degrades a failed fetch to an empty class so composite
// views keep rendering when one upstream feed is down.
func (s *InsightsService) quotesOrEmpty(ctx context.Context, class domain.AssetClass) []domain.Quote {
	quotes, err := s.Quotes(ctx, class)
	if err != nil {
		log.Printf("quotes fetch failed for %s: %v", class, err)
		return nil
	}
	return quotes
}

// Sentiment scores one asset class. A failed fetch yields the
// unavailable result rather than an error.
func (s *InsightsService) Sentiment(ctx context.Context, class domain.AssetClass) (insights.SentimentResult, error) {
	ctx, span := s.tracer.Start(ctx, "insights-service.sentiment")
	defer span.End()

	if !class.IsValid() {
		return insights.SentimentResult{}, fmt.Errorf("unknown asset class: %s", class)
	}
	return s.engine.Sentiment(class, s.quotesOrEmpty(ctx, class)), nil
}

// Overview assembles the full analysis page from every feed, degrading
// each failed feed to empty rather than failing the page.
func (s *InsightsService) Overview(ctx context.Context) (insights.Overview, error) {
	ctx, span := s.tracer.Start(ctx, "insights-service.overview")
	defer span.End()

	in := insights.SummaryInput{
		Indices:     s.quotesOrEmpty(ctx, domain.ClassIndices),
		Forex:       s.quotesOrEmpty(ctx, domain.ClassForex),
		Crypto:      s.quotesOrEmpty(ctx, domain.ClassCrypto),
		Commodities: s.quotesOrEmpty(ctx, domain.ClassCommodities),
	}

	var movers []domain.Mover
	key := "insights:movers"
	if !s.readCache(ctx, key, &movers) {
		var err error
		movers, err = s.provider.FetchMovers(ctx)
		if err != nil {
			log.Printf("movers fetch failed: %v", err)
			movers = nil
		} else {
			s.writeCache(ctx, key, movers)
		}
	}

	return s.engine.Overview(in, movers), nil
}

// Heatmap returns the rendered heatmap table for "crypto" or "forex".
func (s *InsightsService) Heatmap(ctx context.Context, market string) (insights.HeatmapView, error) {
	ctx, span := s.tracer.Start(ctx, "insights-service.heatmap")
	defer span.End()

	data, err := s.heatmapData(ctx, market)
	if err != nil {
		return insights.HeatmapView{}, err
	}
	return s.engine.Heatmap(data), nil
}

// Commentary narrates the crypto heatmap.
func (s *InsightsService) Commentary(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "insights-service.commentary")
	defer span.End()

	data, err := s.heatmapData(ctx, "crypto")
	if err != nil {
		return nil, err
	}
	return s.engine.CryptoCommentary(data), nil
}

func (s *InsightsService) heatmapData(ctx context.Context, market string) (domain.HeatmapData, error) {
	var data domain.HeatmapData
	key := "insights:heatmap:" + market
	if s.readCache(ctx, key, &data) {
		return data, nil
	}

	data, err := s.provider.FetchHeatmap(ctx, market)
	if err != nil {
		return nil, err
	}
	s.writeCache(ctx, key, data)
	return data, nil
}

// Correlation returns the rendered correlation matrix. periodDays <= 0
// falls back to the configured window.
func (s *InsightsService) Correlation(ctx context.Context, periodDays int) (insights.CorrelationView, error) {
	_, span := s.tracer.Start(ctx, "insights-service.correlation")
	defer span.End()

	if periodDays <= 0 {
		periodDays = s.correlationDays
	}

	var data domain.CorrelationData
	key := fmt.Sprintf("insights:correlation:%d", periodDays)
	if !s.readCache(ctx, key, &data) {
		var err error
		data, err = s.provider.FetchCorrelation(ctx, periodDays)
		if err != nil {
			return insights.CorrelationView{}, err
		}
		s.writeCache(ctx, key, data)
	}

	return s.engine.Correlation(data), nil
}

// Strength returns the forex currency strength map.
func (s *InsightsService) Strength(ctx context.Context) (domain.StrengthMap, error) {
	_, span := s.tracer.Start(ctx, "insights-service.strength")
	defer span.End()

	var strength domain.StrengthMap
	key := "insights:strength"
	if s.readCache(ctx, key, &strength) {
		return strength, nil
	}

	strength, err := s.provider.FetchStrength(ctx)
	if err != nil {
		return nil, err
	}
	s.writeCache(ctx, key, strength)
	return strength, nil
}

// News returns formatted news cards.
func (s *InsightsService) News(ctx context.Context) ([]insights.NewsCard, error) {
	_, span := s.tracer.Start(ctx, "insights-service.news")
	defer span.End()

	var articles []domain.NewsArticle
	key := "insights:news"
	if !s.readCache(ctx, key, &articles) {
		var err error
		articles, err = s.provider.FetchNews(ctx)
		if err != nil {
			return nil, err
		}
		s.writeCache(ctx, key, articles)
	}

	return insights.NewsCards(articles, time.Now()), nil
}

// Calendar returns the grouped economic calendar.
func (s *InsightsService) Calendar(ctx context.Context) (calendar.Schedule, error) {
	_, span := s.tracer.Start(ctx, "insights-service.calendar")
	defer span.End()

	var events []domain.CalendarEvent
	key := "insights:calendar"
	if !s.readCache(ctx, key, &events) {
		var err error
		events, err = s.provider.FetchCalendar(ctx)
		if err != nil {
			return calendar.Schedule{}, err
		}
		s.writeCache(ctx, key, events)
	}

	return calendar.BuildSchedule(events, time.Now()), nil
}

// History returns stored sentiment snapshots for one class, newest first.
func (s *InsightsService) History(ctx context.Context, class domain.AssetClass, limit int) ([]*domain.SentimentSnapshot, error) {
	_, span := s.tracer.Start(ctx, "insights-service.history")
	defer span.End()

	if !class.IsValid() {
		return nil, fmt.Errorf("unknown asset class: %s", class)
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.repo.History(ctx, string(class), limit)
}

// RefreshQuotes re-fetches every quote class plus movers, refreshes the
// cache, and persists a sentiment snapshot per class.
func (s *InsightsService) RefreshQuotes(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "insights-service.refresh-quotes")
	defer span.End()

	var snapshots []*domain.SentimentSnapshot
	var firstErr error
	for _, class := range domain.AssetClasses {
		quotes, err := s.provider.FetchQuotes(ctx, class)
		if err != nil {
			log.Printf("refresh quotes failed for %s: %v", class, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s.writeCache(ctx, "insights:quotes:"+string(class), quotes)

		result := s.engine.Sentiment(class, quotes)
		if !result.Available {
			continue
		}
		snapshots = append(snapshots, &domain.SentimentSnapshot{
			Class:         class,
			Score:         result.Score,
			Bucket:        string(result.Bucket),
			PositiveCount: result.PositiveCount,
			TotalCount:    result.TotalCount,
			Narrative:     result.Narrative,
		})
	}

	if movers, err := s.provider.FetchMovers(ctx); err != nil {
		log.Printf("refresh movers failed: %v", err)
	} else {
		s.writeCache(ctx, "insights:movers", movers)
	}

	if s.repo != nil && len(snapshots) > 0 {
		if err := s.repo.SaveSnapshots(ctx, snapshots); err != nil {
			log.Printf("snapshot save failed: %v", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	log.Printf("Refreshed quotes for %d classes (%d snapshots)", len(domain.AssetClasses), len(snapshots))
	return firstErr
}

// RefreshHeatmaps re-fetches both heatmaps and the strength map.
func (s *InsightsService) RefreshHeatmaps(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "insights-service.refresh-heatmaps")
	defer span.End()

	var firstErr error
	for _, market := range []string{"crypto", "forex"} {
		data, err := s.provider.FetchHeatmap(ctx, market)
		if err != nil {
			log.Printf("refresh %s heatmap failed: %v", market, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s.writeCache(ctx, "insights:heatmap:"+market, data)
	}

	if strength, err := s.provider.FetchStrength(ctx); err != nil {
		log.Printf("refresh strength failed: %v", err)
		if firstErr == nil {
			firstErr = err
		}
	} else {
		s.writeCache(ctx, "insights:strength", strength)
	}

	return firstErr
}

// RefreshCorrelation re-fetches the correlation matrix for the
// configured window.
func (s *InsightsService) RefreshCorrelation(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "insights-service.refresh-correlation")
	defer span.End()

	data, err := s.provider.FetchCorrelation(ctx, s.correlationDays)
	if err != nil {
		return err
	}
	s.writeCache(ctx, fmt.Sprintf("insights:correlation:%d", s.correlationDays), data)
	return nil
}

func (s *InsightsService) readCache(ctx context.Context, key string, out any) bool {
	if s.redis == nil {
		return false
	}
	data, err := s.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("redis cache read error: %v", err)
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("redis cache decode error for %s: %v", key, err)
		return false
	}
	return true
}

func (s *InsightsService) writeCache(ctx context.Context, key string, value any) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("redis cache encode error for %s: %v", key, err)
		return
	}
	if err := s.redis.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		log.Printf("redis cache write error: %v", err)
	}
}
