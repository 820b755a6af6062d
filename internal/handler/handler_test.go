package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marome-markets/internal/domain"
	"marome-markets/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

func testHandler(provider service.MarketDataProvider, repo service.SnapshotRepository, chat ChatService) *Handler {
	tracer := trace.NewNoopTracerProvider().Tracer("handler-test")
	svc := service.NewInsightsService(tracer, provider, repo, nil, time.Minute, 30)
	return New(tracer, svc, chat)
}

func TestHealth(t *testing.T) {
	h := testHandler(&providerStub{}, nil, nil)
	router := gin.New()
	router.GET("/health", h.Health)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestGetSentiment(t *testing.T) {
	provider := &providerStub{quotes: []domain.Quote{
		{Name: "Bitcoin", Change: domain.NewRawValue("2.0")},
		{Name: "Ethereum", Change: domain.NewRawValue("-1.0")},
	}}
	h := testHandler(provider, nil, nil)
	router := gin.New()
	router.GET("/api/insights/sentiment/:class", h.GetSentiment)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/insights/sentiment/crypto", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Available bool   `json:"available"`
		Score     int    `json:"score"`
		Bucket    string `json:"bucket"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if !body.Available || body.Score != 50 || body.Bucket != "NEUTRAL" {
		t.Fatalf("unexpected response payload: %+v", body)
	}
}

func TestGetSentimentRejectsUnknownClass(t *testing.T) {
	h := testHandler(&providerStub{}, nil, nil)
	router := gin.New()
	router.GET("/api/insights/sentiment/:class", h.GetSentiment)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/insights/sentiment/bonds", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unsupported asset class") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestGetHeatmapRejectsUnknownMarket(t *testing.T) {
	h := testHandler(&providerStub{}, nil, nil)
	router := gin.New()
	router.GET("/api/insights/heatmap/:market", h.GetHeatmap)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/insights/heatmap/bonds", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetOverview(t *testing.T) {
	h := testHandler(&providerStub{quotes: []domain.Quote{
		{Name: "S&P 500", Change: domain.NewRawValue("1.0")},
	}}, nil, nil)
	router := gin.New()
	router.GET("/api/insights/overview", h.GetOverview)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/insights/overview", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Comparison []struct {
			Name string `json:"name"`
		} `json:"comparison"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(body.Comparison) != 4 {
		t.Fatalf("expected 4 comparison cards, got %d", len(body.Comparison))
	}
}

func TestGetCorrelationFailure(t *testing.T) {
	h := testHandler(&providerStub{err: errors.New("upstream down")}, nil, nil)
	router := gin.New()
	router.GET("/api/insights/correlation", h.GetCorrelation)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/insights/correlation?period=7", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestGetHistory(t *testing.T) {
	repo := &repoStub{snapshots: []*domain.SentimentSnapshot{
		{Class: "crypto", Score: 80, Bucket: "VERY_BULLISH"},
	}}
	h := testHandler(&providerStub{}, repo, nil)
	router := gin.New()
	router.GET("/api/insights/history/:class", h.GetHistory)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/insights/history/crypto?limit=5", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if repo.lastLimit != 5 {
		t.Fatalf("expected limit 5, got %d", repo.lastLimit)
	}
	if !strings.Contains(w.Body.String(), "VERY_BULLISH") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPostChatUnavailableWithoutAdvisor(t *testing.T) {
	h := testHandler(&providerStub{}, nil, nil)
	router := gin.New()
	router.POST("/api/chat", h.PostChat)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"session_id":"s1","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestPostChat(t *testing.T) {
	chat := &chatStub{reply: "markets look calm"}
	h := testHandler(&providerStub{}, nil, chat)
	router := gin.New()
	router.POST("/api/chat", h.PostChat)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"session_id":"s1","message":"how is crypto?"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if chat.lastSession != "s1" || chat.lastMessage != "how is crypto?" {
		t.Fatalf("unexpected chat call: %q %q", chat.lastSession, chat.lastMessage)
	}
	if !strings.Contains(w.Body.String(), "markets look calm") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPostChatRejectsBlankMessage(t *testing.T) {
	h := testHandler(&providerStub{}, nil, &chatStub{})
	router := gin.New()
	router.POST("/api/chat", h.PostChat)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"session_id":"s1","message":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAPIKeyAuth(t *testing.T) {
	router := gin.New()
	router.Use(APIKeyAuth("secret"))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without key, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-API-Key", "wrong")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 with wrong key, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-API-Key", "secret")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid key, got %d", w.Code)
	}
}

func TestRegisterRoutesGuardsAPITree(t *testing.T) {
	h := testHandler(&providerStub{}, nil, nil)
	router := gin.New()
	h.RegisterRoutes(router, "secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("health should stay open, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/news", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 on guarded route, got %d", w.Code)
	}
}

func TestAPIKeyAuthDisabled(t *testing.T) {
	router := gin.New()
	router.Use(APIKeyAuth(""))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with auth disabled, got %d", w.Code)
	}
}

type providerStub struct {
	quotes []domain.Quote
	err    error
}

func (p *providerStub) FetchQuotes(ctx context.Context, class domain.AssetClass) ([]domain.Quote, error) {
	return p.quotes, p.err
}

func (p *providerStub) FetchMovers(ctx context.Context) ([]domain.Mover, error) {
	return nil, p.err
}

func (p *providerStub) FetchHeatmap(ctx context.Context, market string) (domain.HeatmapData, error) {
	return domain.HeatmapData{}, p.err
}

func (p *providerStub) FetchStrength(ctx context.Context) (domain.StrengthMap, error) {
	return domain.StrengthMap{}, p.err
}

func (p *providerStub) FetchCorrelation(ctx context.Context, periodDays int) (domain.CorrelationData, error) {
	return domain.CorrelationData{}, p.err
}

func (p *providerStub) FetchNews(ctx context.Context) ([]domain.NewsArticle, error) {
	return nil, p.err
}

func (p *providerStub) FetchCalendar(ctx context.Context) ([]domain.CalendarEvent, error) {
	return nil, p.err
}

type repoStub struct {
	snapshots []*domain.SentimentSnapshot
	lastLimit int
}

func (r *repoStub) SaveSnapshots(ctx context.Context, snapshots []*domain.SentimentSnapshot) error {
	return nil
}

func (r *repoStub) History(ctx context.Context, class string, limit int) ([]*domain.SentimentSnapshot, error) {
	r.lastLimit = limit
	return r.snapshots, nil
}

type chatStub struct {
	reply       string
	err         error
	lastSession string
	lastMessage string
}

func (c *chatStub) Chat(ctx context.Context, sessionID, message string) (string, error) {
	c.lastSession = sessionID
	c.lastMessage = message
	return c.reply, c.err
}
