package handler

import (
	"context"

	"marome-markets/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// ChatService answers a user message within a conversation session.
type ChatService interface {
	Chat(ctx context.Context, sessionID, message string) (string, error)
}

type Handler struct {
	tracer   trace.Tracer
	insights *service.InsightsService
	chat     ChatService
}

// New builds the HTTP handler set. chat may be nil when the advisor is
// not configured; the chat endpoint then reports unavailable.
func New(tracer trace.Tracer, insights *service.InsightsService, chat ChatService) *Handler {
	return &Handler{
		tracer:   tracer,
		insights: insights,
		chat:     chat,
	}
}

// RegisterRoutes wires every endpoint. apiKey guards the /api tree when
// non-empty; /health stays open for probes.
func (h *Handler) RegisterRoutes(r *gin.Engine, apiKey string) {
	r.GET("/health", h.Health)

	api := r.Group("/api", APIKeyAuth(apiKey))
	api.GET("/insights/overview", h.GetOverview)
	api.GET("/insights/sentiment/:class", h.GetSentiment)
	api.GET("/insights/commentary", h.GetCommentary)
	api.GET("/insights/correlation", h.GetCorrelation)
	api.GET("/insights/heatmap/:market", h.GetHeatmap)
	api.GET("/insights/strength", h.GetStrength)
	api.GET("/insights/history/:class", h.GetHistory)
	api.GET("/news", h.GetNews)
	api.GET("/calendar", h.GetCalendar)
	api.POST("/chat", h.PostChat)
}
