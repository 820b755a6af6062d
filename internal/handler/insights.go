package handler

import (
	"net/http"
	"strconv"

	"marome-markets/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetOverview godoc
// @Summary      Market overview
// @Description  Returns the full market analysis page: summary narrative, class comparison cards, trend lines, volatility readings and top movers
// @Tags         insights
// @Produce      json
// @Success      200  {object}  insights.Overview
// @Failure      500  {object}  map[string]string
// @Router       /api/insights/overview [get]
func (h *Handler) GetOverview(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get-overview")
	defer span.End()

	overview, err := h.insights.Overview(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GetSentiment godoc
// @Summary      Class sentiment score
// @Description  Scores one asset class from its live quotes and returns the 0-100 score, bucket, top performers, laggards and narrative
// @Tags         insights
// @Produce      json
// @Param        class  path  string  true  "Asset class (indices, forex, crypto, commodities, stocks)"
// @Success      200  {object}  insights.SentimentResult
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/insights/sentiment/{class} [get]
func (h *Handler) GetSentiment(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get-sentiment")
	defer span.End()

	class := domain.AssetClass(c.Param("class"))
	span.SetAttributes(attribute.String("asset.class", string(class)))
	if !class.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "unsupported asset class: " + string(class),
			"supported": domain.AssetClasses,
		})
		return
	}

	result, err := h.insights.Sentiment(ctx, class)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetCommentary godoc
// @Summary      Crypto commentary
// @Description  Narrates the crypto heatmap as a list of commentary lines covering Bitcoin, Ethereum, altcoins and the overall market
// @Tags         insights
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Failure      500  {object}  map[string]string
// @Router       /api/insights/commentary [get]
func (h *Handler) GetCommentary(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get-commentary")
	defer span.End()

	lines, err := h.insights.Commentary(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"commentary": lines})
}

// GetCorrelation godoc
// @Summary      Correlation matrix
// @Description  Returns the cross-asset correlation matrix rendered with strength classes and short asset names
// @Tags         insights
// @Produce      json
// @Param        period  query  int  false  "Correlation window in days"  default(30)
// @Success      200  {object}  insights.CorrelationView
// @Failure      500  {object}  map[string]string
// @Router       /api/insights/correlation [get]
func (h *Handler) GetCorrelation(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get-correlation")
	defer span.End()

	period, _ := strconv.Atoi(c.DefaultQuery("period", "0"))
	span.SetAttributes(attribute.Int("correlation.period", period))

	view, err := h.insights.Correlation(ctx, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetHeatmap godoc
// @Summary      Performance heatmap
// @Description  Returns the multi-timeframe performance heatmap for the crypto or forex market
// @Tags         insights
// @Produce      json
// @Param        market  path  string  true  "Market (crypto or forex)"
// @Success      200  {object}  insights.HeatmapView
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/insights/heatmap/{market} [get]
func (h *Handler) GetHeatmap(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get-heatmap")
	defer span.End()

	market := c.Param("market")
	span.SetAttributes(attribute.String("heatmap.market", market))
	if market != "crypto" && market != "forex" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "unsupported market: " + market,
			"supported": []string{"crypto", "forex"},
		})
		return
	}

	view, err := h.insights.Heatmap(ctx, market)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetStrength godoc
// @Summary      Currency strength
// @Description  Returns the forex currency strength map
// @Tags         insights
// @Produce      json
// @Success      200  {object}  domain.StrengthMap
// @Failure      500  {object}  map[string]string
// @Router       /api/insights/strength [get]
func (h *Handler) GetStrength(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get-strength")
	defer span.End()

	strength, err := h.insights.Strength(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, strength)
}

// GetHistory godoc
// @Summary      Sentiment history
// @Description  Returns stored sentiment snapshots for one asset class, newest first
// @Tags         insights
// @Produce      json
// @Param        class  path   string  true   "Asset class (indices, forex, crypto, commodities, stocks)"
// @Param        limit  query  int     false  "Number of snapshots to return (max 500)"  default(100)
// @Success      200  {array}   domain.SentimentSnapshot
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/insights/history/{class} [get]
func (h *Handler) GetHistory(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get-history")
	defer span.End()

	class := domain.AssetClass(c.Param("class"))
	span.SetAttributes(attribute.String("asset.class", string(class)))
	if !class.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "unsupported asset class: " + string(class),
			"supported": domain.AssetClasses,
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	snapshots, err := h.insights.History(ctx, class, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshots)
}
