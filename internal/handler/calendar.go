package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetNews godoc
// @Summary      Market news
// @Description  Returns recent market news as cards with relative timestamps
// @Tags         news
// @Produce      json
// @Success      200  {array}   insights.NewsCard
// @Failure      500  {object}  map[string]string
// @Router       /api/news [get]
func (h *Handler) GetNews(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get-news")
	defer span.End()

	cards, err := h.insights.News(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cards)
}

// GetCalendar godoc
// @Summary      Economic calendar
// @Description  Returns upcoming economic events grouped by day with friendly date labels
// @Tags         calendar
// @Produce      json
// @Success      200  {object}  calendar.Schedule
// @Failure      500  {object}  map[string]string
// @Router       /api/calendar [get]
func (h *Handler) GetCalendar(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get-calendar")
	defer span.End()

	schedule, err := h.insights.Calendar(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, schedule)
}
