package cashflow_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Atlas-Ticaret/atlas-backoffice/analytics"
	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
)

// TimelineResponse is the assembled calendar view: 35 day cells plus the
// market strip shown above them.
type TimelineResponse struct {
	Days   []analytics.DayCell     `json:"days"`
	Market models.EconomicSnapshot `json:"market"`
}

// GetTimeline godoc
// @Summary Get cash-flow timeline
// @Description Returns the 35-day calendar window (3 days back, 31 ahead) with each day's entries classified, plus the market data strip.
// @Tags Cash Flow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=cashflow_controller.TimelineResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /cash-flow/timeline [get]
func (ctl *Controller) GetTimeline(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	now := time.Now()
	window := analytics.Window(now)
	r := analytics.WindowRange(now)

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	var entries []models.CashFlowEntry
	err := ctl.DB.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, r.Start, r.End).
		Order("date ASC, created_at ASC").
		Find(&entries).Error
	if err != nil {
		log.Printf("[cashflow.timeline] ERROR fetch entries failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cash flow entries"))
		return
	}

	analytics.Populate(window, entries)

	snapshot := ctl.Market.Snapshot(c.Request.Context())

	log.Printf("[cashflow.timeline] respond 200 user=%s entries=%d stale=%v", userID, len(entries), snapshot.Stale)

	c.JSON(http.StatusOK, models.RangedResponse(
		c,
		"Timeline retrieved successfully",
		TimelineResponse{Days: window, Market: snapshot},
		r,
	))
}
