package analytics_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Atlas-Ticaret/atlas-backoffice/analytics"
	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
)

// parseRange reads start/end query params, defaulting to the last 30 days.
func parseRange(c *gin.Context) (models.DateRange, error) {
	start, end := c.Query("start"), c.Query("end")
	if start == "" && end == "" {
		today := models.NewDay(time.Now())
		return models.DateRange{Start: today.AddDays(-29), End: today}, nil
	}
	return models.ParseDateRange(start, end)
}

// rangeEnd returns the exclusive timestamp bound for an inclusive range end,
// so orders placed any time during the end day are included.
func rangeEnd(r models.DateRange) time.Time {
	return r.End.AddDays(1).Time
}

// GetKPISummary godoc
// @Summary Get KPI card values
// @Description Computes the dashboard cards for a date range: total sales over all orders, net sales over completed orders, order count, return rate and pending shipments. Includes display-formatted strings.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param start query string false "Range start (YYYY-MM-DD), defaults to 30 days ago"
// @Param end query string false "Range end (YYYY-MM-DD), defaults to today"
// @Success 200 {object} models.ApiResponse{data=models.KPICardsResponse}
// @Failure 400 {object} models.ApiResponse "Invalid range"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /analytics/kpi [get]
func (ctl *Controller) GetKPISummary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	r, err := parseRange(c)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRange) {
			log.Printf("[analytics.kpi] rejected inverted range start=%q end=%q", c.Query("start"), c.Query("end"))
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Range start must not be after end"))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid date format, expected YYYY-MM-DD"))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	var orders []models.Order
	err = ctl.DB.WithContext(ctx).
		Where("user_id = ? AND order_date >= ? AND order_date < ?", userID, r.Start.Time, rangeEnd(r)).
		Find(&orders).Error
	if err != nil {
		log.Printf("[analytics.kpi] ERROR fetch orders failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	summary := analytics.Summarize(orders)

	resp := models.KPICardsResponse{
		Summary: summary,
		Formatted: map[string]string{
			"total_sales":       analytics.FormatLira(summary.TotalSales),
			"net_sales":         analytics.FormatLira(summary.NetSales),
			"order_count":       analytics.FormatCount(summary.OrderCount),
			"return_rate":       analytics.FormatPercent(summary.ReturnRate),
			"pending_shipments": analytics.FormatCount(summary.PendingShipments),
		},
	}

	log.Printf("[analytics.kpi] respond 200 range=%s..%s orders=%d", r.Start, r.End, summary.OrderCount)

	c.JSON(http.StatusOK, models.RangedResponse(
		c,
		"KPI summary retrieved successfully",
		resp,
		r,
	))
}
