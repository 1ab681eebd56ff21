package analytics_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Atlas-Ticaret/atlas-backoffice/analytics"
	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
)

// GetDailySales godoc
// @Summary Get daily sales series
// @Description Buckets completed-order totals by calendar day for the chart. Days without sales are omitted from the series; max_value is floored at 1 so bar scaling never divides by zero.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param start query string false "Range start (YYYY-MM-DD), defaults to 30 days ago"
// @Param end query string false "Range end (YYYY-MM-DD), defaults to today"
// @Success 200 {object} models.ApiResponse{data=models.DailySalesResponse}
// @Failure 400 {object} models.ApiResponse "Invalid range"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /analytics/daily-sales [get]
func (ctl *Controller) GetDailySales(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	r, err := parseRange(c)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRange) {
			log.Printf("[analytics.daily] rejected inverted range start=%q end=%q", c.Query("start"), c.Query("end"))
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
		Where("user_id = ? AND status = ? AND order_date >= ? AND order_date < ?", userID, models.OrderCompleted, r.Start.Time, rangeEnd(r)).
		Find(&orders).Error
	if err != nil {
		log.Printf("[analytics.daily] ERROR fetch orders failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	points := make([]analytics.Point, 0, len(orders))
	for _, o := range orders {
		points = append(points, analytics.Point{Date: o.OrderDate, Amount: o.Total})
	}

	buckets, err := analytics.BucketByDay(points, r)
	if err != nil {
		log.Printf("[analytics.daily] ERROR bucket failed err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Range start must not be after end"))
		return
	}

	values := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		values = append(values, b.Total.Float64())
	}

	resp := models.DailySalesResponse{
		Series:   buckets,
		MaxValue: analytics.MaxValue(values),
	}

	log.Printf("[analytics.daily] respond 200 range=%s..%s days=%d max=%.2f", r.Start, r.End, len(buckets), resp.MaxValue)

	c.JSON(http.StatusOK, models.RangedResponse(
		c,
		"Daily sales retrieved successfully",
		resp,
		r,
	))
}
