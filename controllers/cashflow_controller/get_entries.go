package cashflow_controller

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

// GetEntries godoc
// @Summary List cash-flow entries
// @Description Lists the caller's entries inside an inclusive date range. Without start/end the default timeline window is used.
// @Tags Cash Flow
// @Produce json
// @Security BearerAuth
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=[]models.CashFlowEntry}
// @Failure 400 {object} models.ApiResponse "Invalid range"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /cash-flow [get]
func (ctl *Controller) GetEntries(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var r models.DateRange
	start, end := c.Query("start"), c.Query("end")
	if start == "" && end == "" {
		r = analytics.WindowRange(time.Now())
	} else {
		var err error
		r, err = models.ParseDateRange(start, end)
		if err != nil {
			if errors.Is(err, models.ErrInvalidRange) {
				log.Printf("[cashflow.list] rejected inverted range start=%q end=%q", start, end)
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Range start must not be after end"))
				return
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid date format, expected YYYY-MM-DD"))
			return
		}
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	var entries []models.CashFlowEntry
	err := ctl.DB.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, r.Start, r.End).
		Order("date ASC, created_at ASC").
		Find(&entries).Error
	if err != nil {
		log.Printf("[cashflow.list] ERROR fetch failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cash flow entries"))
		return
	}

	log.Printf("[cashflow.list] respond 200 user=%s range=%s..%s count=%d", userID, r.Start, r.End, len(entries))

	c.JSON(http.StatusOK, models.RangedResponse(
		c,
		"Cash flow entries retrieved successfully",
		entries,
		r,
	))
}
