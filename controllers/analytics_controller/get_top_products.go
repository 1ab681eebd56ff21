package analytics_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
)

// GetTopProducts godoc
// @Summary Get top products by units sold
// @Description Ranks products by units sold across completed orders in the range, via a raw join on order items.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param start query string false "Range start (YYYY-MM-DD), defaults to 30 days ago"
// @Param end query string false "Range end (YYYY-MM-DD), defaults to today"
// @Param limit query int false "Number of products" default(5)
// @Success 200 {object} models.ApiResponse{data=[]models.TopProduct}
// @Failure 400 {object} models.ApiResponse "Invalid range"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /analytics/top-products [get]
func (ctl *Controller) GetTopProducts(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	r, err := parseRange(c)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Range start must not be after end"))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid date format, expected YYYY-MM-DD"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 5
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	query := `
		SELECT
			COALESCE(oi.product_id::text, '') AS product_id,
			oi.name,
			SUM(oi.quantity)::int AS units_sold
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.user_id = $1
		  AND o.status = 'completed'
		  AND o.order_date >= $2 AND o.order_date < $3
		GROUP BY oi.product_id, oi.name
		ORDER BY units_sold DESC, oi.name ASC
		LIMIT $4
	`

	rows, err := ctl.Pool.Query(ctx, query, userID, r.Start.Time, rangeEnd(r), limit)
	if err != nil {
		log.Printf("[analytics.top] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top products"))
		return
	}
	defer rows.Close()

	result := make([]models.TopProduct, 0, limit)
	for rows.Next() {
		var p models.TopProduct
		if err := rows.Scan(&p.ProductID, &p.Name, &p.UnitsSold); err != nil {
			log.Printf("[analytics.top] ERROR scan failed err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read top products"))
			return
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[analytics.top] ERROR rows err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read top products"))
		return
	}

	log.Printf("[analytics.top] respond 200 range=%s..%s count=%d", r.Start, r.End, len(result))

	c.JSON(http.StatusOK, models.RangedResponse(
		c,
		"Top products retrieved successfully",
		result,
		r,
	))
}
