package order_controller

import (
	"log"
	"net/http"

	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
)

// GetOrderStats godoc
// @Summary Get order status breakdown
// @Description Counts orders per status for the tab badges on the orders page.
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.OrderStatsResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /orders/stats [get]
func (ctl *Controller) GetOrderStats(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	type statusCount struct {
		Status models.OrderStatus
		Count  int
	}

	var rows []statusCount
	err := ctl.DB.WithContext(ctx).
		Model(&models.Order{}).
		Select("status, COUNT(*)::int AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		log.Printf("[orders.stats] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}

	counts := make(map[models.OrderStatus]int, len(rows))
	total := 0
	for _, row := range rows {
		counts[row.Status] = row.Count
		total += row.Count
	}

	stats := models.OrderStatsResponse{
		TotalOrders: total,
		Pending:     models.OrderStatsBreakdown{Count: counts[models.OrderPending], Description: "Awaiting shipment"},
		Processing:  models.OrderStatsBreakdown{Count: counts[models.OrderProcessing], Description: "Being prepared"},
		Shipped:     models.OrderStatsBreakdown{Count: counts[models.OrderShipped], Description: "In transit"},
		Delivered:   models.OrderStatsBreakdown{Count: counts[models.OrderDelivered], Description: "Handed to customer"},
		Cancelled:   models.OrderStatsBreakdown{Count: counts[models.OrderCancelled], Description: "Cancelled before shipping"},
		Returned:    models.OrderStatsBreakdown{Count: counts[models.OrderReturned], Description: "Returned by customer"},
		Completed:   models.OrderStatsBreakdown{Count: counts[models.OrderCompleted], Description: "Closed and settled"},
	}

	log.Printf("[orders.stats] respond 200 total=%d", total)

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Order stats retrieved successfully",
		stats,
	))
}
