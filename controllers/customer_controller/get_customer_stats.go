package customer_controller

import (
	"log"
	"net/http"

	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
)

// GetCustomerStats godoc
// @Summary Get customer stats
// @Description Counts customers by status for the customers page header.
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.CustomerStatsResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /customers/stats [get]
func (ctl *Controller) GetCustomerStats(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	var stats models.CustomerStatsResponse
	err := ctl.DB.WithContext(ctx).
		Model(&models.Customer{}).
		Select(`
			COUNT(*)::int AS total_customers,
			COUNT(*) FILTER (WHERE status = 'active')::int AS active,
			COUNT(*) FILTER (WHERE status = 'inactive')::int AS inactive
		`).
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		log.Printf("[customers.stats] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customer stats"))
		return
	}

	log.Printf("[customers.stats] respond 200 user=%s total=%d", userID, stats.TotalCustomers)

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Customer stats retrieved successfully",
		stats,
	))
}
