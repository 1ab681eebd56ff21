package product_controller

import (
	"log"
	"net/http"

	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
)

// GetProductStats godoc
// @Summary Get stock stats
// @Description Counts products, low-stock products (10 or fewer) and out-of-stock products. Both states derive from the stock column on read.
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.ProductStatsResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /products/stats [get]
func (ctl *Controller) GetProductStats(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	var stats models.ProductStatsResponse
	err := ctl.DB.WithContext(ctx).
		Model(&models.Product{}).
		Select(`
			COUNT(*)::int AS total_products,
			COUNT(*) FILTER (WHERE stock <= ? AND stock > 0)::int AS low_stock,
			COUNT(*) FILTER (WHERE stock = 0)::int AS out_of_stock
		`, models.LowStockThreshold).
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		log.Printf("[products.stats] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product stats"))
		return
	}

	log.Printf("[products.stats] respond 200 user=%s total=%d low=%d out=%d",
		userID, stats.TotalProducts, stats.LowStock, stats.OutOfStock)

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Product stats retrieved successfully",
		stats,
	))
}
