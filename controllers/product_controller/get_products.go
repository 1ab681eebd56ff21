package product_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary List products
// @Description Retrieve the caller's products with pagination. Supports searching by name or barcode and filtering by category.
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param q query string false "Search by name or barcode"
// @Param category query string false "Filter by category"
// @Success 200 {object} models.ApiResponse{data=[]models.Product,meta=models.Pagination}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /products [get]
func (ctl *Controller) GetProducts(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	q := strings.TrimSpace(c.Query("q"))
	category := strings.TrimSpace(c.Query("category"))

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	db := ctl.DB.WithContext(ctx).Model(&models.Product{}).Where("user_id = ?", userID)

	if q != "" {
		like := "%" + q + "%"
		db = db.Where("name ILIKE ? OR barcode ILIKE ?", like, like)
	}
	if category != "" {
		db = db.Where("category = ?", category)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[products.list] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}

	products := make([]models.Product, 0, limit)
	err = db.Order("name ASC").Limit(limit).Offset(offset).Find(&products).Error
	if err != nil {
		log.Printf("[products.list] ERROR fetch failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	log.Printf("[products.list] respond 200 user=%s q=%q category=%q total=%d", userID, q, category, total)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products retrieved successfully",
		products,
		meta,
	))
}
