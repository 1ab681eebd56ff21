package customer_controller

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

// GetCustomers godoc
// @Summary List customers
// @Description Retrieve customers with pagination, highest spenders first. Supports searching by name, email or phone and filtering by status and city.
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param q query string false "Search by name, email or phone"
// @Param status query string false "Filter by status (active, inactive)"
// @Param city query string false "Filter by city"
// @Success 200 {object} models.ApiResponse{data=[]models.Customer,meta=models.Pagination}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /customers [get]
func (ctl *Controller) GetCustomers(c *gin.Context) {
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
	status := strings.TrimSpace(c.Query("status"))
	city := strings.TrimSpace(c.Query("city"))

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	db := ctl.DB.WithContext(ctx).Model(&models.Customer{}).Where("user_id = ?", userID)

	if q != "" {
		like := "%" + q + "%"
		db = db.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if city != "" {
		db = db.Where("city = ?", city)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[customers.list] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count customers"))
		return
	}

	customers := make([]models.Customer, 0, limit)
	err = db.Order("total_spent DESC").Limit(limit).Offset(offset).Find(&customers).Error
	if err != nil {
		log.Printf("[customers.list] ERROR fetch failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customers"))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	log.Printf("[customers.list] respond 200 user=%s q=%q total=%d", userID, q, total)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Customers retrieved successfully",
		customers,
		meta,
	))
}
