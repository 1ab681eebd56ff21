package product_controller

import (
	"log"
	"net/http"

	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateProduct godoc
// @Summary Create product
// @Description Adds a product to the catalog. Price and cost are decimal strings, stored in kuruş.
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ProductRequest true "Product payload"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /products [post]
func (ctl *Controller) CreateProduct(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[products.create] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	price, err := models.ParseCents(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid price"))
		return
	}
	cost, err := models.ParseCents(req.Cost)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid cost"))
		return
	}

	product := models.Product{
		UserID:      uuid.MustParse(userID),
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Cost:        cost,
		Stock:       *req.Stock,
		Barcode:     req.Barcode,
		Category:    req.Category,
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	if err := ctl.DB.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[products.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	log.Printf("[products.create] success id=%s name=%q price=%s stock=%d", product.ID, product.Name, product.Price, product.Stock)

	c.JSON(http.StatusCreated, models.SuccessResponse(
		c,
		"Product created successfully",
		product,
	))
}
