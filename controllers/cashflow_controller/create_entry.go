package cashflow_controller

import (
	"log"
	"net/http"

	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateEntry godoc
// @Summary Create cash-flow entry
// @Description Adds an income or expense entry on a calendar day. Amount is a decimal string ("1250.50"), stored in kuruş.
// @Tags Cash Flow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CreateCashFlowRequest true "Entry payload"
// @Success 201 {object} models.ApiResponse{data=models.CashFlowEntry}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /cash-flow [post]
func (ctl *Controller) CreateEntry(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.CreateCashFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[cashflow.create] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	amount, err := models.ParseCents(req.Amount)
	if err != nil {
		log.Printf("[cashflow.create] bad request: amount=%q err=%v", req.Amount, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid amount"))
		return
	}

	date, err := models.ParseDay(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid date, expected YYYY-MM-DD"))
		return
	}

	entry := models.CashFlowEntry{
		UserID: uuid.MustParse(userID),
		Date:   date,
		Kind:   models.EntryKind(req.Kind),
		Amount: amount,
		Note:   req.Note,
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	if err := ctl.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("[cashflow.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create cash flow entry"))
		return
	}

	log.Printf("[cashflow.create] success id=%s user=%s date=%s type=%s amount=%s",
		entry.ID, userID, entry.Date, entry.Kind, entry.Amount)

	c.JSON(http.StatusCreated, models.SuccessResponse(
		c,
		"Cash flow entry created successfully",
		entry,
	))
}
