package cashflow_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateEntry godoc
// @Summary Update cash-flow entry
// @Description Replaces an entry's type, amount and note. The day stays fixed; move an entry by deleting and recreating it.
// @Tags Cash Flow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID (UUID)"
// @Param payload body models.UpdateCashFlowRequest true "Update payload"
// @Success 200 {object} models.ApiResponse{data=models.CashFlowEntry}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Entry not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /cash-flow/{id} [put]
func (ctl *Controller) UpdateEntry(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	entryID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid entry ID"))
		return
	}

	var req models.UpdateCashFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[cashflow.update] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	amount, err := models.ParseCents(req.Amount)
	if err != nil {
		log.Printf("[cashflow.update] bad request: amount=%q err=%v", req.Amount, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid amount"))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	// Ownership enforced in the lookup: another user's entry is a 404, not a 403.
	var entry models.CashFlowEntry
	err = ctl.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[cashflow.update] entry not found id=%s user=%s", entryID, userID)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Entry not found"))
		return
	}
	if err != nil {
		log.Printf("[cashflow.update] ERROR lookup failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch entry"))
		return
	}

	entry.Kind = models.EntryKind(req.Kind)
	entry.Amount = amount
	entry.Note = req.Note

	if err := ctl.DB.WithContext(ctx).Save(&entry).Error; err != nil {
		log.Printf("[cashflow.update] ERROR save failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update entry"))
		return
	}

	log.Printf("[cashflow.update] success id=%s type=%s amount=%s", entry.ID, entry.Kind, entry.Amount)

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Cash flow entry updated successfully",
		entry,
	))
}
