package cashflow_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeleteEntry godoc
// @Summary Delete cash-flow entry
// @Description Removes an entry. A day left without entries reverts to the empty state on the next timeline fetch.
// @Tags Cash Flow
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Entry not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /cash-flow/{id} [delete]
func (ctl *Controller) DeleteEntry(c *gin.Context) {
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

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	result := ctl.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.CashFlowEntry{})
	if result.Error != nil {
		log.Printf("[cashflow.delete] ERROR delete failed err=%v", result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete entry"))
		return
	}
	if result.RowsAffected == 0 {
		log.Printf("[cashflow.delete] entry not found id=%s user=%s", entryID, userID)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Entry not found"))
		return
	}

	log.Printf("[cashflow.delete] success id=%s user=%s", entryID, userID)

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Cash flow entry deleted successfully",
		nil,
	))
}
