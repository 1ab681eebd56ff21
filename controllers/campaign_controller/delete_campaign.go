package campaign_controller

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

// DeleteCampaign godoc
// @Summary Delete campaign
// @Description Removes a campaign and its accumulated metrics.
// @Tags Campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid campaign ID"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Campaign not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /campaigns/{id} [delete]
func (ctl *Controller) DeleteCampaign(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	campaignID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid campaign ID"))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	result := ctl.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", campaignID, userID).
		Delete(&models.Campaign{})
	if result.Error != nil {
		log.Printf("[campaigns.delete] ERROR delete failed err=%v", result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete campaign"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Campaign not found"))
		return
	}

	log.Printf("[campaigns.delete] success id=%s user=%s", campaignID, userID)

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Campaign deleted successfully",
		nil,
	))
}
