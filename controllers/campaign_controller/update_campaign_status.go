package campaign_controller

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

// UpdateCampaignStatus godoc
// @Summary Update campaign status
// @Description Switches a campaign between active, paused, completed and scheduled.
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID (UUID)"
// @Param payload body models.UpdateCampaignStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.Campaign}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Campaign not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /campaigns/{id}/status [patch]
func (ctl *Controller) UpdateCampaignStatus(c *gin.Context) {
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

	var req models.UpdateCampaignStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status"))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	var campaign models.Campaign
	err = ctl.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", campaignID, userID).
		First(&campaign).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Campaign not found"))
		return
	}
	if err != nil {
		log.Printf("[campaigns.status] ERROR lookup failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch campaign"))
		return
	}

	previous := campaign.Status
	campaign.Status = models.CampaignStatus(req.Status)

	if err := ctl.DB.WithContext(ctx).Model(&campaign).Update("status", campaign.Status).Error; err != nil {
		log.Printf("[campaigns.status] ERROR update failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update campaign"))
		return
	}

	log.Printf("[campaigns.status] success id=%s %s -> %s", campaign.ID, previous, campaign.Status)

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Campaign updated successfully",
		campaign,
	))
}
