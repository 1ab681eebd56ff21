package campaign_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
)

// GetCampaigns godoc
// @Summary List campaigns
// @Description Retrieve the caller's marketing campaigns, newest first. Supports filtering by status and type.
// @Tags Campaigns
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (active, paused, completed, scheduled)"
// @Param type query string false "Filter by type (email, sms, social, discount)"
// @Success 200 {object} models.ApiResponse{data=[]models.Campaign}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /campaigns [get]
func (ctl *Controller) GetCampaigns(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	status := strings.TrimSpace(c.Query("status"))
	campaignType := strings.TrimSpace(c.Query("type"))

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	db := ctl.DB.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if campaignType != "" {
		db = db.Where("type = ?", campaignType)
	}

	var campaigns []models.Campaign
	if err := db.Order("start_date DESC").Find(&campaigns).Error; err != nil {
		log.Printf("[campaigns.list] ERROR fetch failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch campaigns"))
		return
	}

	log.Printf("[campaigns.list] respond 200 user=%s count=%d", userID, len(campaigns))

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Campaigns retrieved successfully",
		campaigns,
	))
}
