package campaign_controller

import (
	"log"
	"net/http"

	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateCampaign godoc
// @Summary Create campaign
// @Description Adds a marketing campaign. Budget is a decimal string, stored in kuruş. Reach, spend and conversions start at zero.
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CampaignRequest true "Campaign payload"
// @Success 201 {object} models.ApiResponse{data=models.Campaign}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /campaigns [post]
func (ctl *Controller) CreateCampaign(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[campaigns.create] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	budget, err := models.ParseCents(req.Budget)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid budget"))
		return
	}

	startDate, err := models.ParseDay(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid start date"))
		return
	}
	endDate, err := models.ParseDay(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid end date"))
		return
	}
	if startDate.After(endDate.Time) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Start date must not be after end date"))
		return
	}

	campaign := models.Campaign{
		UserID:      uuid.MustParse(userID),
		Name:        req.Name,
		Type:        models.CampaignType(req.Type),
		Status:      models.CampaignStatus(req.Status),
		StartDate:   startDate,
		EndDate:     endDate,
		Budget:      budget,
		Description: req.Description,
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	if err := ctl.DB.WithContext(ctx).Create(&campaign).Error; err != nil {
		log.Printf("[campaigns.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create campaign"))
		return
	}

	log.Printf("[campaigns.create] success id=%s name=%q type=%s budget=%s", campaign.ID, campaign.Name, campaign.Type, campaign.Budget)

	c.JSON(http.StatusCreated, models.SuccessResponse(
		c,
		"Campaign created successfully",
		campaign,
	))
}
