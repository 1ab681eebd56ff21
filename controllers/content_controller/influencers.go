package content_controller

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

// GetInfluencers godoc
// @Summary List influencer personas
// @Description Retrieve the caller's virtual brand personas for the wizard's influencer step.
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Influencer}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /content/influencers [get]
func (ctl *Controller) GetInfluencers(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	var influencers []models.Influencer
	err := ctl.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&influencers).Error
	if err != nil {
		log.Printf("[content.influencers] ERROR fetch failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch influencers"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Influencers retrieved successfully",
		influencers,
	))
}

// CreateInfluencer godoc
// @Summary Create influencer persona
// @Description Adds a virtual persona with appearance and voice attributes.
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.InfluencerRequest true "Persona payload"
// @Success 201 {object} models.ApiResponse{data=models.Influencer}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /content/influencers [post]
func (ctl *Controller) CreateInfluencer(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.InfluencerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[content.influencer.create] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	influencer := models.Influencer{
		UserID:              uuid.MustParse(userID),
		Name:                req.Name,
		AvatarURL:           req.AvatarURL,
		AgeRange:            req.AgeRange,
		Gender:              req.Gender,
		Ethnicity:           req.Ethnicity,
		BodyType:            req.BodyType,
		HairStyle:           req.HairStyle,
		DistinctiveFeatures: req.DistinctiveFeatures,
		Language:            req.Language,
		Dialect:             req.Dialect,
		Tone:                req.Tone,
		SpeakingStyle:       req.SpeakingStyle,
		EnergyLevel:         req.EnergyLevel,
		BrandAlignment:      req.BrandAlignment,
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	if err := ctl.DB.WithContext(ctx).Create(&influencer).Error; err != nil {
		log.Printf("[content.influencer.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create influencer"))
		return
	}

	log.Printf("[content.influencer.create] success id=%s name=%q", influencer.ID, influencer.Name)

	c.JSON(http.StatusCreated, models.SuccessResponse(
		c,
		"Influencer created successfully",
		influencer,
	))
}

// UpdateInfluencer godoc
// @Summary Update influencer persona
// @Description Replaces a persona's attributes.
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Influencer ID (UUID)"
// @Param payload body models.InfluencerRequest true "Persona payload"
// @Success 200 {object} models.ApiResponse{data=models.Influencer}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Influencer not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /content/influencers/{id} [put]
func (ctl *Controller) UpdateInfluencer(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	influencerID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid influencer ID"))
		return
	}

	var req models.InfluencerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	var influencer models.Influencer
	err = ctl.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", influencerID, userID).
		First(&influencer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Influencer not found"))
		return
	}
	if err != nil {
		log.Printf("[content.influencer.update] ERROR lookup failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch influencer"))
		return
	}

	influencer.Name = req.Name
	influencer.AvatarURL = req.AvatarURL
	influencer.AgeRange = req.AgeRange
	influencer.Gender = req.Gender
	influencer.Ethnicity = req.Ethnicity
	influencer.BodyType = req.BodyType
	influencer.HairStyle = req.HairStyle
	influencer.DistinctiveFeatures = req.DistinctiveFeatures
	influencer.Language = req.Language
	influencer.Dialect = req.Dialect
	influencer.Tone = req.Tone
	influencer.SpeakingStyle = req.SpeakingStyle
	influencer.EnergyLevel = req.EnergyLevel
	influencer.BrandAlignment = req.BrandAlignment

	if err := ctl.DB.WithContext(ctx).Save(&influencer).Error; err != nil {
		log.Printf("[content.influencer.update] ERROR save failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update influencer"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Influencer updated successfully",
		influencer,
	))
}

// DeleteInfluencer godoc
// @Summary Delete influencer persona
// @Description Removes a persona. Generated content keeps its influencer reference as a dangling ID.
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Influencer ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid influencer ID"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Influencer not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /content/influencers/{id} [delete]
func (ctl *Controller) DeleteInfluencer(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	influencerID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid influencer ID"))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	result := ctl.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", influencerID, userID).
		Delete(&models.Influencer{})
	if result.Error != nil {
		log.Printf("[content.influencer.delete] ERROR delete failed err=%v", result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete influencer"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Influencer not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Influencer deleted successfully",
		nil,
	))
}
