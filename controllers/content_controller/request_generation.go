package content_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RequestGeneration godoc
// @Summary Request content generation
// @Description Persists placeholder records for the requested assets, builds the webhook payload and delivers it to the automation endpoint. A webhook failure does not roll back the save; webhook_delivered reports the outcome.
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.GenerationRequest true "Wizard selections"
// @Success 201 {object} models.ApiResponse{data=models.GenerationResponse}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /content/generate [post]
func (ctl *Controller) RequestGeneration(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[content.generate] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	if req.ImageGeneration.Count == 0 && len(req.VideoGeneration.SelectedTypes) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Nothing to generate"))
		return
	}

	owner := uuid.MustParse(userID)
	requestID := uuid.Must(uuid.NewV7())

	content := buildContentRows(owner, requestID, req)

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	if len(content) > 0 {
		if err := ctl.DB.WithContext(ctx).Create(&content).Error; err != nil {
			log.Printf("[content.generate] ERROR insert failed err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save generation request"))
			return
		}
	}

	payload := buildWebhookPayload(req, content)

	delivered := true
	if err := ctl.Webhook.Deliver(c.Request.Context(), payload); err != nil {
		// The save stands; the caller sees webhook_delivered=false and can retry.
		log.Printf("[content.generate] WARN webhook delivery failed request=%s err=%v", requestID, err)
		delivered = false
	}

	log.Printf("[content.generate] success request=%s items=%d delivered=%v", requestID, len(content), delivered)

	c.JSON(http.StatusCreated, models.SuccessResponse(
		c,
		"Generation request accepted",
		models.GenerationResponse{
			RequestID:        requestID,
			Content:          content,
			WebhookDelivered: delivered,
		},
	))
}

// buildContentRows expands the wizard selections into one row per requested
// asset. URLs stay empty until the automation pipeline fills them in.
func buildContentRows(owner, requestID uuid.UUID, req models.GenerationRequest) []models.GeneratedContent {
	var rows []models.GeneratedContent

	imageInfluencer := parseOptionalUUID(req.ImageGeneration.InfluencerID)
	for i := 0; i < req.ImageGeneration.Count; i++ {
		rows = append(rows, models.GeneratedContent{
			UserID:       owner,
			RequestID:    requestID,
			Type:         models.ContentImage,
			Platforms:    datatypes.NewJSONSlice(req.ImageGeneration.Platforms),
			InfluencerID: imageInfluencer,
		})
	}

	for _, selected := range req.VideoGeneration.SelectedTypes {
		var spec *models.VideoGenerationSpec
		var videoType models.VideoType
		switch selected {
		case string(models.VideoPromotional):
			spec, videoType = req.VideoGeneration.Promotional, models.VideoPromotional
		case string(models.VideoStory):
			spec, videoType = req.VideoGeneration.Story, models.VideoStory
		default:
			continue
		}
		if spec == nil {
			continue
		}

		vt := videoType
		videoInfluencer := parseOptionalUUID(spec.InfluencerID)
		for i := 0; i < spec.Count; i++ {
			rows = append(rows, models.GeneratedContent{
				UserID:       owner,
				RequestID:    requestID,
				Type:         models.ContentVideo,
				VideoType:    &vt,
				Platforms:    datatypes.NewJSONSlice(spec.Platforms),
				InfluencerID: videoInfluencer,
			})
		}
	}

	return rows
}

func buildWebhookPayload(req models.GenerationRequest, content []models.GeneratedContent) models.WebhookPayload {
	generated := models.WebhookGeneratedContent{
		Images: []models.WebhookContentItem{},
		Videos: []models.WebhookContentItem{},
	}

	for _, row := range content {
		item := models.WebhookContentItem{
			ID:        row.ID.String(),
			VideoType: row.VideoType,
			URL:       row.URL,
			Platforms: row.Platforms,
		}
		if row.InfluencerID != nil {
			item.InfluencerID = row.InfluencerID.String()
		}
		switch row.Type {
		case models.ContentImage:
			generated.Images = append(generated.Images, item)
		case models.ContentVideo:
			generated.Videos = append(generated.Videos, item)
		}
	}

	return models.WebhookPayload{
		Product:          req.Product,
		ImageGeneration:  req.ImageGeneration,
		VideoGeneration:  req.VideoGeneration,
		GeneratedContent: generated,
		Timestamp:        time.Now().UTC(),
	}
}

func parseOptionalUUID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
