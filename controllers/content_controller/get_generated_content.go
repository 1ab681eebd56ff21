package content_controller

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

// GetGeneratedContent godoc
// @Summary List generated content
// @Description Retrieve the caller's generated assets, newest first. Supports filtering by request and by type.
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Param request_id query string false "Filter by generation request (UUID)"
// @Param type query string false "Filter by type (image, video)"
// @Success 200 {object} models.ApiResponse{data=[]models.GeneratedContent}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /content [get]
func (ctl *Controller) GetGeneratedContent(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	db := ctl.DB.WithContext(ctx).Where("user_id = ?", userID)

	if requestIDStr := strings.TrimSpace(c.Query("request_id")); requestIDStr != "" {
		requestID, err := uuid.Parse(requestIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request ID"))
			return
		}
		db = db.Where("request_id = ?", requestID)
	}
	if contentType := strings.TrimSpace(c.Query("type")); contentType != "" {
		db = db.Where("type = ?", contentType)
	}

	var content []models.GeneratedContent
	if err := db.Order("created_at DESC").Find(&content).Error; err != nil {
		log.Printf("[content.list] ERROR fetch failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch generated content"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Generated content retrieved successfully",
		content,
	))
}
