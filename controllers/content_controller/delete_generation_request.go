package content_controller

import (
	"log"
	"net/http"

	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeleteGenerationRequest godoc
// @Summary Delete a generation request
// @Description Removes every generated-content record for a request and cleans up its uploaded reference images.
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request ID"
// @Failure 404 {object} models.ApiResponse "Request not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /content/requests/{id} [delete]
func (ctl *Controller) DeleteGenerationRequest(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request ID"))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	result := ctl.DB.WithContext(ctx).
		Where("request_id = ? AND user_id = ?", requestID, uuid.MustParse(userID)).
		Delete(&models.GeneratedContent{})
	if result.Error != nil {
		log.Printf("[content.delete_request] ERROR db err=%v", result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete generation request"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Request not found"))
		return
	}

	// Reference images live under a folder named after the request. Cleanup is
	// best effort; the rows are already gone.
	if ctl.Media != nil {
		if err := ctl.Media.DeleteRequestAssets(ctx, requestID.String()); err != nil {
			log.Printf("[content.delete_request] WARN asset cleanup failed request=%s err=%v", requestID, err)
		}
	}

	log.Printf("[content.delete_request] success request=%s rows=%d", requestID, result.RowsAffected)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Generation request deleted", nil))
}
