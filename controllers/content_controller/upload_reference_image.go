package content_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
)

const maxReferenceImageSize = 10 << 20 // 10 MB

// UploadReferenceImage godoc
// @Summary Upload reference image
// @Description Uploads a product reference image for the wizard and returns its URL. Accepts multipart form field "image".
// @Tags Content
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file (max 10 MB)"
// @Param request_id formData string false "Generation request the image belongs to"
// @Success 201 {object} models.ApiResponse{data=map[string]string}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /content/reference-images [post]
func (ctl *Controller) UploadReferenceImage(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	if ctl.Media == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image uploads are not configured"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
		return
	}
	if fileHeader.Size > maxReferenceImageSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image exceeds the 10 MB limit"))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "File must be an image"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[content.upload] ERROR open file err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read image"))
		return
	}
	defer file.Close()

	folder := "content-requests/" + userID
	if requestID := strings.TrimSpace(c.PostForm("request_id")); requestID != "" {
		folder = "content-requests/" + requestID
	}

	url, err := ctl.Media.UploadImage(c.Request.Context(), file, "", folder)
	if err != nil {
		log.Printf("[content.upload] ERROR upload failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	log.Printf("[content.upload] success user=%s folder=%s", userID, folder)

	c.JSON(http.StatusCreated, models.SuccessResponse(
		c,
		"Image uploaded successfully",
		map[string]string{"url": url},
	))
}
