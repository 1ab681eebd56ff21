package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func (ctl *Controller) Logout(c *gin.Context) {
	ctl.clearSessionCookie(c)
	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Logged out successfully",
		nil,
	))
}

// GetMe godoc
// @Summary Get current user
// @Description Returns the account behind the session token.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.User}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/me [get]
func (ctl *Controller) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	var user models.User
	err := ctl.DB.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctl.clearSessionCookie(c)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Account no longer exists"))
		return
	}
	if err != nil {
		log.Printf("[auth.me] ERROR lookup failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch user"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"User retrieved successfully",
		user,
	))
}
