package auth_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/Atlas-Ticaret/atlas-backoffice/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Login godoc
// @Summary Log in with email and password
// @Description Authenticates a local account and sets the session cookie. Five failed attempts in 15 minutes lock the account temporarily.
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=models.User}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Failure 429 {object} models.ApiResponse "Too many failed attempts"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/login [post]
func (ctl *Controller) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password are required"))
		return
	}

	if failures, err := ctl.Tracker.RecentFailures(c, req.Email); err == nil && failures >= maxFailedLogins {
		log.Printf("[auth.login] locked out email=%s failures=%d", req.Email, failures)
		c.JSON(http.StatusTooManyRequests, models.ErrorResponse(c, "Too many failed attempts, try again later"))
		return
	}

	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	var user models.User
	err := ctl.DB.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && user.PasswordHash == nil) {
		ctl.Tracker.LogLoginFailure(c, req.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}
	if err != nil {
		log.Printf("[auth.login] ERROR lookup failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log in"))
		return
	}

	if !services.CheckPassword(*user.PasswordHash, req.Password) {
		ctl.Tracker.LogLoginFailure(c, req.Email)
		log.Printf("[auth.login] wrong password email=%s", req.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := ctl.JWT.Generate(user.ID.String(), user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.login] ERROR token generation failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log in"))
		return
	}

	now := time.Now()
	if err := ctl.DB.WithContext(ctx).Model(&user).Update("last_login_at", now).Error; err != nil {
		log.Printf("[auth.login] WARN last_login_at update failed err=%v", err)
	}
	user.LastLoginAt = &now

	ctl.Tracker.LogLoginEvent(c, user.ID)
	ctl.setSessionCookie(c, token)

	log.Printf("✅ [auth.login] success user=%s email=%s", user.ID, user.Email)

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Logged in successfully",
		user,
	))
}
