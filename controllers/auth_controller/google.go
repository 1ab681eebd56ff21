package auth_controller

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const stateCookieName = "oauth_state"

// GoogleLogin godoc
// @Summary Start Google sign-in
// @Description Sets a state cookie and redirects to Google's consent screen. Returns 503 when Google sign-in is not configured.
// @Tags Auth
// @Success 307 "Redirect to Google"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Failure 503 {object} models.ApiResponse "Google sign-in not configured"
// @Router /auth/google [get]
func (ctl *Controller) GoogleLogin(c *gin.Context) {
	if ctl.Google == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Google sign-in is not configured"))
		return
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Printf("[auth.google] ERROR state generation failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start sign-in"))
		return
	}
	state := base64.RawURLEncoding.EncodeToString(buf)

	c.SetCookie(stateCookieName, state, 300, "/", "", ctl.Secure, true)
	c.Redirect(http.StatusTemporaryRedirect, ctl.Google.Config.AuthCodeURL(state))
}

// GoogleCallback godoc
// @Summary Finish Google sign-in
// @Description Verifies the state cookie, exchanges the code, validates the ID token, upserts the user and redirects to the frontend with the session cookie set.
// @Tags Auth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 307 "Redirect to frontend"
// @Failure 400 {object} models.ApiResponse "State mismatch or missing code"
// @Failure 401 {object} models.ApiResponse "Token verification failed"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/google/callback [get]
func (ctl *Controller) GoogleCallback(c *gin.Context) {
	if ctl.Google == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Google sign-in is not configured"))
		return
	}

	stateCookie, err := c.Cookie(stateCookieName)
	if err != nil || stateCookie == "" || stateCookie != c.Query("state") {
		log.Printf("[auth.google] state mismatch")
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid OAuth state"))
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", ctl.Secure, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Authorization code missing"))
		return
	}

	oauthToken, err := ctl.Google.Config.Exchange(c.Request.Context(), code)
	if err != nil {
		log.Printf("[auth.google] ERROR code exchange failed err=%v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Failed to exchange authorization code"))
		return
	}

	rawIDToken, ok := oauthToken.Extra("id_token").(string)
	if !ok {
		log.Printf("[auth.google] ERROR id_token missing in token response")
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "ID token missing"))
		return
	}

	idToken, err := ctl.Google.Verifier.Verify(c.Request.Context(), rawIDToken)
	if err != nil {
		log.Printf("[auth.google] ERROR id_token verification failed err=%v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "ID token verification failed"))
		return
	}

	var info models.GoogleUserInfo
	if err := idToken.Claims(&info); err != nil {
		log.Printf("[auth.google] ERROR claims decode failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read Google profile"))
		return
	}
	if !info.EmailVerified {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Google account email is not verified"))
		return
	}

	user, err := ctl.upsertGoogleUser(c, info)
	if err != nil {
		log.Printf("[auth.google] ERROR upsert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to sign in"))
		return
	}

	token, err := ctl.JWT.Generate(user.ID.String(), user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.google] ERROR token generation failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to sign in"))
		return
	}

	ctl.Tracker.LogLoginEvent(c, user.ID)
	ctl.setSessionCookie(c, token)

	log.Printf("✅ [auth.google] success user=%s email=%s", user.ID, user.Email)

	c.Redirect(http.StatusTemporaryRedirect, ctl.Frontend)
}

// upsertGoogleUser matches on the Google subject first, then on email for
// accounts created with a password, and creates a fresh account otherwise.
func (ctl *Controller) upsertGoogleUser(c *gin.Context, info models.GoogleUserInfo) (*models.User, error) {
	ctx, cancel := config.WithTimeout(c.Request.Context())
	defer cancel()

	now := time.Now()

	var user models.User
	err := ctl.DB.WithContext(ctx).Where("google_sub = ?", info.Sub).First(&user).Error
	if err == nil {
		ctl.DB.WithContext(ctx).Model(&user).Update("last_login_at", now)
		user.LastLoginAt = &now
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = ctl.DB.WithContext(ctx).Where("email = ?", info.Email).First(&user).Error
	if err == nil {
		updates := map[string]any{"google_sub": info.Sub, "last_login_at": now}
		if err := ctl.DB.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
		user.GoogleSub = &info.Sub
		user.LastLoginAt = &now
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		Email:       info.Email,
		Name:        info.Name,
		GoogleSub:   &info.Sub,
		LastLoginAt: &now,
	}
	if err := ctl.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
