package backoffice_routes

import (
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/auth_controller"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(rg *gin.RouterGroup, ctl *auth_controller.Controller, authMW gin.HandlerFunc) {
	auth := rg.Group("/auth")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	auth.POST("/login", ctl.Login)
	auth.GET("/google", ctl.GoogleLogin)
	auth.GET("/google/callback", ctl.GoogleCallback)
	auth.POST("/logout", ctl.Logout)

	// ════════════════════════════════════════════════════════════
	// Protected Routes
	// ════════════════════════════════════════════════════════════
	protected := auth.Group("")
	protected.Use(authMW)
	{
		protected.GET("/me", ctl.GetMe)
	}
}
