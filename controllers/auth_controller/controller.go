package auth_controller

import (
	"github.com/Atlas-Ticaret/atlas-backoffice/config"
	"github.com/Atlas-Ticaret/atlas-backoffice/services"
	"github.com/Atlas-Ticaret/atlas-backoffice/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	sessionCookieName = "auth_token"
	sessionMaxAge     = 7 * 24 * 60 * 60

	// Lockout after this many failed attempts inside the tracker's window.
	maxFailedLogins = 5
)

// Controller serves login, Google sign-in, logout and the session probe.
type Controller struct {
	DB       *gorm.DB
	JWT      *services.JWTService
	Google   *config.GoogleOAuth
	Tracker  *utils.LoginTracker
	Frontend string
	Secure   bool
}

func New(db *gorm.DB, jwt *services.JWTService, google *config.GoogleOAuth, tracker *utils.LoginTracker, cfg config.Config) *Controller {
	return &Controller{
		DB:       db,
		JWT:      jwt,
		Google:   google,
		Tracker:  tracker,
		Frontend: cfg.FrontendURL,
		Secure:   cfg.Env == "production",
	}
}

func (ctl *Controller) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, sessionMaxAge, "/", "", ctl.Secure, true)
}

func (ctl *Controller) clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", ctl.Secure, true)
}
