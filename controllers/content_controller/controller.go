package content_controller

import (
	"github.com/Atlas-Ticaret/atlas-backoffice/services"
	"gorm.io/gorm"
)

// Controller serves the content-generation wizard: influencer personas,
// reference-image uploads and the generation request itself.
type Controller struct {
	DB      *gorm.DB
	Webhook *services.WebhookClient
	Media   *services.MediaService
}

func New(db *gorm.DB, webhook *services.WebhookClient, media *services.MediaService) *Controller {
	return &Controller{DB: db, Webhook: webhook, Media: media}
}
