package campaign_controller

import (
	"gorm.io/gorm"
)

// Controller serves the marketing campaign CRUD.
type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}
