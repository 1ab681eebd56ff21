package product_controller

import (
	"gorm.io/gorm"
)

// Controller serves the product catalog CRUD and stock stats.
type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}
