package order_controller

import (
	"gorm.io/gorm"
)

// Controller serves the back-office order list, detail view, status updates
// and invoice download. Orders are created by the storefront, never here.
type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}
