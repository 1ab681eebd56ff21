package customer_controller

import (
	"gorm.io/gorm"
)

// Controller serves the customer list, detail view, edits and stats. Customer
// records are created by the storefront; the back office edits contact fields,
// status, loyalty points and notes.
type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}
