package cashflow_controller

import (
	"github.com/Atlas-Ticaret/atlas-backoffice/services"
	"gorm.io/gorm"
)

// Controller serves the cash-flow timeline and its entry CRUD.
type Controller struct {
	DB     *gorm.DB
	Market *services.MarketDataService
}

func New(db *gorm.DB, market *services.MarketDataService) *Controller {
	return &Controller{DB: db, Market: market}
}
