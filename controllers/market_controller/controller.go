package market_controller

import (
	"github.com/Atlas-Ticaret/atlas-backoffice/services"
)

// Controller exposes the economic snapshot strip.
type Controller struct {
	Market *services.MarketDataService
}

func New(market *services.MarketDataService) *Controller {
	return &Controller{Market: market}
}
