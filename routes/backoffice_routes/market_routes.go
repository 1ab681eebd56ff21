package backoffice_routes

import (
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/market_controller"
	"github.com/gin-gonic/gin"
)

func SetupMarketRoutes(rg *gin.RouterGroup, ctl *market_controller.Controller, authMW gin.HandlerFunc) {
	market := rg.Group("/market")
	market.Use(authMW)
	{
		market.GET("", ctl.GetEconomicSnapshot)
	}
}
