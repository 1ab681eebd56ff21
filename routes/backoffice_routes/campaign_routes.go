package backoffice_routes

import (
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/campaign_controller"
	"github.com/gin-gonic/gin"
)

func SetupCampaignRoutes(rg *gin.RouterGroup, ctl *campaign_controller.Controller, authMW gin.HandlerFunc) {
	campaign := rg.Group("/campaigns")
	campaign.Use(authMW)
	{
		campaign.GET("", ctl.GetCampaigns)
		campaign.POST("", ctl.CreateCampaign)
		campaign.PATCH("/:id/status", ctl.UpdateCampaignStatus)
		campaign.DELETE("/:id", ctl.DeleteCampaign)
	}
}
