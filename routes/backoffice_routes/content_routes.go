package backoffice_routes

import (
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/content_controller"
	"github.com/gin-gonic/gin"
)

func SetupContentRoutes(rg *gin.RouterGroup, ctl *content_controller.Controller, authMW gin.HandlerFunc) {
	content := rg.Group("/content")
	content.Use(authMW)
	{
		content.GET("", ctl.GetGeneratedContent)
		content.POST("/generate", ctl.RequestGeneration)
		content.POST("/reference-images", ctl.UploadReferenceImage)
		content.DELETE("/requests/:id", ctl.DeleteGenerationRequest)

		content.GET("/influencers", ctl.GetInfluencers)
		content.POST("/influencers", ctl.CreateInfluencer)
		content.PUT("/influencers/:id", ctl.UpdateInfluencer)
		content.DELETE("/influencers/:id", ctl.DeleteInfluencer)
	}
}
