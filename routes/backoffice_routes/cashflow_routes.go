package backoffice_routes

import (
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/cashflow_controller"
	"github.com/gin-gonic/gin"
)

func SetupCashFlowRoutes(rg *gin.RouterGroup, ctl *cashflow_controller.Controller, authMW gin.HandlerFunc) {
	cashflow := rg.Group("/cash-flow")
	cashflow.Use(authMW)
	{
		cashflow.GET("/timeline", ctl.GetTimeline)
		cashflow.GET("", ctl.GetEntries)
		cashflow.POST("", ctl.CreateEntry)
		cashflow.PUT("/:id", ctl.UpdateEntry)
		cashflow.DELETE("/:id", ctl.DeleteEntry)
	}
}
