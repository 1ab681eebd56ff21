package backoffice_routes

import (
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/analytics_controller"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup, ctl *analytics_controller.Controller, authMW gin.HandlerFunc) {
	analytics := rg.Group("/analytics")
	analytics.Use(authMW)
	{
		analytics.GET("/kpi", ctl.GetKPISummary)
		analytics.GET("/daily-sales", ctl.GetDailySales)
		analytics.GET("/top-products", ctl.GetTopProducts)
		analytics.GET("/range", ctl.GetRangePreference)
		analytics.PUT("/range", ctl.SaveRangePreference)
	}
}
