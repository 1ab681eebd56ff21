package backoffice_routes

import (
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/pages_controller"
	"github.com/gin-gonic/gin"
)

func SetupPagesRoutes(rg *gin.RouterGroup, ctl *pages_controller.Controller, authMW gin.HandlerFunc) {
	pages := rg.Group("/pages")
	pages.Use(authMW)
	{
		pages.GET("", ctl.GetPages)
		pages.GET("/menu", ctl.GetMenu)
		pages.GET("/:id", ctl.ResolvePage)
	}
}
