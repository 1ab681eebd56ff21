package backoffice_routes

import (
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup, ctl *product_controller.Controller, authMW gin.HandlerFunc) {
	product := rg.Group("/products")
	product.Use(authMW)
	{
		product.GET("", ctl.GetProducts)
		product.GET("/stats", ctl.GetProductStats)
		product.POST("", ctl.CreateProduct)
		product.PUT("/:id", ctl.UpdateProduct)
		product.DELETE("/:id", ctl.DeleteProduct)
	}
}
